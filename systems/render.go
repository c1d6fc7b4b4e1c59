package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/actioninput/components"
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayers renders every avatar as a square with its aim line.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		drawPlayer(screen, components.Player.Get(entry))
	})
}

func drawPlayer(screen *ebiten.Image, p *components.PlayerData) {
	size := cfg.Avatar.Size
	x, y := p.Position.X, p.Position.Y

	c := p.Color
	if p.AttackTicks > 0 {
		c = cfg.Red
	}

	grow := p.Grow
	vector.FillRect(screen,
		float32(x-grow), float32(y-grow),
		float32(size+2*grow), float32(size+2*grow),
		c, false)

	cx, cy := x+size/2, y+size/2
	if p.Aim.X != 0 || p.Aim.Y != 0 {
		vector.StrokeLine(screen,
			float32(cx), float32(cy),
			float32(cx+p.Aim.X), float32(cy+p.Aim.Y),
			1, cfg.Yellow, false)
	}

	label := fmt.Sprintf("%s D%d S%d", p.Scope, p.Dodges, p.Specials)
	text.Draw(screen, label, fonts.Small.Get(), int(x), int(y+size)+12, labelColor(p.Color))
}

func labelColor(c color.RGBA) color.RGBA {
	c.A = 200
	return c
}
