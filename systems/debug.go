package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/actioninput/components"
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawInputDebug lists the resolved actions and axes of every active scope.
func DrawInputDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowInput {
		return
	}
	data, ok := components.Input.First(e.World)
	if !ok {
		return
	}

	lines := InputDebugLines(components.Input.Get(data))
	if IsBindingsIOBusy(e) {
		lines = append(lines, "bindings: "+components.BindingsIO.Get(data).Op.String())
	} else if err := components.BindingsIO.Get(data).LastErr; err != nil {
		lines = append(lines, "bindings: "+err.Error())
	}

	o := cfg.Overlay
	vector.FillRect(screen,
		float32(o.X-4), float32(o.Y-o.LineHeight),
		float32(screen.Bounds().Dx()-2*(o.X-4)), float32(len(lines)*o.LineHeight+4),
		o.Background, false)

	face := fonts.Regular.Get()
	for i, line := range lines {
		c := o.TextColor
		if strings.HasPrefix(line, "  ") {
			c = o.DimColor
		}
		text.Draw(screen, line, face, o.X, o.Y+i*o.LineHeight, c)
	}
}

// InputDebugLines renders one header per active scope followed by its
// active actions and non-zero axes.
func InputDebugLines(data *components.InputData) []string {
	var lines []string
	for _, scope := range ActiveScopes(data) {
		in := InputFor(data, scope)
		lines = append(lines, scope.String())

		var actions []string
		for action := cfg.ActionID(1); action < cfg.ActionCount; action++ {
			if state, ok := in.ActionState(action); ok {
				actions = append(actions, fmt.Sprintf("%s:%s", action, state))
			}
		}
		if len(actions) > 0 {
			lines = append(lines, "  "+strings.Join(actions, " "))
		}

		var axes []string
		for axis := cfg.AxisID(0); axis < cfg.AxisCount; axis++ {
			if v := in.Axis(axis); v != 0 {
				axes = append(axes, fmt.Sprintf("%s:%+.2f", axis, v))
			}
		}
		if len(axes) > 0 {
			lines = append(lines, "  "+strings.Join(axes, " "))
		}
	}
	return lines
}
