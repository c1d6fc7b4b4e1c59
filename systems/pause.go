package systems

import (
	"strings"

	"github.com/automoto/actioninput/components"
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause when any active scope presses Pause. While
// paused only the scope that paused can resume.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	data := getOrCreateInput(e)

	for _, scope := range ActiveScopes(data) {
		in := InputFor(data, scope)
		if !in.JustPressed(cfg.ActionPause) {
			continue
		}
		if !pause.IsPaused {
			pause.IsPaused = true
			pause.PausedBy = scope
			return
		}
		if pause.PausedBy == scope {
			pause.IsPaused = false
			return
		}
	}
}

// DrawPause renders the pause overlay and how to resume.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.BlackOverlay,
		false,
	)

	title := "PAUSED"
	// Center text horizontally (approximate width calculation for 20pt font)
	text.Draw(screen, title, fonts.Bold.Get(), int(width/2)-len(title)*6, int(height/2), cfg.White)

	hint := pauseHint(getOrCreateInput(e), pause)
	hintWidth := len(hint) * 6
	text.Draw(screen, hint, fonts.Small.Get(), int((width-float64(hintWidth))/2), int(height)-12, cfg.Grey)
}

// pauseHint lists the chords the pausing scope can resume with
func pauseHint(data *components.InputData, pause *components.PauseData) string {
	var chords []string
	if id, ok := pause.PausedBy.ID(); ok {
		for _, c := range data.Map.Player(id).Chords(cfg.ActionPause) {
			chords = append(chords, c.String())
		}
	} else {
		for _, c := range data.Map.Chords(cfg.ActionPause) {
			chords = append(chords, c.String())
		}
	}
	if len(chords) == 0 {
		return "Paused by " + pause.PausedBy.String()
	}
	return "Resume: " + strings.Join(chords, " or ")
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the Pause component of the input entity
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	getOrCreateInput(e)
	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
