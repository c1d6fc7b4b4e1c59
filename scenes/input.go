package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputScene shows one avatar per active input scope together with the
// resolved input of every scope.
type InputScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

// NewInputScene creates a new input demo scene
func NewInputScene() *InputScene {
	return &InputScene{}
}

func (is *InputScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()
}

func (is *InputScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if is.ecs == nil {
		return
	}
	is.ecs.Draw(screen)
}

func (is *InputScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateBindingsIO)
	ecs.AddSystem(systems.UpdateBindingHotkeys)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause check
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayers))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawInputDebug)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawPause)

	is.ecs = ecs

	if !cfg.Debug.SkipLoad {
		systems.RequestBindingsLoad(ecs)
	}
}
