package systems

import (
	"log"

	"github.com/automoto/actioninput/archetypes"
	"github.com/automoto/actioninput/components"
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var justConnected []ebiten.GamepadID

// UpdateInput polls devices and resolves every action and axis for this tick.
// Must run BEFORE any system reading actions.
func UpdateInput(e *ecs.ECS) {
	data := getOrCreateInput(e)

	justConnected = inpututil.AppendJustConnectedGamepadIDs(justConnected[:0])
	for _, id := range justConnected {
		connectGamepad(data.Gamepads, id, ebiten.GamepadName(id))
	}
	for _, id := range data.Gamepads.Connected() {
		if inpututil.IsGamepadJustDisconnected(id) {
			disconnectGamepad(data.Gamepads, id)
		}
	}

	data.State.Ingest(data.Map, platform, data.Gamepads)
	input.Update(data.State, data.Map, tickDelta())
}

// connectGamepad records a new gamepad and assigns it to the lowest free
// player slot. A gamepad seen before keeps its player unless another
// connected gamepad took it meanwhile; once every slot is taken further
// gamepads feed the global scope.
func connectGamepad(g *input.GamepadMap, id ebiten.GamepadID, name string) input.Scope {
	if !g.Connect(id) {
		return g.ScopeFor(id)
	}

	if player, ok := g.ScopeFor(id).ID(); ok && playerTaken(g, id, player) {
		g.UnmapGamepad(id)
	}
	if g.ScopeFor(id).IsGlobal() {
		if player, ok := freePlayerSlot(g, cfg.Input.MaxPlayers); ok {
			g.MapGamepad(id, player)
		}
	}

	scope := g.ScopeFor(id)
	if cfg.Debug.LogGamepads {
		log.Printf("Gamepad %d connected (%s), driving %s", id, name, scope)
	}
	return scope
}

func disconnectGamepad(g *input.GamepadMap, id ebiten.GamepadID) {
	g.Disconnect(id)
	if cfg.Debug.LogGamepads {
		log.Printf("Gamepad %d disconnected", id)
	}
}

// playerTaken reports whether a connected gamepad other than id drives player
func playerTaken(g *input.GamepadMap, id ebiten.GamepadID, player int) bool {
	for _, other := range g.Connected() {
		if other == id {
			continue
		}
		if p, ok := g.ScopeFor(other).ID(); ok && p == player {
			return true
		}
	}
	return false
}

// freePlayerSlot returns the lowest player below limit not driven by a
// connected gamepad.
func freePlayerSlot(g *input.GamepadMap, limit int) (int, bool) {
	taken := make(map[int]bool)
	for _, id := range g.Connected() {
		if player, ok := g.ScopeFor(id).ID(); ok {
			taken[player] = true
		}
	}
	for player := 0; player < limit; player++ {
		if !taken[player] {
			return player, true
		}
	}
	return 0, false
}

// tickDelta is the length of one update in seconds
func tickDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return cfg.Input.FallbackTickDelta
	}
	return 1 / float64(tps)
}

// NewInputData builds input state bound to the default bindings
func NewInputData() (components.InputData, error) {
	m, err := cfg.NewDefaultBindings()
	if err != nil {
		return components.InputData{}, err
	}
	return components.InputData{
		Map:      m,
		State:    input.NewActionInput[cfg.ActionID, cfg.AxisID](),
		Gamepads: input.NewGamepadMap(),
	}, nil
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
		data, err := NewInputData()
		if err != nil {
			log.Printf("Warning: Could not apply default bindings: %v", err)
			data = components.InputData{
				Map:      input.NewActionMap[cfg.ActionID, cfg.AxisID](),
				State:    input.NewActionInput[cfg.ActionID, cfg.AxisID](),
				Gamepads: input.NewGamepadMap(),
			}
		}
		components.Input.SetValue(entry, data)
	}
	return components.Input.Get(entry)
}

// ActiveScopes lists the global scope followed by the scope of every
// connected gamepad assigned to a player, without repeats.
func ActiveScopes(data *components.InputData) []input.Scope {
	scopes := []input.Scope{input.Global}
	seen := map[input.Scope]bool{input.Global: true}
	for _, id := range data.Gamepads.Connected() {
		scope := data.Gamepads.ScopeFor(id)
		if !seen[scope] {
			seen[scope] = true
			scopes = append(scopes, scope)
		}
	}
	return scopes
}

// ScopeInput reads the resolved actions of one scope
type ScopeInput interface {
	JustPressed(action cfg.ActionID) bool
	Held(action cfg.ActionID) bool
	JustReleased(action cfg.ActionID) bool
	Used(action cfg.ActionID) bool
	UseButtonAction(action cfg.ActionID)
	ActionState(action cfg.ActionID) (input.ActionState, bool)
	Axis(axis cfg.AxisID) float64
	XYAxes(x, y cfg.AxisID) math.Vec2
	XYAxesRaw(x, y cfg.AxisID) math.Vec2
}

// InputFor returns the resolved input of scope
func InputFor(data *components.InputData, scope input.Scope) ScopeInput {
	if id, ok := scope.ID(); ok {
		return data.State.Player(id)
	}
	return data.State
}
