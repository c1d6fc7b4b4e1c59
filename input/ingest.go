package input

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Platform reports raw device state for the current tick. Button states are
// already classified: pressed this tick, held, released this tick or idle.
type Platform interface {
	// ButtonState reports keyboard and mouse buttons.
	ButtonState(button ButtonCode) ButtonState
	GamepadIDs() []ebiten.GamepadID
	GamepadButtonState(id ebiten.GamepadID, button ButtonCode) ButtonState
	GamepadAxisValue(id ebiten.GamepadID, axis GamepadAxis) float64
}

// Ingest copies this tick's device state for every button and axis the map
// reads. Keyboard and mouse are shared by every scope. A gamepad feeds the
// scope of the player it is mapped to in gamepads, or the global scope when
// unmapped; gamepads sharing a scope are merged.
func (in *ActionInput[K, A]) Ingest(m *ActionMap[K, A], p Platform, gamepads *GamepadMap) {
	in.init()
	pads := p.GamepadIDs()

	for key := range m.boundKeys {
		switch key.Value.Device {
		case DeviceKeyboard, DeviceMouse:
			in.buttonStates[key] = p.ButtonState(key.Value)
		case DeviceGamepad:
			state := ButtonIdle
			for _, id := range pads {
				if gamepads.ScopeFor(id) != key.Scope {
					continue
				}
				state = mergeButtonStates(state, p.GamepadButtonState(id, key.Value))
			}
			in.buttonStates[key] = state
		}
	}

	for key := range in.gamepadAxesValues {
		in.gamepadAxesValues[key] = 0
	}
	for _, id := range pads {
		scope := gamepads.ScopeFor(id)
		for axis := range m.boundAxes {
			v := p.GamepadAxisValue(id, axis)
			key := PlayerData[GamepadAxis]{Scope: scope, Value: axis}
			if math.Abs(v) > math.Abs(in.gamepadAxesValues[key]) {
				in.gamepadAxesValues[key] = v
			}
		}
	}
}

// GamepadMap tracks connected gamepads and which player each one drives.
// A nil *GamepadMap maps every gamepad to the global scope.
type GamepadMap struct {
	connected map[ebiten.GamepadID]struct{}
	mapped    map[ebiten.GamepadID]int
}

func NewGamepadMap() *GamepadMap {
	return &GamepadMap{
		connected: make(map[ebiten.GamepadID]struct{}),
		mapped:    make(map[ebiten.GamepadID]int),
	}
}

// MapGamepad routes gamepad id to player
func (g *GamepadMap) MapGamepad(id ebiten.GamepadID, player int) {
	g.mapped[id] = player
}

func (g *GamepadMap) UnmapGamepad(id ebiten.GamepadID) {
	delete(g.mapped, id)
}

// ScopeFor returns the scope gamepad id feeds
func (g *GamepadMap) ScopeFor(id ebiten.GamepadID) Scope {
	if g == nil {
		return Global
	}
	if player, ok := g.mapped[id]; ok {
		return Player(player)
	}
	return Global
}

// Connect records a gamepad connection. It reports false if the gamepad was
// already known.
func (g *GamepadMap) Connect(id ebiten.GamepadID) bool {
	if _, ok := g.connected[id]; ok {
		return false
	}
	g.connected[id] = struct{}{}
	return true
}

// Disconnect forgets a connection; the player mapping is kept so a
// reconnecting gamepad drives the same player.
func (g *GamepadMap) Disconnect(id ebiten.GamepadID) {
	delete(g.connected, id)
}

func (g *GamepadMap) IsConnected(id ebiten.GamepadID) bool {
	_, ok := g.connected[id]
	return ok
}

// Connected lists the connected gamepads in ascending order
func (g *GamepadMap) Connected() []ebiten.GamepadID {
	ids := make([]ebiten.GamepadID, 0, len(g.connected))
	for id := range g.connected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
