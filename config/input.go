package config

import (
	"fmt"

	"github.com/automoto/actioninput/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionAttack
	ActionDodge
	ActionSpecial
	ActionPause
	ActionSaveBindings
	ActionLoadBindings
	ActionResetBindings
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "None",
	ActionJump:          "Jump",
	ActionAttack:        "Attack",
	ActionDodge:         "Dodge",
	ActionSpecial:       "Special",
	ActionPause:         "Pause",
	ActionSaveBindings:  "SaveBindings",
	ActionLoadBindings:  "LoadBindings",
	ActionResetBindings: "ResetBindings",
}

func (a ActionID) String() string {
	if a >= 0 && a < ActionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("ActionID(%d)", int(a))
}

func (a ActionID) MarshalText() ([]byte, error) {
	if a < 0 || a >= ActionCount {
		return nil, fmt.Errorf("marshal action: unknown action %d", int(a))
	}
	return []byte(actionNames[a]), nil
}

func (a *ActionID) UnmarshalText(text []byte) error {
	for id, name := range actionNames {
		if name == string(text) {
			*a = ActionID(id)
			return nil
		}
	}
	return fmt.Errorf("parse action %q: unknown action", text)
}

// AxisID represents a logical analog axis
type AxisID int

const (
	AxisMoveX AxisID = iota
	AxisMoveY
	AxisAimX
	AxisAimY
	AxisCount
)

var axisNames = [AxisCount]string{
	AxisMoveX: "MoveX",
	AxisMoveY: "MoveY",
	AxisAimX:  "AimX",
	AxisAimY:  "AimY",
}

func (a AxisID) String() string {
	if a >= 0 && a < AxisCount {
		return axisNames[a]
	}
	return fmt.Sprintf("AxisID(%d)", int(a))
}

func (a AxisID) MarshalText() ([]byte, error) {
	if a < 0 || a >= AxisCount {
		return nil, fmt.Errorf("marshal axis: unknown axis %d", int(a))
	}
	return []byte(axisNames[a]), nil
}

func (a *AxisID) UnmarshalText(text []byte) error {
	for id, name := range axisNames {
		if name == string(text) {
			*a = AxisID(id)
			return nil
		}
	}
	return fmt.Errorf("parse axis %q: unknown axis", text)
}

// ActionMap and ActionInput instantiated for the game's actions
type (
	ActionMap   = input.ActionMap[ActionID, AxisID]
	ActionInput = input.ActionInput[ActionID, AxisID]
)

// InputBinding represents the chords bound to an action. Each entry of
// Chords is one alternative; a single-button entry is a plain binding.
type InputBinding struct {
	Chords [][]input.ButtonCode
}

// AxisBinding represents the sources feeding an axis
type AxisBinding struct {
	Sources  []input.AxisBinding
	Deadzone float64 // applied to analog sources only
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Global scope: keyboard, mouse and gamepads not assigned to a player
	Bindings     map[ActionID]InputBinding
	AxisBindings map[AxisID]AxisBinding

	// Bound once per player scope, for gamepads assigned to that player
	PlayerBindings     map[ActionID]InputBinding
	PlayerAxisBindings map[AxisID]AxisBinding

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Tick length in seconds used when the engine reports no tick rate
	FallbackTickDelta float64
	// Local players that gamepads are assigned to, in connection order
	MaxPlayers int

	// Persistence
	AppName      string
	BindingsItem string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:    0.25,
		FallbackTickDelta: 1.0 / 60,
		MaxPlayers:        4,
		AppName:           "actioninput",
		BindingsItem:      "bindings",
		Bindings: map[ActionID]InputBinding{
			ActionJump: {
				Chords: [][]input.ButtonCode{
					{input.Key(ebiten.KeySpace)},
					// A / Cross button
					{input.GamepadButton(ebiten.StandardGamepadButtonRightBottom)},
				},
			},
			ActionAttack: {
				Chords: [][]input.ButtonCode{
					{input.Key(ebiten.KeyJ)},
					{input.Mouse(ebiten.MouseButtonLeft)},
					// X / Square button
					{input.GamepadButton(ebiten.StandardGamepadButtonRightLeft)},
				},
			},
			ActionDodge: {
				Chords: [][]input.ButtonCode{
					{input.Key(ebiten.KeyK)},
					{input.Mouse(ebiten.MouseButtonRight)},
					// B / Circle button
					{input.GamepadButton(ebiten.StandardGamepadButtonRightRight)},
				},
			},
			ActionSpecial: {
				Chords: [][]input.ButtonCode{
					input.Keys(ebiten.KeyShiftLeft, ebiten.KeyE),
					// Both bumpers
					{
						input.GamepadButton(ebiten.StandardGamepadButtonFrontTopLeft),
						input.GamepadButton(ebiten.StandardGamepadButtonFrontTopRight),
					},
				},
			},
			ActionPause: {
				Chords: [][]input.ButtonCode{
					{input.Key(ebiten.KeyEscape)},
					// Start / Options button
					{input.GamepadButton(ebiten.StandardGamepadButtonCenterRight)},
				},
			},
			ActionSaveBindings: {
				Chords: [][]input.ButtonCode{
					input.Keys(ebiten.KeyControlLeft, ebiten.KeyS),
				},
			},
			ActionLoadBindings: {
				Chords: [][]input.ButtonCode{
					input.Keys(ebiten.KeyControlLeft, ebiten.KeyL),
				},
			},
			ActionResetBindings: {
				Chords: [][]input.ButtonCode{
					input.Keys(ebiten.KeyControlLeft, ebiten.KeyBackspace),
				},
			},
		},
		AxisBindings: map[AxisID]AxisBinding{
			AxisMoveX: {
				Sources: []input.AxisBinding{
					input.Buttons(input.Key(ebiten.KeyA), input.Key(ebiten.KeyD)),
					input.Buttons(input.Key(ebiten.KeyArrowLeft), input.Key(ebiten.KeyArrowRight)),
					input.Analog(input.LeftStickX),
					input.Analog(input.DPadX),
				},
			},
			AxisMoveY: {
				Sources: []input.AxisBinding{
					input.Buttons(input.Key(ebiten.KeyS), input.Key(ebiten.KeyW)),
					input.Buttons(input.Key(ebiten.KeyArrowDown), input.Key(ebiten.KeyArrowUp)),
					input.Analog(input.LeftStickY),
					input.Analog(input.DPadY),
				},
			},
			AxisAimX: {
				Sources: []input.AxisBinding{input.Analog(input.RightStickX)},
			},
			AxisAimY: {
				Sources: []input.AxisBinding{input.Analog(input.RightStickY)},
			},
		},
		PlayerBindings: map[ActionID]InputBinding{
			ActionJump: {
				Chords: [][]input.ButtonCode{{input.GamepadButton(ebiten.StandardGamepadButtonRightBottom)}},
			},
			ActionAttack: {
				Chords: [][]input.ButtonCode{{input.GamepadButton(ebiten.StandardGamepadButtonRightLeft)}},
			},
			ActionDodge: {
				Chords: [][]input.ButtonCode{{input.GamepadButton(ebiten.StandardGamepadButtonRightRight)}},
			},
			ActionSpecial: {
				Chords: [][]input.ButtonCode{{
					input.GamepadButton(ebiten.StandardGamepadButtonFrontTopLeft),
					input.GamepadButton(ebiten.StandardGamepadButtonFrontTopRight),
				}},
			},
			ActionPause: {
				Chords: [][]input.ButtonCode{{input.GamepadButton(ebiten.StandardGamepadButtonCenterRight)}},
			},
		},
		PlayerAxisBindings: map[AxisID]AxisBinding{
			AxisMoveX: {
				Sources: []input.AxisBinding{input.Analog(input.LeftStickX), input.Analog(input.DPadX)},
			},
			AxisMoveY: {
				Sources: []input.AxisBinding{input.Analog(input.LeftStickY), input.Analog(input.DPadY)},
			},
			AxisAimX: {
				Sources: []input.AxisBinding{input.Analog(input.RightStickX)},
			},
			AxisAimY: {
				Sources: []input.AxisBinding{input.Analog(input.RightStickY)},
			},
		},
	}
}

// NewDefaultBindings builds an ActionMap from Input: the global bindings plus
// one copy of the player bindings for every local player.
func NewDefaultBindings() (*ActionMap, error) {
	m := input.NewActionMap[ActionID, AxisID]()
	if err := ApplyDefaultBindings(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ApplyDefaultBindings clears m and binds the defaults into it. On error m
// holds the bindings made before the failing one.
func ApplyDefaultBindings(m *ActionMap) error {
	m.ClearBindings()

	for action := ActionID(0); action < ActionCount; action++ {
		for _, chord := range Input.Bindings[action].Chords {
			if err := m.BindButtonCombinationAction(action, chord...); err != nil {
				return fmt.Errorf("default binding %s: %w", action, err)
			}
		}
	}
	for axis := AxisID(0); axis < AxisCount; axis++ {
		binding := Input.AxisBindings[axis]
		for _, src := range binding.Sources {
			m.BindAxisWithDeadzone(axis, src, deadzoneFor(binding, src))
		}
	}

	for player := 0; player < Input.MaxPlayers; player++ {
		p := m.Player(player)
		for action := ActionID(0); action < ActionCount; action++ {
			for _, chord := range Input.PlayerBindings[action].Chords {
				if err := p.BindButtonCombinationAction(action, chord...); err != nil {
					return fmt.Errorf("default binding %s for player %d: %w", action, player, err)
				}
			}
		}
		for axis := AxisID(0); axis < AxisCount; axis++ {
			binding := Input.PlayerAxisBindings[axis]
			for _, src := range binding.Sources {
				p.BindAxisWithDeadzone(axis, src, deadzoneFor(binding, src))
			}
		}
	}
	return nil
}

func deadzoneFor(b AxisBinding, src input.AxisBinding) float64 {
	if src.Kind != input.AxisGamepad {
		return 0
	}
	if b.Deadzone > 0 {
		return b.Deadzone
	}
	return Input.AnalogDeadzone
}
