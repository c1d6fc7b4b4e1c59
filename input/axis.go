package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// deadzonePrecision scales deadzones to integers so axis sources can be
// compared and deduplicated.
const deadzonePrecision = 10000

// GamepadAxis identifies a physical analog axis. Vertical axes are positive
// upwards.
type GamepadAxis uint8

const (
	LeftStickX GamepadAxis = iota
	LeftStickY
	RightStickX
	RightStickY
	LeftTrigger
	RightTrigger
	DPadX
	DPadY
)

var gamepadAxisNames = []string{
	LeftStickX:   "LeftStickX",
	LeftStickY:   "LeftStickY",
	RightStickX:  "RightStickX",
	RightStickY:  "RightStickY",
	LeftTrigger:  "LeftTrigger",
	RightTrigger: "RightTrigger",
	DPadX:        "DPadX",
	DPadY:        "DPadY",
}

func (a GamepadAxis) String() string {
	if int(a) < len(gamepadAxisNames) {
		return gamepadAxisNames[a]
	}
	return fmt.Sprintf("axis(%d)", uint8(a))
}

func (a GamepadAxis) MarshalText() ([]byte, error) {
	if int(a) >= len(gamepadAxisNames) {
		return nil, fmt.Errorf("marshal gamepad axis: unknown axis %d", uint8(a))
	}
	return []byte(a.String()), nil
}

func (a *GamepadAxis) UnmarshalText(text []byte) error {
	for i, name := range gamepadAxisNames {
		if name == string(text) {
			*a = GamepadAxis(i)
			return nil
		}
	}
	return fmt.Errorf("parse gamepad axis %q: unknown axis", text)
}

// dpadButtons returns the button pair a D-pad axis is rewritten to. D-pads
// report as buttons on most platforms, so they never reach bound axes.
func (a GamepadAxis) dpadButtons() (neg, pos ButtonCode, ok bool) {
	switch a {
	case DPadX:
		return GamepadButton(ebiten.StandardGamepadButtonLeftLeft),
			GamepadButton(ebiten.StandardGamepadButtonLeftRight), true
	case DPadY:
		return GamepadButton(ebiten.StandardGamepadButtonLeftBottom),
			GamepadButton(ebiten.StandardGamepadButtonLeftTop), true
	}
	return ButtonCode{}, ButtonCode{}, false
}

// AxisKind tells which variant an AxisBinding holds
type AxisKind uint8

const (
	AxisButtons AxisKind = iota + 1
	AxisGamepad
)

// AxisBinding is either a pair of opposing buttons or a physical gamepad axis.
type AxisBinding struct {
	Kind     AxisKind
	Negative ButtonCode
	Positive ButtonCode
	Axis     GamepadAxis
}

// Buttons binds an axis to a negative/positive button pair
func Buttons(neg, pos ButtonCode) AxisBinding {
	return AxisBinding{Kind: AxisButtons, Negative: neg, Positive: pos}
}

// Analog binds an axis to a physical gamepad axis
func Analog(axis GamepadAxis) AxisBinding {
	return AxisBinding{Kind: AxisGamepad, Axis: axis}
}

func (b AxisBinding) String() string {
	switch b.Kind {
	case AxisButtons:
		return fmt.Sprintf("%s/%s", b.Negative, b.Positive)
	case AxisGamepad:
		return "axis:" + b.Axis.String()
	}
	return "axis:none"
}

type axisBindingJSON struct {
	Buttons     []ButtonCode `json:"buttons,omitempty"`
	GamepadAxis *GamepadAxis `json:"gamepad_axis,omitempty"`
}

func (b AxisBinding) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case AxisButtons:
		return json.Marshal(axisBindingJSON{Buttons: []ButtonCode{b.Negative, b.Positive}})
	case AxisGamepad:
		axis := b.Axis
		return json.Marshal(axisBindingJSON{GamepadAxis: &axis})
	}
	return nil, errors.New("marshal axis binding: empty binding")
}

func (b *AxisBinding) UnmarshalJSON(data []byte) error {
	var raw axisBindingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.GamepadAxis != nil && raw.Buttons == nil:
		*b = Analog(*raw.GamepadAxis)
	case raw.GamepadAxis == nil && len(raw.Buttons) == 2:
		*b = Buttons(raw.Buttons[0], raw.Buttons[1])
	default:
		return fmt.Errorf("parse axis binding %s: need either two buttons or a gamepad axis", data)
	}
	return nil
}

// AxisSource is one contributing binding of an axis action together with its
// quantized deadzone.
type AxisSource struct {
	Binding  AxisBinding
	Deadzone uint32
}

// NewAxisSource quantizes deadzone, clamped to [0, 1].
func NewAxisSource(binding AxisBinding, deadzone float64) AxisSource {
	return AxisSource{Binding: binding, Deadzone: quantizeDeadzone(deadzone)}
}

// DeadzoneValue returns the deadzone as a fraction of the full axis range
func (s AxisSource) DeadzoneValue() float64 {
	return float64(s.Deadzone) / deadzonePrecision
}

type axisSourceJSON struct {
	Binding  AxisBinding `json:"binding"`
	Deadzone float64     `json:"deadzone,omitempty"`
}

func (s AxisSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(axisSourceJSON{Binding: s.Binding, Deadzone: s.DeadzoneValue()})
}

func (s *AxisSource) UnmarshalJSON(data []byte) error {
	var raw axisSourceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewAxisSource(raw.Binding, raw.Deadzone)
	return nil
}

func quantizeDeadzone(deadzone float64) uint32 {
	if math.IsNaN(deadzone) || deadzone <= 0 {
		return 0
	}
	if deadzone >= 1 {
		return deadzonePrecision
	}
	return uint32(math.Round(deadzone * deadzonePrecision))
}

// applyDeadzone zeroes readings inside the deadzone and rescales the rest
// of the range back onto (0, 1].
func applyDeadzone(raw float64, deadzone uint32) float64 {
	if deadzone == 0 {
		return raw
	}
	raw = math.Max(-1, math.Min(1, raw))
	dz := float64(deadzone) / deadzonePrecision
	abs := math.Abs(raw)
	if abs <= dz {
		return 0
	}
	return math.Copysign((abs-dz)/(1-dz), raw)
}
