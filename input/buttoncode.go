package input

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Device identifies the kind of physical device a ButtonCode belongs to
type Device uint8

const (
	DeviceNone Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
)

var deviceNames = map[Device]string{
	DeviceKeyboard: "key",
	DeviceMouse:    "mouse",
	DeviceGamepad:  "gamepad",
}

func (d Device) String() string {
	if name, ok := deviceNames[d]; ok {
		return name
	}
	return fmt.Sprintf("device(%d)", uint8(d))
}

// ButtonCode identifies a physical button independent of what it is bound to.
// Code holds the raw ebiten enum value for the device.
type ButtonCode struct {
	Device Device
	Code   int
}

// Key converts an ebiten keyboard key
func Key(k ebiten.Key) ButtonCode {
	return ButtonCode{Device: DeviceKeyboard, Code: int(k)}
}

// Mouse converts an ebiten mouse button
func Mouse(b ebiten.MouseButton) ButtonCode {
	return ButtonCode{Device: DeviceMouse, Code: int(b)}
}

// GamepadButton converts an ebiten standard-layout gamepad button
func GamepadButton(b ebiten.StandardGamepadButton) ButtonCode {
	return ButtonCode{Device: DeviceGamepad, Code: int(b)}
}

// Keys converts a list of keyboard keys, handy for chord bindings.
func Keys(keys ...ebiten.Key) []ButtonCode {
	codes := make([]ButtonCode, len(keys))
	for i, k := range keys {
		codes[i] = Key(k)
	}
	return codes
}

// AsKey returns the keyboard key, if b is one
func (b ButtonCode) AsKey() (ebiten.Key, bool) {
	return ebiten.Key(b.Code), b.Device == DeviceKeyboard
}

// AsMouse returns the mouse button, if b is one
func (b ButtonCode) AsMouse() (ebiten.MouseButton, bool) {
	return ebiten.MouseButton(b.Code), b.Device == DeviceMouse
}

// AsGamepadButton returns the standard gamepad button, if b is one
func (b ButtonCode) AsGamepadButton() (ebiten.StandardGamepadButton, bool) {
	return ebiten.StandardGamepadButton(b.Code), b.Device == DeviceGamepad
}

func (b ButtonCode) playerData(scope Scope) PlayerData[ButtonCode] {
	return PlayerData[ButtonCode]{Scope: scope, Value: b}
}

func compareButtons(a, b ButtonCode) int {
	if c := cmp.Compare(a.Device, b.Device); c != 0 {
		return c
	}
	return cmp.Compare(a.Code, b.Code)
}

var mouseNames = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:   "Left",
	ebiten.MouseButtonRight:  "Right",
	ebiten.MouseButtonMiddle: "Middle",
	ebiten.MouseButton3:      "Back",
	ebiten.MouseButton4:      "Forward",
}

var gamepadButtonNames = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:      "RightBottom",
	ebiten.StandardGamepadButtonRightRight:       "RightRight",
	ebiten.StandardGamepadButtonRightLeft:        "RightLeft",
	ebiten.StandardGamepadButtonRightTop:         "RightTop",
	ebiten.StandardGamepadButtonFrontTopLeft:     "FrontTopLeft",
	ebiten.StandardGamepadButtonFrontTopRight:    "FrontTopRight",
	ebiten.StandardGamepadButtonFrontBottomLeft:  "FrontBottomLeft",
	ebiten.StandardGamepadButtonFrontBottomRight: "FrontBottomRight",
	ebiten.StandardGamepadButtonCenterLeft:       "CenterLeft",
	ebiten.StandardGamepadButtonCenterRight:      "CenterRight",
	ebiten.StandardGamepadButtonLeftStick:        "LeftStick",
	ebiten.StandardGamepadButtonRightStick:       "RightStick",
	ebiten.StandardGamepadButtonLeftTop:          "LeftTop",
	ebiten.StandardGamepadButtonLeftBottom:       "LeftBottom",
	ebiten.StandardGamepadButtonLeftLeft:         "LeftLeft",
	ebiten.StandardGamepadButtonLeftRight:        "LeftRight",
	ebiten.StandardGamepadButtonCenterCenter:     "CenterCenter",
}

// String renders the button as "device:name", e.g. "key:Space" or "gamepad:RightBottom".
func (b ButtonCode) String() string {
	var name string
	switch b.Device {
	case DeviceKeyboard:
		name = ebiten.Key(b.Code).String()
	case DeviceMouse:
		name = mouseNames[ebiten.MouseButton(b.Code)]
	case DeviceGamepad:
		name = gamepadButtonNames[ebiten.StandardGamepadButton(b.Code)]
	}
	if name == "" {
		name = fmt.Sprint(b.Code)
	}
	return b.Device.String() + ":" + name
}

func (b ButtonCode) MarshalText() ([]byte, error) {
	if b.Device == DeviceNone {
		return nil, fmt.Errorf("marshal button: no device")
	}
	return []byte(b.String()), nil
}

func (b *ButtonCode) UnmarshalText(text []byte) error {
	device, name, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("parse button %q: expected device:name", text)
	}

	switch device {
	case "key":
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return fmt.Errorf("parse button %q: %w", text, err)
		}
		*b = Key(k)
	case "mouse":
		for mb, n := range mouseNames {
			if n == name {
				*b = Mouse(mb)
				return nil
			}
		}
		return fmt.Errorf("parse button %q: unknown mouse button", text)
	case "gamepad":
		for gb, n := range gamepadButtonNames {
			if n == name {
				*b = GamepadButton(gb)
				return nil
			}
		}
		return fmt.Errorf("parse button %q: unknown gamepad button", text)
	default:
		return fmt.Errorf("parse button %q: unknown device %q", text, device)
	}
	return nil
}
