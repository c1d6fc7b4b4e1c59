package systems

import (
	"github.com/automoto/actioninput/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenPlatform reads devices through ebiten. Only gamepads with the
// standard layout are reported.
type ebitenPlatform struct {
	ids []ebiten.GamepadID
}

var platform = &ebitenPlatform{}

func (p *ebitenPlatform) ButtonState(b input.ButtonCode) input.ButtonState {
	if k, ok := b.AsKey(); ok {
		return input.ClassifyButton(
			inpututil.IsKeyJustPressed(k),
			inpututil.IsKeyJustReleased(k),
			ebiten.IsKeyPressed(k),
		)
	}
	if mb, ok := b.AsMouse(); ok {
		return input.ClassifyButton(
			inpututil.IsMouseButtonJustPressed(mb),
			inpututil.IsMouseButtonJustReleased(mb),
			ebiten.IsMouseButtonPressed(mb),
		)
	}
	return input.ButtonIdle
}

func (p *ebitenPlatform) GamepadIDs() []ebiten.GamepadID {
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	n := 0
	for _, id := range p.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			p.ids[n] = id
			n++
		}
	}
	p.ids = p.ids[:n]
	return p.ids
}

func (p *ebitenPlatform) GamepadButtonState(id ebiten.GamepadID, b input.ButtonCode) input.ButtonState {
	btn, ok := b.AsGamepadButton()
	if !ok {
		return input.ButtonIdle
	}
	return input.ClassifyButton(
		inpututil.IsStandardGamepadButtonJustPressed(id, btn),
		inpututil.IsStandardGamepadButtonJustReleased(id, btn),
		ebiten.IsStandardGamepadButtonPressed(id, btn),
	)
}

// GamepadAxisValue flips ebiten's down-positive vertical sticks so that up
// is positive.
func (p *ebitenPlatform) GamepadAxisValue(id ebiten.GamepadID, axis input.GamepadAxis) float64 {
	switch axis {
	case input.LeftStickX:
		return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	case input.LeftStickY:
		return -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	case input.RightStickX:
		return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	case input.RightStickY:
		return -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	case input.LeftTrigger:
		return ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	case input.RightTrigger:
		return ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return 0
}
