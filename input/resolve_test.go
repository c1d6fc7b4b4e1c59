package input

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 0.1

type frame map[ButtonCode]ButtonState

// step writes one tick of global button states and runs both resolvers.
// Buttons missing from f are idle.
func step(in *ActionInput[testAction, testAxis], m *testMap, f frame) {
	for k := range in.buttonStates {
		in.buttonStates[k] = ButtonIdle
	}
	for b, s := range f {
		in.SetButtonState(NewPlayerData(b), s)
	}
	Update(in, m, tick)
}

func TestSingleButtonLifecycle(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	require.NoError(t, m.BindButtonAction(actionJump, Key(ebiten.KeySpace)))
	in := NewActionInput[testAction, testAxis]()
	space := Key(ebiten.KeySpace)

	step(in, m, frame{})
	_, ok := in.ActionState(actionJump)
	assert.False(t, ok)

	step(in, m, frame{space: ButtonPressed})
	assert.True(t, in.JustPressed(actionJump))
	state, ok := in.ActionState(actionJump)
	require.True(t, ok)
	assert.Equal(t, ActionState{Phase: ActionPressed}, state)

	step(in, m, frame{space: ButtonHeld})
	assert.True(t, in.Held(actionJump))
	state, _ = in.ActionState(actionJump)
	assert.InDelta(t, 0.1, state.Duration, 1e-9)

	step(in, m, frame{space: ButtonHeld})
	state, _ = in.ActionState(actionJump)
	assert.Equal(t, ActionHeld, state.Phase)
	assert.InDelta(t, 0.2, state.Duration, 1e-9)

	step(in, m, frame{space: ButtonReleased})
	assert.True(t, in.JustReleased(actionJump))
	state, _ = in.ActionState(actionJump)
	assert.InDelta(t, 0.3, state.Duration, 1e-9)

	step(in, m, frame{})
	_, ok = in.ActionState(actionJump)
	assert.False(t, ok)
}

func TestHeldDurationCarriesIntoRelease(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	require.NoError(t, m.BindButtonAction(actionJump, Key(ebiten.KeySpace)))
	in := NewActionInput[testAction, testAxis]()
	space := Key(ebiten.KeySpace)

	step(in, m, frame{space: ButtonPressed})
	step(in, m, frame{space: ButtonHeld})
	state, _ := in.ActionState(actionJump)
	assert.Equal(t, ActionHeld, state.Phase)
	assert.InDelta(t, 0.1, state.Duration, 1e-9)

	step(in, m, frame{})
	state, _ = in.ActionState(actionJump)
	assert.Equal(t, ActionReleased, state.Phase)
	assert.InDelta(t, 0.2, state.Duration, 1e-9)
}

func TestChordNeedsFreshPress(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	require.NoError(t, m.BindButtonCombinationAction(actionSpecial, Keys(ebiten.KeyA, ebiten.KeyB)...))
	in := NewActionInput[testAction, testAxis]()
	a, b := Key(ebiten.KeyA), Key(ebiten.KeyB)

	// both keys already down, neither pressed this tick
	step(in, m, frame{a: ButtonHeld, b: ButtonHeld})
	_, ok := in.ActionState(actionSpecial)
	assert.False(t, ok)
	step(in, m, frame{a: ButtonHeld, b: ButtonHeld})
	_, ok = in.ActionState(actionSpecial)
	assert.False(t, ok)

	// one key alone is not enough
	step(in, m, frame{a: ButtonPressed})
	assert.False(t, in.JustPressed(actionSpecial))

	step(in, m, frame{a: ButtonHeld, b: ButtonPressed})
	assert.True(t, in.JustPressed(actionSpecial))

	step(in, m, frame{a: ButtonHeld, b: ButtonHeld})
	assert.True(t, in.Held(actionSpecial))

	step(in, m, frame{a: ButtonHeld, b: ButtonReleased})
	assert.True(t, in.JustReleased(actionSpecial))
}

func TestAlternativeChords(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	require.NoError(t, m.BindButtonAction(actionJump, Key(ebiten.KeySpace)))
	require.NoError(t, m.BindButtonAction(actionJump, GamepadButton(ebiten.StandardGamepadButtonRightBottom)))
	in := NewActionInput[testAction, testAxis]()
	space := Key(ebiten.KeySpace)
	pad := GamepadButton(ebiten.StandardGamepadButtonRightBottom)

	step(in, m, frame{pad: ButtonPressed})
	assert.True(t, in.JustPressed(actionJump))

	// hand over from the pad to the keyboard without releasing
	step(in, m, frame{pad: ButtonReleased, space: ButtonPressed})
	assert.True(t, in.Held(actionJump))

	step(in, m, frame{space: ButtonHeld})
	assert.True(t, in.Held(actionJump))

	step(in, m, frame{space: ButtonReleased})
	assert.True(t, in.JustReleased(actionJump))
}

func TestUseButtonAction(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	require.NoError(t, m.BindButtonAction(actionJump, Key(ebiten.KeySpace)))
	in := NewActionInput[testAction, testAxis]()
	space := Key(ebiten.KeySpace)

	step(in, m, frame{space: ButtonPressed})
	require.True(t, in.JustPressed(actionJump))
	in.UseButtonAction(actionJump)
	assert.True(t, in.Used(actionJump))
	assert.False(t, in.JustPressed(actionJump))

	// still holding the key does not trigger it again
	step(in, m, frame{space: ButtonHeld})
	assert.False(t, in.JustPressed(actionJump))
	assert.False(t, in.Held(actionJump))
	_, ok := in.ActionState(actionJump)
	assert.False(t, ok)

	step(in, m, frame{space: ButtonReleased})
	_, ok = in.ActionState(actionJump)
	assert.False(t, ok)

	step(in, m, frame{space: ButtonPressed})
	assert.True(t, in.JustPressed(actionJump))
}

func TestUseButtonActionIgnoresUnresolvedActions(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	require.NoError(t, m.BindButtonAction(actionJump, Key(ebiten.KeySpace)))
	in := NewActionInput[testAction, testAxis]()

	// never bound, never resolved
	in.UseButtonAction(actionDodge)
	assert.False(t, in.Used(actionDodge))
	_, ok := in.ActionState(actionDodge)
	assert.False(t, ok)

	// bound but idle
	step(in, m, frame{})
	in.UseButtonAction(actionJump)
	_, ok = in.ActionState(actionJump)
	assert.False(t, ok)

	step(in, m, frame{Key(ebiten.KeySpace): ButtonPressed})
	assert.True(t, in.JustPressed(actionJump))
}

func TestChordsUseActionScope(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	require.NoError(t, m.Player(1).BindButtonAction(actionJump, Key(ebiten.KeySpace)))
	require.NoError(t, m.Player(2).BindButtonAction(actionJump, Key(ebiten.KeySpace)))
	in := NewActionInput[testAction, testAxis]()

	in.SetButtonState(NewPlayerDataWithID(Key(ebiten.KeySpace), 2), ButtonPressed)
	ProcessButtonActions(in, m, tick)

	assert.False(t, in.Player(1).JustPressed(actionJump))
	assert.True(t, in.Player(2).JustPressed(actionJump))
	assert.False(t, in.JustPressed(actionJump))

	in.Player(2).UseButtonAction(actionJump)
	assert.True(t, in.Player(2).Used(actionJump))
	assert.False(t, in.Player(1).Used(actionJump))
}

func TestButtonAxis(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	left, right := Key(ebiten.KeyArrowLeft), Key(ebiten.KeyArrowRight)
	m.BindAxisWithDeadzone(axisHorizontal, Buttons(left, right), 0.5)
	in := NewActionInput[testAction, testAxis]()

	step(in, m, frame{right: ButtonPressed})
	assert.Equal(t, 1.0, in.Axis(axisHorizontal))

	step(in, m, frame{right: ButtonHeld, left: ButtonPressed})
	assert.Equal(t, 0.0, in.Axis(axisHorizontal))

	step(in, m, frame{left: ButtonHeld, right: ButtonReleased})
	assert.Equal(t, -1.0, in.Axis(axisHorizontal))

	step(in, m, frame{})
	assert.Equal(t, 0.0, in.Axis(axisHorizontal))
}

func TestAxisPicksLargestMagnitude(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	m.BindAxis(axisHorizontal, Analog(LeftStickX)).
		BindAxis(axisHorizontal, Analog(RightStickX))
	in := NewActionInput[testAction, testAxis]()

	in.SetGamepadAxisValue(NewPlayerData(LeftStickX), 0.3)
	in.SetGamepadAxisValue(NewPlayerData(RightStickX), -0.8)
	ProcessAxisActions(in, m)
	assert.Equal(t, -0.8, in.Axis(axisHorizontal))

	in.SetGamepadAxisValue(NewPlayerData(RightStickX), 0.1)
	ProcessAxisActions(in, m)
	assert.Equal(t, 0.3, in.Axis(axisHorizontal))
}

func TestAxisDeadzone(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	m.BindAxisWithDeadzone(axisHorizontal, Analog(LeftStickX), 0.2)
	in := NewActionInput[testAction, testAxis]()

	tests := []struct {
		raw  float64
		want float64
	}{
		{0, 0},
		{0.1, 0},
		{0.2, 0},
		{-0.2, 0},
		{0.6, 0.5},
		{-0.6, -0.5},
		{1, 1},
		{-1, -1},
	}
	for _, tt := range tests {
		in.SetGamepadAxisValue(NewPlayerData(LeftStickX), tt.raw)
		ProcessAxisActions(in, m)
		assert.InDelta(t, tt.want, in.Axis(axisHorizontal), 1e-9, "raw %v", tt.raw)
	}
}

func TestApplyDeadzone(t *testing.T) {
	assert.Equal(t, 0.42, applyDeadzone(0.42, 0))
	assert.Equal(t, 0.0, applyDeadzone(0.99, deadzonePrecision))
	assert.InDelta(t, 1.0, applyDeadzone(1.5, quantizeDeadzone(0.25)), 1e-9)
}

func TestXYAxes(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	m.BindAxis(axisHorizontal, Analog(LeftStickX)).
		BindAxis(axisVertical, Analog(LeftStickY))
	in := NewActionInput[testAction, testAxis]()

	set := func(x, y float64) {
		in.SetGamepadAxisValue(NewPlayerData(LeftStickX), x)
		in.SetGamepadAxisValue(NewPlayerData(LeftStickY), y)
		ProcessAxisActions(in, m)
	}

	set(1, 1)
	v := in.XYAxes(axisHorizontal, axisVertical)
	assert.InDelta(t, 1.0, math.Hypot(v.X, v.Y), 1e-9)
	assert.InDelta(t, v.X, v.Y, 1e-9)
	raw := in.XYAxesRaw(axisHorizontal, axisVertical)
	assert.Equal(t, 1.0, raw.X)
	assert.Equal(t, 1.0, raw.Y)

	set(1, 0)
	v = in.XYAxes(axisHorizontal, axisVertical)
	assert.Equal(t, 1.0, v.X)
	assert.Equal(t, 0.0, v.Y)

	set(0, 0)
	v = in.XYAxes(axisHorizontal, axisVertical)
	assert.Equal(t, 0.0, v.X)
	assert.Equal(t, 0.0, v.Y)
}

func TestDPadAxisBecomesButtons(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	m.Player(1).BindAxis(axisHorizontal, Analog(DPadX)).
		BindAxis(axisVertical, Analog(DPadY)).
		BindAxis(axisVertical, Analog(LeftStickY))

	left := GamepadButton(ebiten.StandardGamepadButtonLeftLeft)
	up := GamepadButton(ebiten.StandardGamepadButtonLeftTop)
	assert.Equal(t, []AxisSource{{Binding: Buttons(left, GamepadButton(ebiten.StandardGamepadButtonLeftRight))}},
		m.Player(1).AxisSources(axisHorizontal))
	assert.True(t, m.IsKeyBound(NewPlayerDataWithID(left, 1)))
	assert.True(t, m.IsKeyBound(NewPlayerDataWithID(up, 1)))
	assert.False(t, m.IsKeyBound(NewPlayerData(left)))
	assert.Equal(t, []GamepadAxis{LeftStickY}, m.BoundAxes())
	assert.False(t, m.IsAxisBound(DPadX))

	in := NewActionInput[testAction, testAxis]()
	in.SetButtonState(NewPlayerDataWithID(left, 1), ButtonHeld)
	in.SetButtonState(NewPlayerDataWithID(up, 1), ButtonPressed)
	in.SetGamepadAxisValue(NewPlayerDataWithID(LeftStickY, 1), -0.4)
	ProcessAxisActions(in, m)

	p := in.Player(1)
	assert.Equal(t, -1.0, p.Axis(axisHorizontal))
	assert.Equal(t, 1.0, p.Axis(axisVertical))
	assert.Equal(t, 0.0, in.Axis(axisHorizontal))
}

func TestAxisSourcesAreDeduplicated(t *testing.T) {
	m := NewActionMap[testAction, testAxis]()
	m.BindAxisWithDeadzone(axisHorizontal, Analog(LeftStickX), 0.25).
		BindAxisWithDeadzone(axisHorizontal, Analog(LeftStickX), 0.25).
		BindAxisWithDeadzone(axisHorizontal, Analog(LeftStickX), 0.3)

	sources := m.AxisSources(axisHorizontal)
	require.Len(t, sources, 2)
	assert.Equal(t, uint32(2500), sources[0].Deadzone)
	assert.Equal(t, uint32(3000), sources[1].Deadzone)
}
