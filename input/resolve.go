package input

import "math"

// Update runs both resolver passes for one tick. Button states and gamepad
// axis values must already hold this tick's readings.
func Update[K, A comparable](in *ActionInput[K, A], m *ActionMap[K, A], delta float64) {
	ProcessButtonActions(in, m, delta)
	ProcessAxisActions(in, m)
}

// ProcessButtonActions advances every bound action by one tick of delta
// seconds.
//
// An inactive action (absent, released or used) becomes Pressed when one of
// its chords has every button down and at least one of them pressed this
// tick; holding keys that were already down does not trigger it. An active
// action stays Held while any chord still has every button down and becomes
// Released otherwise, accumulating delta into its duration either way.
func ProcessButtonActions[K, A comparable](in *ActionInput[K, A], m *ActionMap[K, A], delta float64) {
	in.init()

	for action, chords := range m.keyActionBindings {
		current, ok := in.buttonActions[action]
		if !ok || !current.Active() {
			if in.anyChordJustPressed(action.Scope, chords) {
				in.buttonActions[action] = ActionState{Phase: ActionPressed}
			} else {
				delete(in.buttonActions, action)
			}
			continue
		}

		duration := current.Duration + delta
		if in.anyChordDown(action.Scope, chords) {
			in.buttonActions[action] = ActionState{Phase: ActionHeld, Duration: duration}
		} else {
			in.buttonActions[action] = ActionState{Phase: ActionReleased, Duration: duration}
		}
	}
}

func (in *ActionInput[K, A]) anyChordJustPressed(scope Scope, chords []Chord) bool {
next:
	for _, chord := range chords {
		pressed := false
		for _, b := range chord {
			switch in.buttonStates[b.playerData(scope)] {
			case ButtonPressed:
				pressed = true
			case ButtonHeld:
			default:
				continue next
			}
		}
		if pressed {
			return true
		}
	}
	return false
}

func (in *ActionInput[K, A]) anyChordDown(scope Scope, chords []Chord) bool {
next:
	for _, chord := range chords {
		for _, b := range chord {
			if !in.buttonDown(b.playerData(scope)) {
				continue next
			}
		}
		return true
	}
	return false
}

// ProcessAxisActions resolves every bound axis. Each source is read and
// passed through its deadzone, and the source with the largest magnitude
// wins; sources are not summed.
func ProcessAxisActions[K, A comparable](in *ActionInput[K, A], m *ActionMap[K, A]) {
	in.init()

	for action, sources := range m.axisActionBindings {
		value := 0.0
		for _, src := range sources {
			v := in.axisSourceValue(action.Scope, src)
			if math.Abs(value) <= math.Abs(v) {
				value = v
			}
		}
		in.axes[action] = value
	}
}

func (in *ActionInput[K, A]) axisSourceValue(scope Scope, src AxisSource) float64 {
	switch src.Binding.Kind {
	case AxisButtons:
		v := 0.0
		if in.buttonDown(src.Binding.Negative.playerData(scope)) {
			v--
		}
		if in.buttonDown(src.Binding.Positive.playerData(scope)) {
			v++
		}
		return v
	case AxisGamepad:
		raw := in.gamepadAxesValues[PlayerData[GamepadAxis]{Scope: scope, Value: src.Binding.Axis}]
		return applyDeadzone(raw, src.Deadzone)
	}
	return 0
}
