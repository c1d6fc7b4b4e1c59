package input

import "fmt"

// ButtonState is the per-tick classification of a physical button. The zero
// value means the button is up and did not change this tick.
type ButtonState uint8

const (
	ButtonIdle     ButtonState = iota
	ButtonPressed              // went down this tick
	ButtonHeld                 // down since an earlier tick
	ButtonReleased             // went up this tick
)

func (s ButtonState) String() string {
	switch s {
	case ButtonIdle:
		return "Idle"
	case ButtonPressed:
		return "Pressed"
	case ButtonHeld:
		return "Held"
	case ButtonReleased:
		return "Released"
	}
	return fmt.Sprintf("ButtonState(%d)", uint8(s))
}

// Down reports whether the button is pressed or held
func (s ButtonState) Down() bool {
	return s == ButtonPressed || s == ButtonHeld
}

// buttonPriority orders states when several devices feed the same button
var buttonPriority = [...]int{
	ButtonIdle:     0,
	ButtonReleased: 1,
	ButtonPressed:  2,
	ButtonHeld:     3,
}

func mergeButtonStates(a, b ButtonState) ButtonState {
	if buttonPriority[b] > buttonPriority[a] {
		return b
	}
	return a
}

// ActionPhase is the discrete state of a logical action
type ActionPhase uint8

const (
	ActionPressed  ActionPhase = iota + 1 // started triggering this tick
	ActionHeld                            // still triggering
	ActionReleased                        // stopped triggering this tick
	ActionUsed                            // consumed by the application
)

func (p ActionPhase) String() string {
	switch p {
	case ActionPressed:
		return "Pressed"
	case ActionHeld:
		return "Held"
	case ActionReleased:
		return "Released"
	case ActionUsed:
		return "Used"
	}
	return fmt.Sprintf("ActionPhase(%d)", uint8(p))
}

// ActionState is the resolved state of an action. Duration is the time in
// seconds the action has been held; it is zero for Pressed and Used.
type ActionState struct {
	Phase    ActionPhase
	Duration float64
}

// Active reports whether the action is currently triggering
func (s ActionState) Active() bool {
	return s.Phase == ActionPressed || s.Phase == ActionHeld
}

func (s ActionState) String() string {
	switch s.Phase {
	case ActionHeld, ActionReleased:
		return fmt.Sprintf("%s(%.2fs)", s.Phase, s.Duration)
	}
	return s.Phase.String()
}

// ClassifyButton turns a device's edge and level readings into a ButtonState.
// An edge wins over the level, a press over a release.
func ClassifyButton(justPressed, justReleased, down bool) ButtonState {
	switch {
	case justPressed:
		return ButtonPressed
	case justReleased:
		return ButtonReleased
	case down:
		return ButtonHeld
	}
	return ButtonIdle
}
