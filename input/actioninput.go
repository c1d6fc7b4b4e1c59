package input

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ActionInput holds the runtime input state resolved from an ActionMap. The
// platform layer writes button states and gamepad axis values, the resolvers
// turn them into action states and axis values, and the application reads
// the results.
type ActionInput[K, A comparable] struct {
	buttonStates      map[PlayerData[ButtonCode]]ButtonState
	buttonActions     map[PlayerData[K]]ActionState
	gamepadAxesValues map[PlayerData[GamepadAxis]]float64
	axes              map[PlayerData[A]]float64
}

func NewActionInput[K, A comparable]() *ActionInput[K, A] {
	in := &ActionInput[K, A]{}
	in.init()
	return in
}

func (in *ActionInput[K, A]) init() {
	if in.buttonStates == nil {
		in.buttonStates = make(map[PlayerData[ButtonCode]]ButtonState)
	}
	if in.buttonActions == nil {
		in.buttonActions = make(map[PlayerData[K]]ActionState)
	}
	if in.gamepadAxesValues == nil {
		in.gamepadAxesValues = make(map[PlayerData[GamepadAxis]]float64)
	}
	if in.axes == nil {
		in.axes = make(map[PlayerData[A]]float64)
	}
}

// Reset drops all runtime state
func (in *ActionInput[K, A]) Reset() {
	*in = ActionInput[K, A]{}
	in.init()
}

// SetButtonState records the state of a physical button for this tick
func (in *ActionInput[K, A]) SetButtonState(button PlayerData[ButtonCode], state ButtonState) {
	in.init()
	in.buttonStates[button] = state
}

func (in *ActionInput[K, A]) ButtonState(button PlayerData[ButtonCode]) ButtonState {
	return in.buttonStates[button]
}

// SetGamepadAxisValue records the raw reading of a physical axis for this tick
func (in *ActionInput[K, A]) SetGamepadAxisValue(axis PlayerData[GamepadAxis], value float64) {
	in.init()
	in.gamepadAxesValues[axis] = value
}

func (in *ActionInput[K, A]) GamepadAxisValue(axis PlayerData[GamepadAxis]) float64 {
	return in.gamepadAxesValues[axis]
}

// ActionState returns the state of a global action. ok is false when the
// action is not pressed, held, released or used.
func (in *ActionInput[K, A]) ActionState(action K) (state ActionState, ok bool) {
	return in.actionState(NewPlayerData(action))
}

func (in *ActionInput[K, A]) JustPressed(action K) bool {
	return in.inPhase(NewPlayerData(action), ActionPressed)
}

func (in *ActionInput[K, A]) Held(action K) bool {
	return in.inPhase(NewPlayerData(action), ActionHeld)
}

func (in *ActionInput[K, A]) JustReleased(action K) bool {
	return in.inPhase(NewPlayerData(action), ActionReleased)
}

func (in *ActionInput[K, A]) Used(action K) bool {
	return in.inPhase(NewPlayerData(action), ActionUsed)
}

// UseButtonAction marks action as consumed so it does not read as pressed
// again until it is triggered anew. Actions without a resolved state this
// tick are left alone.
func (in *ActionInput[K, A]) UseButtonAction(action K) {
	in.use(NewPlayerData(action))
}

// Axis returns the resolved value of a global axis, 0 if it was never resolved
func (in *ActionInput[K, A]) Axis(axis A) float64 {
	return in.axes[NewPlayerData(axis)]
}

// XYAxes combines two axes into a unit vector, or the zero vector.
func (in *ActionInput[K, A]) XYAxes(x, y A) dmath.Vec2 {
	return normalizeOrZero(in.XYAxesRaw(x, y))
}

// XYAxesRaw combines two axes without normalizing
func (in *ActionInput[K, A]) XYAxesRaw(x, y A) dmath.Vec2 {
	return dmath.Vec2{X: in.Axis(x), Y: in.Axis(y)}
}

// Player returns a read view of one player's actions and axes.
func (in *ActionInput[K, A]) Player(id int) *PlayerInput[K, A] {
	return &PlayerInput[K, A]{in: in, scope: Player(id)}
}

func (in *ActionInput[K, A]) actionState(action PlayerData[K]) (ActionState, bool) {
	s, ok := in.buttonActions[action]
	return s, ok
}

func (in *ActionInput[K, A]) inPhase(action PlayerData[K], phase ActionPhase) bool {
	s, ok := in.buttonActions[action]
	return ok && s.Phase == phase
}

func (in *ActionInput[K, A]) use(action PlayerData[K]) {
	if _, ok := in.buttonActions[action]; !ok {
		return
	}
	in.buttonActions[action] = ActionState{Phase: ActionUsed}
}

func (in *ActionInput[K, A]) buttonDown(button PlayerData[ButtonCode]) bool {
	return in.buttonStates[button].Down()
}

func normalizeOrZero(v dmath.Vec2) dmath.Vec2 {
	length := math.Hypot(v.X, v.Y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / length, Y: v.Y / length}
}

// PlayerInput reads the actions and axes of one player's scope
type PlayerInput[K, A comparable] struct {
	in    *ActionInput[K, A]
	scope Scope
}

func (p *PlayerInput[K, A]) Scope() Scope {
	return p.scope
}

func (p *PlayerInput[K, A]) key(action K) PlayerData[K] {
	return PlayerData[K]{Scope: p.scope, Value: action}
}

func (p *PlayerInput[K, A]) ActionState(action K) (ActionState, bool) {
	return p.in.actionState(p.key(action))
}

func (p *PlayerInput[K, A]) JustPressed(action K) bool {
	return p.in.inPhase(p.key(action), ActionPressed)
}

func (p *PlayerInput[K, A]) Held(action K) bool {
	return p.in.inPhase(p.key(action), ActionHeld)
}

func (p *PlayerInput[K, A]) JustReleased(action K) bool {
	return p.in.inPhase(p.key(action), ActionReleased)
}

func (p *PlayerInput[K, A]) Used(action K) bool {
	return p.in.inPhase(p.key(action), ActionUsed)
}

func (p *PlayerInput[K, A]) UseButtonAction(action K) {
	p.in.use(p.key(action))
}

func (p *PlayerInput[K, A]) Axis(axis A) float64 {
	return p.in.axes[PlayerData[A]{Scope: p.scope, Value: axis}]
}

func (p *PlayerInput[K, A]) XYAxes(x, y A) dmath.Vec2 {
	return normalizeOrZero(p.XYAxesRaw(x, y))
}

func (p *PlayerInput[K, A]) XYAxesRaw(x, y A) dmath.Vec2 {
	return dmath.Vec2{X: p.Axis(x), Y: p.Axis(y)}
}
