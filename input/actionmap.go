package input

import (
	"errors"
	"fmt"
	"slices"
)

// KeyBindings maps each scoped action to its alternative chords. Any one
// chord triggers the action.
type KeyBindings[K comparable] map[PlayerData[K]][]Chord

// AxisBindings maps each scoped axis action to the sources feeding it
type AxisBindings[A comparable] map[PlayerData[A]][]AxisSource

// ActionMap holds the binding configuration of a set of actions (K) and axes
// (A). The zero value is an empty map ready to use.
//
// The map is written during setup and read by the resolvers every tick; the
// host must not rebind while a resolver pass is running.
type ActionMap[K, A comparable] struct {
	keyActionBindings  KeyBindings[K]
	axisActionBindings AxisBindings[A]

	// derived indices, rebuilt by replaying bindings
	boundKeys            map[PlayerData[ButtonCode]]struct{}
	boundAxes            map[GamepadAxis]struct{}
	boundKeyCombinations []combination
}

func NewActionMap[K, A comparable]() *ActionMap[K, A] {
	m := &ActionMap[K, A]{}
	m.init()
	return m
}

func (m *ActionMap[K, A]) init() {
	if m.keyActionBindings == nil {
		m.keyActionBindings = make(KeyBindings[K])
	}
	if m.axisActionBindings == nil {
		m.axisActionBindings = make(AxisBindings[A])
	}
	if m.boundKeys == nil {
		m.boundKeys = make(map[PlayerData[ButtonCode]]struct{})
	}
	if m.boundAxes == nil {
		m.boundAxes = make(map[GamepadAxis]struct{})
	}
}

// BindButtonAction binds a single button to action in the global scope.
func (m *ActionMap[K, A]) BindButtonAction(action K, button ButtonCode) error {
	return m.bindChord(Global, action, button)
}

// BindButtonCombinationAction binds a chord to action in the global scope.
// Button order does not matter.
func (m *ActionMap[K, A]) BindButtonCombinationAction(action K, buttons ...ButtonCode) error {
	return m.bindChord(Global, action, buttons...)
}

// BindAxis adds a source to axis action in the global scope
func (m *ActionMap[K, A]) BindAxis(action A, binding AxisBinding) *ActionMap[K, A] {
	return m.BindAxisWithDeadzone(action, binding, 0)
}

// BindAxisWithDeadzone adds a source with a deadzone in [0, 1] to axis action
// in the global scope. Deadzones are ignored for button pairs.
func (m *ActionMap[K, A]) BindAxisWithDeadzone(action A, binding AxisBinding, deadzone float64) *ActionMap[K, A] {
	m.bindAxis(Global, action, binding, deadzone)
	return m
}

// Player returns a handle binding actions in the scope of player id.
func (m *ActionMap[K, A]) Player(id int) *PlayerBindings[K, A] {
	return &PlayerBindings[K, A]{m: m, scope: Player(id)}
}

// SetBindings replaces every binding. The chords are replayed through the
// same path as the bind methods, so conflict validation runs again. If any
// chord fails the map is left as it was and the failures are returned.
func (m *ActionMap[K, A]) SetBindings(keys KeyBindings[K], axes AxisBindings[A]) error {
	return m.replay(serialize(keys, axes))
}

// ClearBindings removes every binding and derived index.
func (m *ActionMap[K, A]) ClearBindings() {
	*m = ActionMap[K, A]{}
	m.init()
}

// Chords returns the chords bound to action in the global scope
func (m *ActionMap[K, A]) Chords(action K) []Chord {
	return slices.Clone(m.keyActionBindings[NewPlayerData(action)])
}

// AxisSources returns the sources bound to axis action in the global scope
func (m *ActionMap[K, A]) AxisSources(action A) []AxisSource {
	return slices.Clone(m.axisActionBindings[NewPlayerData(action)])
}

// KeyActionBindings returns a copy of every chord binding
func (m *ActionMap[K, A]) KeyActionBindings() KeyBindings[K] {
	out := make(KeyBindings[K], len(m.keyActionBindings))
	for k, v := range m.keyActionBindings {
		out[k] = slices.Clone(v)
	}
	return out
}

// AxisActionBindings returns a copy of every axis binding
func (m *ActionMap[K, A]) AxisActionBindings() AxisBindings[A] {
	out := make(AxisBindings[A], len(m.axisActionBindings))
	for k, v := range m.axisActionBindings {
		out[k] = slices.Clone(v)
	}
	return out
}

// IsKeyBound reports whether any binding in button's scope reads it
func (m *ActionMap[K, A]) IsKeyBound(button PlayerData[ButtonCode]) bool {
	_, ok := m.boundKeys[button]
	return ok
}

// BoundKeys lists every scoped button read by a binding
func (m *ActionMap[K, A]) BoundKeys() []PlayerData[ButtonCode] {
	keys := make([]PlayerData[ButtonCode], 0, len(m.boundKeys))
	for k := range m.boundKeys {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b PlayerData[ButtonCode]) int {
		if c := compareScopes(a.Scope, b.Scope); c != 0 {
			return c
		}
		return compareButtons(a.Value, b.Value)
	})
	return keys
}

// IsAxisBound reports whether an analog binding reads axis
func (m *ActionMap[K, A]) IsAxisBound(axis GamepadAxis) bool {
	_, ok := m.boundAxes[axis]
	return ok
}

// BoundAxes lists the analog axes read by any binding
func (m *ActionMap[K, A]) BoundAxes() []GamepadAxis {
	axes := make([]GamepadAxis, 0, len(m.boundAxes))
	for a := range m.boundAxes {
		axes = append(axes, a)
	}
	slices.Sort(axes)
	return axes
}

// Clone returns a deep copy of the map
func (m *ActionMap[K, A]) Clone() *ActionMap[K, A] {
	c := NewActionMap[K, A]()
	c.keyActionBindings = m.KeyActionBindings()
	c.axisActionBindings = m.AxisActionBindings()
	for k := range m.boundKeys {
		c.boundKeys[k] = struct{}{}
	}
	for a := range m.boundAxes {
		c.boundAxes[a] = struct{}{}
	}
	c.boundKeyCombinations = slices.Clone(m.boundKeyCombinations)
	return c
}

func (m *ActionMap[K, A]) bindChord(scope Scope, action K, buttons ...ButtonCode) error {
	m.init()

	chord, err := NewChord(buttons...)
	if err != nil {
		var bindErr *BindingError
		if errors.As(err, &bindErr) {
			bindErr.Scope = scope
		}
		return err
	}

	combo, err := validateChord(m.boundKeyCombinations, scope, chord)
	if err != nil {
		return err
	}

	key := PlayerData[K]{Scope: scope, Value: action}
	m.keyActionBindings[key] = append(m.keyActionBindings[key], chord)
	for _, b := range chord {
		m.boundKeys[b.playerData(scope)] = struct{}{}
	}
	m.boundKeyCombinations = append(m.boundKeyCombinations, combo)
	return nil
}

func (m *ActionMap[K, A]) bindAxis(scope Scope, action A, binding AxisBinding, deadzone float64) {
	m.init()

	switch binding.Kind {
	case AxisButtons:
		m.boundKeys[binding.Negative.playerData(scope)] = struct{}{}
		m.boundKeys[binding.Positive.playerData(scope)] = struct{}{}
	case AxisGamepad:
		if neg, pos, ok := binding.Axis.dpadButtons(); ok {
			binding = Buttons(neg, pos)
			m.boundKeys[neg.playerData(scope)] = struct{}{}
			m.boundKeys[pos.playerData(scope)] = struct{}{}
		} else {
			m.boundAxes[binding.Axis] = struct{}{}
		}
	default:
		panic(fmt.Sprintf("input: bind axis %v: empty axis binding", action))
	}

	key := PlayerData[A]{Scope: scope, Value: action}
	source := NewAxisSource(binding, deadzone)
	if slices.Contains(m.axisActionBindings[key], source) {
		return
	}
	m.axisActionBindings[key] = append(m.axisActionBindings[key], source)
}

// replay builds a fresh map from ordered bindings and swaps it in only if
// every chord was accepted.
func (m *ActionMap[K, A]) replay(s SerializedActionMap[K, A]) error {
	fresh := NewActionMap[K, A]()

	var errs []error
	for _, entry := range s.KeyActionBindings {
		for _, chord := range entry.Chords {
			if err := fresh.bindChord(entry.Scope, entry.Action, chord...); err != nil {
				errs = append(errs, fmt.Errorf("%v (%s): %w", entry.Action, entry.Scope, err))
			}
		}
	}
	for _, entry := range s.AxisActionBindings {
		for _, source := range entry.Sources {
			if source.Binding.Kind != AxisButtons && source.Binding.Kind != AxisGamepad {
				errs = append(errs, fmt.Errorf("%v (%s): empty axis binding", entry.Axis, entry.Scope))
				continue
			}
			fresh.bindAxis(entry.Scope, entry.Axis, source.Binding, source.DeadzoneValue())
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("set bindings: %w", err)
	}
	*m = *fresh
	return nil
}

// PlayerBindings binds actions in one player's scope. It shares storage with
// the ActionMap it came from.
type PlayerBindings[K, A comparable] struct {
	m     *ActionMap[K, A]
	scope Scope
}

func (p *PlayerBindings[K, A]) Scope() Scope {
	return p.scope
}

func (p *PlayerBindings[K, A]) BindButtonAction(action K, button ButtonCode) error {
	return p.m.bindChord(p.scope, action, button)
}

func (p *PlayerBindings[K, A]) BindButtonCombinationAction(action K, buttons ...ButtonCode) error {
	return p.m.bindChord(p.scope, action, buttons...)
}

func (p *PlayerBindings[K, A]) BindAxis(action A, binding AxisBinding) *PlayerBindings[K, A] {
	return p.BindAxisWithDeadzone(action, binding, 0)
}

func (p *PlayerBindings[K, A]) BindAxisWithDeadzone(action A, binding AxisBinding, deadzone float64) *PlayerBindings[K, A] {
	p.m.bindAxis(p.scope, action, binding, deadzone)
	return p
}

func (p *PlayerBindings[K, A]) Chords(action K) []Chord {
	return slices.Clone(p.m.keyActionBindings[PlayerData[K]{Scope: p.scope, Value: action}])
}

func (p *PlayerBindings[K, A]) AxisSources(action A) []AxisSource {
	return slices.Clone(p.m.axisActionBindings[PlayerData[A]{Scope: p.scope, Value: action}])
}
