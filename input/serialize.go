package input

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// SerializedActionMap is the persisted form of an ActionMap: only the two
// binding mappings. Derived indices are rebuilt by replaying it.
type SerializedActionMap[K, A comparable] struct {
	KeyActionBindings  []KeyBindingEntry[K]  `json:"key_action_bindings"`
	AxisActionBindings []AxisBindingEntry[A] `json:"axis_action_bindings"`
}

type KeyBindingEntry[K comparable] struct {
	Scope  Scope   `json:"player"`
	Action K       `json:"action"`
	Chords []Chord `json:"chords"`
}

type AxisBindingEntry[A comparable] struct {
	Scope   Scope        `json:"player"`
	Axis    A            `json:"axis"`
	Sources []AxisSource `json:"sources"`
}

// Serialize captures the bindings in a stable order: global scope first,
// then by player, then by the printed action name. Chords and sources keep
// their binding order.
func (m *ActionMap[K, A]) Serialize() SerializedActionMap[K, A] {
	return serialize(m.keyActionBindings, m.axisActionBindings)
}

// SetSerialized replaces every binding with s. See SetBindings.
func (m *ActionMap[K, A]) SetSerialized(s SerializedActionMap[K, A]) error {
	return m.replay(s)
}

func (m *ActionMap[K, A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Serialize())
}

// UnmarshalJSON decodes a serialized map and replays it, so conflicts in the
// data are reported and the derived indices are rebuilt.
func (m *ActionMap[K, A]) UnmarshalJSON(data []byte) error {
	var s SerializedActionMap[K, A]
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode action map: %w", err)
	}
	return m.SetSerialized(s)
}

func serialize[K, A comparable](keys KeyBindings[K], axes AxisBindings[A]) SerializedActionMap[K, A] {
	s := SerializedActionMap[K, A]{
		KeyActionBindings:  make([]KeyBindingEntry[K], 0, len(keys)),
		AxisActionBindings: make([]AxisBindingEntry[A], 0, len(axes)),
	}
	for k, chords := range keys {
		s.KeyActionBindings = append(s.KeyActionBindings, KeyBindingEntry[K]{
			Scope:  k.Scope,
			Action: k.Value,
			Chords: slices.Clone(chords),
		})
	}
	for a, sources := range axes {
		s.AxisActionBindings = append(s.AxisActionBindings, AxisBindingEntry[A]{
			Scope:   a.Scope,
			Axis:    a.Value,
			Sources: slices.Clone(sources),
		})
	}

	slices.SortFunc(s.KeyActionBindings, func(a, b KeyBindingEntry[K]) int {
		return compareEntries(a.Scope, b.Scope, a.Action, b.Action)
	})
	slices.SortFunc(s.AxisActionBindings, func(a, b AxisBindingEntry[A]) int {
		return compareEntries(a.Scope, b.Scope, a.Axis, b.Axis)
	})
	return s
}

func compareEntries(sa, sb Scope, va, vb any) int {
	if c := compareScopes(sa, sb); c != 0 {
		return c
	}
	return cmp.Compare(fmt.Sprint(va), fmt.Sprint(vb))
}
