package input

// combination is an accepted chord together with all of its non-empty
// subsets, computed once when the chord is bound.
type combination struct {
	scope   Scope
	chord   Chord
	subsets []Chord
}

// validateChord checks chord against every chord already bound in the same
// scope. A chord conflicts with another when one is a subset of the other,
// equal chords included. The returned combination is not recorded; callers
// append it once the binding is stored.
func validateChord(history []combination, scope Scope, chord Chord) (combination, error) {
	candidate := combination{scope: scope, chord: chord, subsets: chord.subsets()}

	for _, stored := range history {
		if stored.scope != scope {
			continue
		}
		if candidate.conflictsWith(stored) {
			return combination{}, &BindingError{
				Scope:    scope,
				Chord:    chord,
				Conflict: stored.chord,
				err:      ErrBindingConflict,
			}
		}
	}
	return candidate, nil
}

func (c combination) conflictsWith(stored combination) bool {
	m, n := len(c.chord), len(stored.chord)
	switch {
	case m == n:
		return c.chord.Equal(stored.chord)
	case m < n:
		return containsChord(stored.subsets, c.chord)
	default:
		return containsChord(c.subsets, stored.chord)
	}
}

// containsChord looks for target among subsets of the same size
func containsChord(subsets []Chord, target Chord) bool {
	for _, s := range subsets {
		if len(s) != len(target) {
			continue
		}
		if s.Equal(target) {
			return true
		}
	}
	return false
}
