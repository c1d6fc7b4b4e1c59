package input

import (
	"math/bits"
	"slices"
	"strings"
)

// maxChordSize bounds chords so subset enumeration stays small
const maxChordSize = 16

// Chord is a set of buttons that must all be down at once. It is kept
// sorted and free of duplicates.
type Chord []ButtonCode

// NewChord builds a chord from buttons in any order. Duplicate buttons, an
// empty list or an oversized list are malformed.
func NewChord(buttons ...ButtonCode) (Chord, error) {
	if len(buttons) == 0 || len(buttons) > maxChordSize {
		return nil, &BindingError{Chord: Chord(buttons), err: ErrMalformedChord}
	}

	c := slices.Clone(buttons)
	slices.SortFunc(c, compareButtons)
	c = slices.Compact(c)
	if len(c) != len(buttons) {
		return nil, &BindingError{Chord: Chord(buttons), err: ErrMalformedChord}
	}
	return Chord(c), nil
}

func (c Chord) Contains(b ButtonCode) bool {
	_, found := slices.BinarySearchFunc(c, b, compareButtons)
	return found
}

func (c Chord) Equal(other Chord) bool {
	return slices.Equal(c, other)
}

// IsSubsetOf reports whether every button of c is in other
func (c Chord) IsSubsetOf(other Chord) bool {
	if len(c) > len(other) {
		return false
	}
	for _, b := range c {
		if !other.Contains(b) {
			return false
		}
	}
	return true
}

// subsets lists every non-empty subset of c, smallest first. Each subset is
// sorted since c is.
func (c Chord) subsets() []Chord {
	n := len(c)
	all := make([]Chord, 0, (1<<n)-1)
	for size := 1; size <= n; size++ {
		for mask := 1; mask < 1<<n; mask++ {
			if bits.OnesCount(uint(mask)) != size {
				continue
			}
			sub := make(Chord, 0, size)
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					sub = append(sub, c[i])
				}
			}
			all = append(all, sub)
		}
	}
	return all
}

func (c Chord) String() string {
	parts := make([]string, len(c))
	for i, b := range c {
		parts[i] = b.String()
	}
	return strings.Join(parts, "+")
}
