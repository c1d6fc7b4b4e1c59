package input

import (
	"errors"
	"fmt"
)

var (
	// ErrBindingConflict is returned when a chord overlaps a chord already
	// bound in the same scope.
	ErrBindingConflict = errors.New("binding conflict")
	// ErrMalformedChord is returned for chords that are empty, too large or
	// list a button more than once.
	ErrMalformedChord = errors.New("malformed chord")
)

// BindingError describes a rejected chord binding. The map is left unchanged.
type BindingError struct {
	Scope    Scope
	Chord    Chord
	Conflict Chord // the stored chord that overlaps Chord, nil for malformed chords
	err      error
}

func (e *BindingError) Error() string {
	if e.Conflict != nil {
		return fmt.Sprintf("%v: %s conflicts with %s (%s)", e.err, e.Chord, e.Conflict, e.Scope)
	}
	return fmt.Sprintf("%v: %s (%s)", e.err, e.Chord, e.Scope)
}

func (e *BindingError) Unwrap() error {
	return e.err
}
