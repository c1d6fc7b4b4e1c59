package input

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
)

// Scope identifies the player a binding or a piece of runtime state belongs to.
// The zero value is the global scope used by single-player setups. The global
// scope is a scope of its own: it never matches a specific player.
type Scope struct {
	id    int
	valid bool
}

// Global is the unscoped, single-player scope
var Global Scope

// Player returns the scope of the given player
func Player(id int) Scope {
	return Scope{id: id, valid: true}
}

// ID returns the player id and whether the scope belongs to a player at all
func (s Scope) ID() (int, bool) {
	return s.id, s.valid
}

func (s Scope) IsGlobal() bool {
	return !s.valid
}

func (s Scope) String() string {
	if !s.valid {
		return "global"
	}
	return fmt.Sprintf("player %d", s.id)
}

func compareScopes(a, b Scope) int {
	if a.valid != b.valid {
		if !a.valid {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.id, b.id)
}

// MarshalJSON encodes the global scope as null and a player scope as its id.
func (s Scope) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.id)
}

func (s *Scope) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = Global
		return nil
	}
	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("parse scope: %w", err)
	}
	*s = Player(id)
	return nil
}

// PlayerData pairs a value with the scope it applies to. Two PlayerData with
// the same value but different scopes are distinct keys.
type PlayerData[T comparable] struct {
	Scope Scope
	Value T
}

// NewPlayerData wraps v in the global scope
func NewPlayerData[T comparable](v T) PlayerData[T] {
	return PlayerData[T]{Value: v}
}

// NewPlayerDataWithID wraps v in the scope of player id
func NewPlayerDataWithID[T comparable](v T, id int) PlayerData[T] {
	return PlayerData[T]{Scope: Player(id), Value: v}
}

func (p PlayerData[T]) String() string {
	return fmt.Sprintf("%v (%s)", p.Value, p.Scope)
}
