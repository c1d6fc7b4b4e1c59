package components

import (
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/input"
	"github.com/yohamta/donburi"
)

// InputData owns the game's bindings together with the runtime state they
// resolve into. One entity holds it; every player scope lives inside.
type InputData struct {
	Map      *cfg.ActionMap
	State    *cfg.ActionInput
	Gamepads *input.GamepadMap
}

var Input = donburi.NewComponentType[InputData]()

// BindingsOp is the kind of bindings IO task in flight
type BindingsOp int

const (
	BindingsIdle BindingsOp = iota
	BindingsLoading
	BindingsSaving
)

func (op BindingsOp) String() string {
	switch op {
	case BindingsLoading:
		return "loading"
	case BindingsSaving:
		return "saving"
	}
	return "idle"
}

// BindingsResult is delivered once by a finished IO task. Bindings is nil for
// saves and for loads that found nothing stored.
type BindingsResult struct {
	Op       BindingsOp
	Bindings *input.SerializedActionMap[cfg.ActionID, cfg.AxisID]
	Err      error
}

// BindingsIOData tracks the single background load or save task
type BindingsIOData struct {
	Op      BindingsOp
	Done    chan BindingsResult
	LastErr error
}

var BindingsIO = donburi.NewComponentType[BindingsIOData]()
