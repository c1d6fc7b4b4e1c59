package components

import (
	"github.com/automoto/actioninput/input"
	"github.com/yohamta/donburi"
)

// PauseData stores the pause state and which scope toggled it
type PauseData struct {
	IsPaused bool
	PausedBy input.Scope
}

var Pause = donburi.NewComponentType[PauseData]()
