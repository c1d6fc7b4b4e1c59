package components

import (
	"image/color"

	"github.com/automoto/actioninput/input"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerData is an on-screen avatar driven by one input scope
type PlayerData struct {
	Scope       input.Scope
	Position    math.Vec2
	Aim         math.Vec2
	Color       color.RGBA
	Hop         *gween.Sequence // Jump highlight, nil when idle
	Grow        float64
	AttackTicks int
	Dodges      int
	Specials    int
}

var Player = donburi.NewComponentType[PlayerData]()
