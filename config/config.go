package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Render layers
const (
	Default ecs.LayerID = iota
	LayerOverlay
)

// AvatarConfig contains demo avatar movement and feedback values
type AvatarConfig struct {
	Size        float64
	Speed       float64 // pixels per tick at full stick deflection
	AimLength   float64
	JumpTicks   int     // ticks the jump highlight stays visible
	JumpGrow    float64 // pixels the avatar grows at the top of a jump
	AttackTicks int
	Colors      []color.RGBA // indexed by player, global scope uses White
}

// OverlayConfig contains debug overlay layout
type OverlayConfig struct {
	X          int
	Y          int
	LineHeight int
	Background color.RGBA
	TextColor  color.RGBA
	DimColor   color.RGBA
}

// Global configuration instances
var C *Config
var Avatar AvatarConfig
var Overlay OverlayConfig
var Debug DebugConfig

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowInput    bool // Draw the resolved input overlay
	SkipLoad     bool // Start with default bindings, ignoring saved ones
	LogGamepads  bool // Log gamepad connections
	LogBindingIO bool // Log bindings load/save results
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey         = color.RGBA{R: 140, G: 140, B: 140, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Avatar = AvatarConfig{
		Size:        16,
		Speed:       3,
		AimLength:   24,
		JumpTicks:   12,
		JumpGrow:    4,
		AttackTicks: 8,
		Colors:      []color.RGBA{LightBlue, Orange, BrightGreen, Purple},
	}

	Overlay = OverlayConfig{
		X:          8,
		Y:          16,
		LineHeight: 14,
		Background: BlackOverlay,
		TextColor:  White,
		DimColor:   Grey,
	}

	Debug = DebugConfig{
		ShowInput:    true,
		LogGamepads:  true,
		LogBindingIO: true,
	}
}
