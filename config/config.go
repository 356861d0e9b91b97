package config

import (
	"image/color"

	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/physics"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer the world scene draws on.
const Default ecs.LayerID = 0

// TPS is the fixed simulation rate. Systems feed 1/TPS to the controller.
const TPS = 60

type Config struct {
	Width  int
	Height int
}

// CameraConfig contains the orbit camera tuning
type CameraConfig struct {
	FollowSmoothing float64 // How fast the camera follows the player (0.0-1.0)
	YawSpeed        float64 // Radians per second while a rotate key is held
	Zoom            float64 // Screen pixels per world unit
	MinZoom         float64
	MaxZoom         float64
}

// UIConfig holds HUD layout and colours
type UIConfig struct {
	HUDMargin     float64
	HUDLineHeight float64
	HUDTextColor  color.RGBA
	HUDBgColor    color.RGBA

	SolidColor      color.RGBA
	SolidTopColor   color.RGBA
	RampColor       color.RGBA
	LadderColor     color.RGBA
	PlayerColor     color.RGBA
	FacingColor     color.RGBA
	BackgroundColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled     bool // Draw the debug overlay
	LogTuning   bool // Log every tuning reload
	ShowBodies  bool // Outline every physics body, sensors included
	ShowAnimMix bool // List the mixer layers and weights
	LevelName   string
	TuningPath  string
}

// MessageConfig contains the HUD notice popup configuration
type MessageConfig struct {
	DisplayDuration int        // Frames to display a notice
	BoxPadding      float64    // Padding inside message box
	BoxColor        color.RGBA // Semi-transparent background color
	TextColor       color.RGBA
	TopMargin       float64 // Distance from top of screen
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig
var Message MessageConfig

// Locomotion and Physics are the tuning the controller and collision world
// read. Tuning overrides rewrite them in place.
var Locomotion locomotion.Settings
var Physics physics.Settings

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Locomotion = locomotion.DefaultSettings()
	Physics = physics.DefaultSettings()

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		YawSpeed:        2.0,
		Zoom:            18,
		MinZoom:         8,
		MaxZoom:         40,
	}

	UI = UIConfig{
		HUDMargin:     8,
		HUDLineHeight: 16,
		HUDTextColor:  White,
		HUDBgColor:    BlackOverlay,

		SolidColor:      color.RGBA{R: 70, G: 74, B: 90, A: 255},
		SolidTopColor:   color.RGBA{R: 110, G: 116, B: 140, A: 255},
		RampColor:       DarkBlue,
		LadderColor:     Orange,
		PlayerColor:     LightGreen,
		FacingColor:     Yellow,
		BackgroundColor: color.RGBA{R: 24, G: 24, B: 32, A: 255},
	}

	Message = MessageConfig{
		DisplayDuration: 120, // 2 seconds at 60fps
		BoxPadding:      6.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		TopMargin:       24.0,
	}

	Debug = DebugConfig{
		Enabled:     false,
		ShowBodies:  true,
		ShowAnimMix: true,
		LevelName:   "arena",
	}
}
