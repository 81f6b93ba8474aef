package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every scene.
var Default = ecs.LayerID(0)

// PhysicsConfig contains the per-tick kinematics constants. The engine runs
// at a fixed 60 ticks per second; all values are expressed per tick, not per
// second.
type PhysicsConfig struct {
	Gravity       float64 // vertical acceleration per tick
	FrictionDecay float64 // uniform velocity decay factor per tick
	SpinFactor    float64 // cosmetic rotation per unit of speed

	// Bounce response
	RimBounce    float64 // vy damping on rim contact
	RimSidePush  float64 // horizontal speed pushed away from the struck bar
	WallBounce   float64 // vx damping on side wall contact
	GroundBounce float64 // vy damping on ground contact
	GroundGrip   float64 // vx scale on ground contact
	GroundJitter float64 // max random horizontal perturbation on ground contact
	StopSpeed    float64 // below this speed a grounded ball comes to rest

	OutOfBoundsMargin float64 // horizontal margin beyond the play area
}

// LaunchConfig contains the gesture-to-velocity mapping constants.
type LaunchConfig struct {
	MinDragDistance float64    // shorter pulls are discarded (no-throw guard)
	MaxPullDistance float64    // pull distance normalization ceiling
	PowerSpeeds     [3]float64 // launch speed per power level 1..3
	PowerSplitLow   float64    // normalized pull below this is level 1
	PowerSplitHigh  float64    // normalized pull below this is level 2

	MaxSpeedX float64 // |vx| clamp
	MaxRiseVy float64 // upward vy clamp (negative)
	MaxDropVy float64 // downward vy clamp (positive)
}

// BallConfig contains projectile geometry and trail tuning.
type BallConfig struct {
	Radius      float64
	TrailLength int // past positions kept for the cosmetic trail
}

// BinConfig contains target geometry.
type BinConfig struct {
	BodyWidth    float64
	BodyHeight   float64
	OpeningWidth float64
	RimThickness float64 // height of the two rim bars

	GrazeBand    float64 // vertical distance from the rim plane for a graze entry
	GrazeMaxVyUp float64 // graze entries require vy above this (not strongly upward)
}

// LaneConfig is a named vertical placement band for the bin.
type LaneConfig struct {
	Name string
	MinY float64
	MaxY float64
}

// PlacementConfig controls where the bin lands at round start.
type PlacementConfig struct {
	Lanes          []LaneConfig
	VerticalMargin float64 // added to half the bin height inside the band
	CenterJitterX  float64 // horizontal jitter around the play area center
	EdgeMarginX    float64 // bin body keeps this distance from the side edges
}

// SessionConfig contains round defaults.
type SessionConfig struct {
	MaxThrows    int
	CaptureTicks int // duration of the post-score capture animation
}

// WindConfig contains the optional wind model.
type WindConfig struct {
	Enabled   bool
	MaxSpeed  float64 // wind speed rolled per round in [-MaxSpeed, MaxSpeed]
	Accel     float64 // horizontal acceleration per unit of wind speed per tick
	Gustiness float64 // constant extra acceleration along the wind direction
}

// Modality describes one input source and its press tolerance around the
// throw origin. Touch tolerance is half the pointer tolerance in the source
// material; kept as-is.
type Modality struct {
	Name           string
	PressTolerance float64
}

// InputConfig contains the input boundary settings.
type InputConfig struct {
	OriginRadius float64
	Pointer      Modality
	Touch        Modality
}

// HUDConfig contains HUD layout and colors.
type HUDConfig struct {
	Margin       float64
	PowerBarW    float64
	PowerBarH    float64
	TextColor    color.RGBA
	AccentColor  color.RGBA
	OverlayColor color.RGBA
}

// Config holds general game configuration.
type Config struct {
	Width   int
	Height  int
	GroundY float64
	OriginX float64
	OriginY float64
}

var C *Config
var Physics PhysicsConfig
var Launch LaunchConfig
var Ball BallConfig
var Bin BinConfig
var Placement PlacementConfig
var Session SessionConfig
var Wind WindConfig
var Input InputConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Paper        = color.RGBA{R: 235, G: 235, B: 225, A: 255}
	BinGreen     = color.RGBA{R: 60, G: 130, B: 90, A: 255}
	BinRim       = color.RGBA{R: 40, G: 95, B: 65, A: 255}
	Ground       = color.RGBA{R: 70, G: 60, B: 55, A: 255}
	Sky          = color.RGBA{R: 24, G: 28, B: 38, A: 255}
	TrailGray    = color.RGBA{R: 180, G: 180, B: 180, A: 90}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:   480,
		Height:  520,
		GroundY: 480,
		OriginX: 240,
		OriginY: 456,
	}

	Physics = PhysicsConfig{
		Gravity:       0.25,
		FrictionDecay: 0.98,
		SpinFactor:    0.04,

		RimBounce:    0.55,
		RimSidePush:  1.2,
		WallBounce:   0.6,
		GroundBounce: 0.45,
		GroundGrip:   0.8,
		GroundJitter: 0.3,
		StopSpeed:    0.6,

		OutOfBoundsMargin: 40.0,
	}

	Launch = LaunchConfig{
		MinDragDistance: 15.0,
		MaxPullDistance: 140.0,
		PowerSpeeds:     [3]float64{12.0, 15.0, 18.0},
		PowerSplitLow:   0.45,
		PowerSplitHigh:  0.8,

		MaxSpeedX: 3.2,
		MaxRiseVy: -18.0,
		MaxDropVy: 12.0,
	}

	Ball = BallConfig{
		Radius:      7.0,
		TrailLength: 14,
	}

	Bin = BinConfig{
		BodyWidth:    56.0,
		BodyHeight:   48.0,
		OpeningWidth: 40.0,
		RimThickness: 6.0,

		GrazeBand:    15.0,
		GrazeMaxVyUp: -2.0,
	}

	Placement = PlacementConfig{
		Lanes: []LaneConfig{
			{Name: "far", MinY: 150, MaxY: 230},
			{Name: "mid", MinY: 240, MaxY: 320},
			{Name: "near", MinY: 330, MaxY: 410},
		},
		VerticalMargin: 8.0,
		CenterJitterX:  60.0,
		EdgeMarginX:    16.0,
	}

	Session = SessionConfig{
		MaxThrows:    5,
		CaptureTicks: 30, // 0.5s at 60 ticks/s
	}

	Wind = WindConfig{
		Enabled:   false,
		MaxSpeed:  1.0,
		Accel:     0.012,
		Gustiness: 0.002,
	}

	Input = InputConfig{
		OriginRadius: 22.0,
		Pointer:      Modality{Name: "pointer", PressTolerance: 30.0},
		Touch:        Modality{Name: "touch", PressTolerance: 15.0},
	}

	HUD = HUDConfig{
		Margin:       10.0,
		PowerBarW:    110.0,
		PowerBarH:    10.0,
		TextColor:    White,
		AccentColor:  BrightOrange,
		OverlayColor: BlackOverlay,
	}
}
