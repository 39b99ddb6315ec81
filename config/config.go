package config

import "image/color"

// Config contains the viewer window size
type Config struct {
	Width  int
	Height int
}

// SimConfig contains world and stepping configuration
type SimConfig struct {
	TickRate int     // Simulation steps per second
	SubSteps int     // Integration steps per tick
	Width    float64 // Boundary width in world units
	Height   float64 // Boundary height in world units
	Bodies   int     // Bodies spawned when no level is loaded
	Seed     int64   // Seed for generated bodies
}

// EdgeCollisionConfig contains the world boundary's material
type EdgeCollisionConfig struct {
	Restitution float64
	Friction    float64 // Coefficient of friction
}

// PhysicsConfig contains integration and resolver values
type PhysicsConfig struct {
	Gravity         float64 // Added to vertical velocity every second
	MaxSpeed        float64 // Per-axis velocity clamp
	MaxAngularSpeed float64 // Radians per second
	SpinTransfer    float64 // Fraction of tangential impact turned into spin
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Overlay       bool    // Draw the debug overlay
	DrawAABBs     bool    // Outline every body's AABB
	DrawContacts  bool    // Mark contact points from the last step
	ContactRadius float32 // Contact marker radius in pixels
	NormalLength  float32 // Length of drawn contact normals in pixels
	LogCollisions bool    // Log every published collision batch
}

// Global configuration instances
var C *Config
var Sim SimConfig
var EdgeCollision EdgeCollisionConfig
var Physics PhysicsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Sim = SimConfig{
		TickRate: 60,
		SubSteps: 1,
		Width:    640,
		Height:   360,
		Bodies:   12,
		Seed:     1,
	}

	EdgeCollision = EdgeCollisionConfig{
		Restitution: 0.99,
		Friction:    1.0,
	}

	Physics = PhysicsConfig{
		Gravity:         400.0,
		MaxSpeed:        900.0,
		MaxAngularSpeed: 12.0,
		SpinTransfer:    0.02,
	}

	Debug = DebugConfig{
		Overlay:       true,
		DrawAABBs:     true,
		DrawContacts:  true,
		ContactRadius: 3,
		NormalLength:  12,
		LogCollisions: false,
	}
}
