package config

import "image/color"

// PhysicsConfig contains physics-related configuration values.
// Velocities and accelerations are per tick, not per second.
type PhysicsConfig struct {
	Gravity       float64
	JumpSpeed     float64 // Upward velocity applied by a grounded jump
	AirJumpSpeed  float64 // Weaker impulse for the double jump
	DashSpeed     float64
	RollSpeed     float64
	MoveSpeed     float64 // Horizontal speed used by the input adapter
	DashDuration  float64 // ms
	RollDuration  float64 // ms
	EnableAirJump bool
}

// FighterConfig contains per-fighter defaults that are not archetype specific.
type FighterConfig struct {
	MaxHealth int

	// Used when an archetype does not declare its frame size (missing asset).
	FallbackFrameWidth  float64
	FallbackFrameHeight float64
	DefaultScale        float64
}

// CombatConfig contains attack timing values.
type CombatConfig struct {
	AttackCooldownMs float64 // Attack activation lifetime
	HitstunMs        float64 // Time spent in HIT before recovering

	// Default damage per attack kind, used by the built-in character tables.
	LightDamage  int
	MediumDamage int
	HeavyDamage  int

	// LockFacingDuringAttack freezes facing while an attack is active so the
	// hitbox side cannot flip when fighters cross mid-attack.
	LockFacingDuringAttack bool
}

// RoundConfig contains round and match timing values.
type RoundConfig struct {
	TimerSeconds    float64
	ResetDelayMs    float64 // Delay between round end and automatic reset
	StartMessageMs  float64
	EndMessageMs    float64
	RoundsToWin     int
	MatchMessageMs  float64
	DoubleKOIsDraw  bool
	StartMessageFmt string
}

// ArenaConfig describes the playfield. An arena TMX may override it.
type ArenaConfig struct {
	Width        float64
	Height       float64
	GroundY      float64
	SpawnOffsetX float64 // P1 spawns at SpawnOffsetX, P2 at Width-SpawnOffsetX
	CellSize     int     // Broad-phase cell size
}

// HUDConfig contains HUD model values.
type HUDConfig struct {
	TrailDurationSeconds float32 // Time for the trailing bar to catch up
	HealthyThreshold     float64 // Fraction above which the bar is green
	WarningThreshold     float64 // Fraction above which the bar is orange

	HealthyColor color.RGBA
	WarningColor color.RGBA
	DangerColor  color.RGBA
	TrailColor   color.RGBA
	HurtboxColor color.RGBA
	HitboxColor  color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Fighter FighterConfig
var Combat CombatConfig
var Round RoundConfig
var Arena ArenaConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	DarkGreen    = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 102}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:       0.8,
		JumpSpeed:     20.0,
		AirJumpSpeed:  15.0,
		DashSpeed:     15.0,
		RollSpeed:     10.0,
		MoveSpeed:     4.0,
		DashDuration:  200,
		RollDuration:  300,
		EnableAirJump: true,
	}

	Fighter = FighterConfig{
		MaxHealth:           100,
		FallbackFrameWidth:  100,
		FallbackFrameHeight: 100,
		DefaultScale:        0.35,
	}

	Combat = CombatConfig{
		AttackCooldownMs:       300,
		HitstunMs:              400,
		LightDamage:            6,
		MediumDamage:           10,
		HeavyDamage:            14,
		LockFacingDuringAttack: true,
	}

	Round = RoundConfig{
		TimerSeconds:    99,
		ResetDelayMs:    4000,
		StartMessageMs:  2000,
		EndMessageMs:    3000,
		RoundsToWin:     2,
		MatchMessageMs:  3000,
		DoubleKOIsDraw:  true,
		StartMessageFmt: "ROUND %d! FIGHT!",
	}

	Arena = ArenaConfig{
		Width:        1280,
		Height:       720,
		GroundY:      720 - 100,
		SpawnOffsetX: 200,
		CellSize:     32,
	}

	HUD = HUDConfig{
		TrailDurationSeconds: 0.6,
		HealthyThreshold:     0.5,
		WarningThreshold:     0.2,
		HealthyColor:         Green,
		WarningColor:         Orange,
		DangerColor:          Red,
		TrailColor:           Yellow,
		HurtboxColor:         Blue,
		HitboxColor:          Red,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
