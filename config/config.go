package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int // base resolution width in world pixels
	Height int // base resolution height in world pixels
	Scale  int // window scale factor
	Title  string
}

// WorldConfig contains the fixed simulation constants.
// The simulation runs in Y-up world space; the renderer flips to
// screen space when drawing.
type WorldConfig struct {
	Gravity      float64 // downward acceleration, negative (units/s^2)
	JumpVelocity float64 // upward impulse applied on flap (units/s)

	ScreenHeight     float64 // clamp upper reference
	PlayerHalfHeight float64 // clamp margin above/below screen

	MaxDelta float64 // cap on per-tick elapsed seconds
}

// LowerBound returns the minimum clamped player Y.
func (w WorldConfig) LowerBound() float64 {
	return -w.PlayerHalfHeight
}

// UpperBound returns the maximum clamped player Y.
func (w WorldConfig) UpperBound() float64 {
	return w.ScreenHeight + w.PlayerHalfHeight
}

// PlayerConfig contains player sprite and spawn configuration
type PlayerConfig struct {
	// Spawn position as fractions of the base resolution
	SpawnFracX float64
	SpawnFracY float64

	// Dimensions (world pixels)
	FrameWidth  int
	FrameHeight int

	// Wing animation
	WingFrames    int
	WingFrameTPS  float32 // ticks per animation frame
	FlapResetWing bool    // restart wing cycle on flap
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	BestColor color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	BobAmplitude      float64 // title bird bob distance in pixels
	BobPeriod         float32 // seconds for one bob half-cycle
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	FadeDuration      float32 // seconds for overlay fade-in
}

// DebugConfig contains debug overlay configuration
type DebugConfig struct {
	BoundsColor color.RGBA
	PlayerColor color.RGBA
	TextColor   color.RGBA
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	SkyBlue      = color.RGBA{R: 110, G: 180, B: 230, A: 255}
	NightBlue    = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  144,
		Height: 200,
		Scale:  4,
		Title:  "Flappy Bird!",
	}

	World = WorldConfig{
		Gravity:          -650.0,
		JumpVelocity:     150.0,
		ScreenHeight:     200.0,
		PlayerHalfHeight: 12.0,
		MaxDelta:         0.25,
	}

	Player = PlayerConfig{
		SpawnFracX:    1.0 / 3.0,
		SpawnFracY:    0.5,
		FrameWidth:    17,
		FrameHeight:   12,
		WingFrames:    3,
		WingFrameTPS:  6,
		FlapResetWing: true,
	}

	HUD = HUDConfig{
		Margin:    4,
		TextColor: White,
		BestColor: Yellow,
	}

	Menu = MenuConfig{
		BackgroundColor:   NightBlue,
		TitleColor:        Yellow,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            48,
		MenuStartY:        96,
		MenuItemHeight:    16,
		BobAmplitude:      4,
		BobPeriod:         0.8,
	}

	GameOver = GameOverConfig{
		OverlayColor:      BlackOverlay,
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            56,
		ScoreY:            86,
		MenuStartY:        124,
		MenuItemHeight:    16,
		FadeDuration:      0.5,
	}

	Debug = DebugConfig{
		BoundsColor: Magenta,
		PlayerColor: Green,
		TextColor:   White,
	}
}
