package config

import (
	"image/color"

	"github.com/automoto/overworld/shared/character"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; systems and renderers run in insertion order.
const Default ecs.LayerID = 0

// Config is the logical screen size everything is laid out in.
type Config struct {
	Width  int
	Height int
}

// WindowConfig contains the OS window defaults. The size comes from
// Settings.
type WindowConfig struct {
	Title string
}

// CharacterConfig maps an asset set name to its tuning. Names without an
// entry use Fallback.
type CharacterConfig struct {
	Tunings  map[string]character.Tuning
	Fallback string
}

// Tuning returns the tuning for the named character.
func (c CharacterConfig) Tuning(name string) character.Tuning {
	if t, ok := c.Tunings[name]; ok {
		return t
	}
	return c.Tunings[c.Fallback]
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // 1 locks onto the target, smaller values trail it
	ClampToLevel    bool    // keep the view inside the room bounds
}

// FadeConfig contains room transition configuration
type FadeConfig struct {
	Duration float64 // seconds for each half of the transition
	Color    color.RGBA
}

// SceneConfig names where the world starts and where its assets live
type SceneConfig struct {
	StartRoom     string
	StartEntry    string
	PlayerName    string
	RoomsDir      string
	CharactersDir string
}

// SplashConfig contains splash screen configuration
type SplashConfig struct {
	Title           string
	Hint            string // keyboard
	XboxHint        string
	PlayStationHint string
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	HintColor       color.RGBA
	TitleY          int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled     bool // overlay on at start, overridden by saved settings
	SkipSplash  bool // go straight to the world
	AssetsDir   string
	TextColor   color.RGBA
	LineHeight  int
	HitboxColor color.RGBA
	RectColor   color.RGBA
	SolidColor  color.RGBA
	ExitColor   color.RGBA
}

// Global configuration instances
var C *Config
var Window WindowConfig
var Character CharacterConfig
var Camera CameraConfig
var Fade FadeConfig
var Scene SceneConfig
var Splash SplashConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGreen    = color.RGBA{R: 20, G: 40, B: 24, A: 255}
)

func init() {
	C = &Config{
		Width:  320,
		Height: 180,
	}

	Window = WindowConfig{
		Title: "overworld",
	}

	player := character.DefaultTuning()
	npc := character.DefaultTuning()
	npc.MaxSpeed = 40
	npc.FrameRate = 6
	Character = CharacterConfig{
		Tunings: map[string]character.Tuning{
			"player": player,
			"npc":    npc,
		},
		Fallback: "npc",
	}

	// Lock-on camera; ClampToLevel centres rooms smaller than the screen.
	Camera = CameraConfig{
		FollowSmoothing: 1,
		ClampToLevel:    false,
	}

	Fade = FadeConfig{
		Duration: 0.35,
		Color:    Black,
	}

	Scene = SceneConfig{
		StartRoom:     "tutorial",
		StartEntry:    "0",
		PlayerName:    "player",
		RoomsDir:      "rooms",
		CharactersDir: "characters",
	}

	Splash = SplashConfig{
		Title:           "OVERWORLD",
		Hint:            "Press SPACE to start",
		XboxHint:        "Press A to start",
		PlayStationHint: "Press Cross to start",
		BackgroundColor: DarkGreen,
		TitleColor:      BrightOrange,
		HintColor:       White,
		TitleY:          70,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:     false,
		SkipSplash:  false,
		TextColor:   White,
		LineHeight:  12,
		HitboxColor: LightBlue,
		RectColor:   BrightGreen,
		SolidColor:  Grey,
		ExitColor:   LightRed,
	}
}
