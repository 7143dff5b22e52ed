package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig lists the start options that can come from the environment.
// Unset variables leave the current value alone; command-line flags are
// applied afterwards and win.
type EnvConfig struct {
	StartRoom  string `env:"OVERWORLD_SCENE"`
	StartEntry string `env:"OVERWORLD_ENTRY"`
	AssetsDir  string `env:"OVERWORLD_ASSETS"`
	Debug      bool   `env:"OVERWORLD_DEBUG"`
	SkipSplash bool   `env:"OVERWORLD_SKIP_SPLASH"`
}

// ApplyEnv overrides Scene and Debug from OVERWORLD_* variables.
func ApplyEnv() error {
	e := EnvConfig{
		StartRoom:  Scene.StartRoom,
		StartEntry: Scene.StartEntry,
		AssetsDir:  Debug.AssetsDir,
		Debug:      Debug.Enabled,
		SkipSplash: Debug.SkipSplash,
	}
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	Scene.StartRoom = e.StartRoom
	Scene.StartEntry = e.StartEntry
	Debug.AssetsDir = e.AssetsDir
	Debug.Enabled = e.Debug
	Debug.SkipSplash = e.SkipSplash
	return nil
}
