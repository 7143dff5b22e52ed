package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the world's settings singleton, seeded from
// the settings the previous world left behind.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, current)
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug, fullscreen and resolution hotkeys and
// persists any change.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	s := GetOrCreateSettings(ecs)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		s.Debug = !s.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		s.Fullscreen = !s.Fullscreen
		applyWindow(s)
		changed = true
	}
	if GetAction(input, cfg.ActionCycleResolution).JustPressed && !s.Fullscreen {
		s.ResolutionIndex = (s.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
		applyWindow(s)
		changed = true
	}

	if changed {
		current = *s
		SaveCurrentSettings(s)
	}
}
