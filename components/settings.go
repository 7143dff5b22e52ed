package components

import "github.com/yohamta/donburi"

// SettingsData is the user's persisted preferences.
type SettingsData struct {
	Debug           bool
	Fullscreen      bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
