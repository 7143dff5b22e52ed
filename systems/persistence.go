package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug           bool `json:"debug"`
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// current outlives any single world; each new world starts from it.
var current = components.SettingsData{
	ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Missing storage or a first run
// yields nil settings and no error.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the settings a world is running with
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:           s.Debug,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	})
}

// ApplySavedSettingsGlobal applies settings before any world exists.
// Used during startup; a nil value keeps the defaults.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved != nil {
		current = components.SettingsData{
			Debug:           saved.Debug,
			Fullscreen:      saved.Fullscreen,
			ResolutionIndex: saved.ResolutionIndex,
		}
	}
	if current.ResolutionIndex < 0 || current.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		current.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	applyWindow(&current)
}

// SetDebug overrides the debug overlay, e.g. from a command-line flag.
func SetDebug(on bool) {
	current.Debug = on
}

func applyWindow(s *components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)

	// Resolution only matters in windowed mode
	if !s.Fullscreen {
		res := cfg.Settings.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
