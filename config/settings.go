package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig lists the window sizes F10 cycles through
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	// AppName is the gdata namespace settings are stored under.
	AppName string
}

// Settings is the global user settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 640, Height: 360, Label: "640 x 360"},
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 2,
		AppName:                "overworld",
	}
}
