package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SplashData pulses the start hint in and out.
type SplashData struct {
	Pulse *gween.Sequence
	Alpha float32
}

var Splash = donburi.NewComponentType[SplashData]()
