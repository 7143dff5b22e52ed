package components

import (
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type FadeDirection int

const (
	FadeIn FadeDirection = iota
	FadeOut
)

// FadeData drives the screen overlay between rooms. Alpha is the overlay
// opacity, 1 fully covering the world.
type FadeData struct {
	Direction FadeDirection
	Tween     *gween.Tween
	Alpha     float32
	Done      bool
	// Exit is where a fade-out leads once it completes.
	Exit *leveldata.Exit
}

var Fade = donburi.NewComponentType[FadeData]()
