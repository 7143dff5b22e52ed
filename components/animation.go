package components

import (
	"fmt"

	"github.com/automoto/overworld/shared/animation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData holds every frame of a character keyed by clip name
// ("run_left").
type AnimationData struct {
	Clips       map[string][]*ebiten.Image
	FrameWidth  int
	FrameHeight int
}

// FrameCount panics on an unknown or empty clip; the asset set is checked
// when the character is created so this only fires on a programming error.
func (a *AnimationData) FrameCount(clip string) int {
	frames := a.Clips[clip]
	if len(frames) == 0 {
		panic(fmt.Sprintf("No frames for clip %s", clip))
	}
	return len(frames)
}

// Frame returns the image the playhead points at.
func (a *AnimationData) Frame(p animation.Progress) *ebiten.Image {
	frames := a.Clips[p.Clip]
	i := p.Frame()
	if i < 0 || i >= len(frames) {
		return nil
	}
	return frames[i]
}

var Animation = donburi.NewComponentType[AnimationData]()
