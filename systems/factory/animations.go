package factory

import (
	"fmt"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/character"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations loads every clip of the named character and checks that
// each state has a clip for each facing. Missing or empty clips panic here,
// before the character exists.
func GenerateAnimations(src assets.AnimationSource, name string) *components.AnimationData {
	clips, err := src.StateNames(name)
	if err != nil {
		panic(fmt.Sprintf("No animations found for character %s: %v", name, err))
	}

	animData := &components.AnimationData{
		Clips: make(map[string][]*ebiten.Image, len(clips)),
	}
	for _, clip := range clips {
		frames, err := src.Frames(name, clip)
		if err != nil {
			panic(fmt.Sprintf("Failed to load clip %s/%s: %v", name, clip, err))
		}
		if len(frames) == 0 {
			panic(fmt.Sprintf("Clip %s/%s has no frames", name, clip))
		}
		animData.Clips[clip] = frames
	}

	for _, kind := range []character.Kind{character.Idle, character.Run, character.Dash} {
		for f := gamemath.FacingDown; f <= gamemath.FacingLeft; f++ {
			clip := character.ClipName(kind.Label(), f)
			if _, ok := animData.Clips[clip]; !ok {
				panic(fmt.Sprintf("Character %s is missing clip %s", name, clip))
			}
		}
	}

	// The render rect is sized once, from the first idle frame.
	first := animData.Clips[character.ClipName(character.Idle.Label(), gamemath.FacingDown)][0]
	animData.FrameWidth = first.Bounds().Dx()
	animData.FrameHeight = first.Bounds().Dy()

	return animData
}
