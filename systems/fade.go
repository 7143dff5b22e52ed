package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateFade advances room transitions. A finished fade-in is removed; a
// finished fade-out hands its exit to onExit, which rebuilds the world.
func NewUpdateFade(onExit func(leveldata.Exit)) ecs.System {
	return func(ecs *ecs.ECS) {
		dt := float32(1.0 / float64(ebiten.TPS()))

		var finished []*donburi.Entry
		var exit *leveldata.Exit
		components.Fade.Each(ecs.World, func(e *donburi.Entry) {
			fade := components.Fade.Get(e)
			if fade.Done {
				return
			}
			fade.Alpha, fade.Done = fade.Tween.Update(dt)
			if !fade.Done {
				return
			}
			finished = append(finished, e)
			if fade.Direction == components.FadeOut && fade.Exit != nil {
				exit = fade.Exit
			}
		})

		if exit != nil {
			// The whole world is about to be replaced; leave the overlay up.
			onExit(*exit)
			return
		}
		for _, e := range finished {
			ecs.World.Remove(e.Entity())
		}
	}
}

// DrawFade covers the screen with the fade colour at the current alpha.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Alpha <= 0 {
			return
		}
		c := cfg.Fade.Color
		c.A = uint8(float32(c.A) * clamp01(fade.Alpha))
		// Premultiplied alpha
		c.R = uint8(uint16(c.R) * uint16(c.A) / 255)
		c.G = uint8(uint16(c.G) * uint16(c.A) / 255)
		c.B = uint8(uint16(c.B) * uint16(c.A) / 255)
		b := screen.Bounds()
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
	})
}

// fadeOutActive reports whether the player is already leaving the room.
func fadeOutActive(ecs *ecs.ECS) bool {
	active := false
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		if components.Fade.Get(e).Direction == components.FadeOut {
			active = true
		}
	})
	return active
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
