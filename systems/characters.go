package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/character"
	"github.com/automoto/overworld/shared/collision"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateCharacters ticks every character against the room's solids. The
// player is driven by input; everyone else gets an empty intent and only
// settles under friction.
func NewUpdateCharacters(obstacles character.Obstacles) ecs.System {
	return func(ecs *ecs.ECS) {
		if fadeOutActive(ecs) {
			return
		}

		dt := 1.0 / float64(ebiten.TPS())
		input := getOrCreateInput(ecs)

		tags.Character.Each(ecs.World, func(e *donburi.Entry) {
			var in character.Intent
			if e.HasComponent(tags.Player) {
				in = PlayerIntent(input)
			}
			tickCharacter(e, dt, in, obstacles)
		})
	}
}

func tickCharacter(e *donburi.Entry, dt float64, in character.Intent, obstacles character.Obstacles) {
	char := components.Character.Get(e)
	anim := components.Animation.Get(e)

	char.Body.Tick(dt, in, anim, obstacles)

	if obj := components.Object.Get(e); obj.Object != nil {
		collision.Sync(obj.Object, char.Body.Hitbox)
	}
}
