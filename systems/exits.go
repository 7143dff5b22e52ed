package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/collision"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExits starts a fade-out when the player's hitbox overlaps an exit.
// Only one transition runs at a time.
func UpdateExits(ecs *ecs.ECS) {
	if fadeOutActive(ecs) {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	if playerObj.Object == nil {
		return
	}

	check := playerObj.Check(0, 0, tags.ResolvExit)
	if check == nil {
		return
	}

	hitbox := components.Character.Get(playerEntry).Body.Hitbox
	for _, o := range check.ObjectsByTags(tags.ResolvExit) {
		// Cells only narrow the search; the exit has to actually overlap.
		if !hitbox.Intersects(collision.ObjectRect(o)) {
			continue
		}
		exitEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !exitEntry.Valid() {
			continue
		}
		factory.CreateFadeOut(ecs, components.Exit.Get(exitEntry).Exit)
		return
	}
}
