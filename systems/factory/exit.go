package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExit adds a trigger that leads the player to another room.
func CreateExit(ecs *ecs.ECS, exit leveldata.Exit) *donburi.Entry {
	entry := archetypes.Exit.Spawn(ecs)
	components.Exit.SetValue(entry, components.ExitData{Exit: exit})

	a := exit.Area
	obj := resolv.NewObject(float64(a.X), float64(a.Y), float64(a.W), float64(a.H), tags.ResolvExit)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
