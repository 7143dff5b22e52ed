package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the room the world is built from.
func CreateLevel(ecs *ecs.ECS, room *assets.Room, entry string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Room:  room,
		Entry: entry,
	})
	return level
}
