package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlock adds a static obstacle to the room.
func CreateBlock(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	obj := resolv.NewObject(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), tags.ResolvSolid)
	obj.Data = block // Link for O(1) lookup
	components.Object.SetValue(block, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return block
}
