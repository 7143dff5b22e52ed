package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/character"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the player with its render rect's top-left at (x, y).
func CreatePlayer(ecs *ecs.ECS, name string, x, y int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	setupCharacter(ecs, player, name, x, y, tags.ResolvPlayer)
	return player
}

// CreateNPC places a non-player character. It runs the same state machine
// as the player with no input.
func CreateNPC(ecs *ecs.ECS, name string, x, y int) *donburi.Entry {
	npc := archetypes.NPC.Spawn(ecs)
	setupCharacter(ecs, npc, name, x, y)
	return npc
}

func setupCharacter(ecs *ecs.ECS, entry *donburi.Entry, name string, x, y int, extraTags ...string) {
	animData := GenerateAnimations(assets.Animations(), name)
	components.Animation.Set(entry, animData)

	body := character.New(x, y, animData.FrameWidth, animData.FrameHeight, cfg.Character.Tuning(name))
	components.Character.SetValue(entry, components.CharacterData{
		Name: name,
		Body: body,
	})

	// The resolv object tracks the hitbox and doubles as the broad-phase probe.
	hb := body.Hitbox
	obj := resolv.NewObject(float64(hb.X), float64(hb.Y), float64(hb.W), float64(hb.H),
		append([]string{tags.ResolvCharacter}, extraTags...)...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
