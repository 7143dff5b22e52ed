package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFadeIn uncovers the world from a full overlay.
func CreateFadeIn(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		Direction: components.FadeIn,
		Tween:     gween.New(1, 0, float32(cfg.Fade.Duration), ease.Linear),
		Alpha:     1,
	})
	return fade
}

// CreateFadeOut covers the world, then leads through exit.
func CreateFadeOut(ecs *ecs.ECS, exit leveldata.Exit) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		Direction: components.FadeOut,
		Tween:     gween.New(0, 1, float32(cfg.Fade.Duration), ease.InQuad),
		Exit:      &exit,
	})
	return fade
}
