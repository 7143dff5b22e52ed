package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSplash(ecs *ecs.ECS) *donburi.Entry {
	splash := archetypes.Splash.Spawn(ecs)

	// The hint fades out and back in, over and over.
	pulse := gween.NewSequence()
	pulse.Add(
		gween.New(1, 0.2, 0.8, ease.InOutSine),
		gween.New(0.2, 1, 0.8, ease.InOutSine),
	)
	components.Splash.SetValue(splash, components.SplashData{
		Pulse: pulse,
		Alpha: 1,
	})
	return splash
}
