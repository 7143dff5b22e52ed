package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SplashScene shows the title until the player confirms.
type SplashScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	room         string
	entry        string
	once         sync.Once
}

// NewSplashScene creates a splash screen that leads to room at entry.
func NewSplashScene(sc SceneChanger, room, entry string) *SplashScene {
	return &SplashScene{sceneChanger: sc, room: room, entry: entry}
}

func (ss *SplashScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *SplashScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SplashScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	start := func() {
		ss.sceneChanger.ChangeScene(NewWorldScene(ss.sceneChanger, ss.room, ss.entry))
	}

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateSettings)
	ss.ecs.AddSystem(systems.NewUpdateSplash(start))

	ss.ecs.AddRenderer(cfg.Default, systems.DrawSplash)

	factory.CreateSplash(ss.ecs)
}
