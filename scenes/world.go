package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/collision"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// WorldScene is one room with the player standing at one of its entries.
// Walking through an exit replaces it with a fresh WorldScene.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	room         string
	entry        string
	next         *leveldata.Exit
	once         sync.Once
}

// NewWorldScene creates the scene for room with the player at entry.
func NewWorldScene(sc SceneChanger, room, entry string) *WorldScene {
	return &WorldScene{sceneChanger: sc, room: room, entry: entry}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	// Scene changes wait until every system has seen this frame.
	if ws.next != nil {
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.next.Scene, ws.next.Entry))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	room := assets.MustLoadRoom(ws.room)
	entry, ok := room.Entry(ws.entry)
	if !ok {
		panic(fmt.Sprintf("Room %s has no entry %q", ws.room, ws.entry))
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	ws.ecs = ecs

	// The space is sized to the room, one cell per tile.
	spaceEntry := factory.CreateSpace(ecs, room.Width, room.Height, room.TileWidth, room.TileHeight)
	obstacles := collision.NewSpaceObstacles(components.Space.Get(spaceEntry), tags.ResolvSolid)

	onExit := func(exit leveldata.Exit) {
		ws.next = &exit
	}

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.NewUpdateCharacters(obstacles))
	ecs.AddSystem(systems.UpdateExits)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.NewUpdateFade(onExit))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)

	factory.CreateLevel(ecs, room, ws.entry)

	for _, block := range room.Blocks {
		factory.CreateBlock(ecs, block)
	}
	for _, exit := range room.Exits {
		factory.CreateExit(ecs, exit)
	}
	for _, npc := range room.Characters {
		factory.CreateNPC(ecs, npc.Name, npc.X, npc.Y)
	}
	factory.CreatePlayer(ecs, cfg.Scene.PlayerName, entry.X, entry.Y)

	factory.CreateCamera(ecs, math.Vec2{})
	systems.SnapCamera(ecs)
	factory.CreateFadeIn(ecs)
}
