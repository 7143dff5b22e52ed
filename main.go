package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/scenes"
	"github.com/automoto/overworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	room, entry := config.Scene.StartRoom, config.Scene.StartEntry
	if config.Debug.SkipSplash {
		g.scene = scenes.NewWorldScene(g, room, entry)
	} else {
		g.scene = scenes.NewSplashScene(g, room, entry)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.ApplyEnv(); err != nil {
		log.Printf("Warning: Ignoring environment overrides: %v", err)
	}

	room := flag.String("scene", config.Scene.StartRoom, "room to start in")
	entry := flag.String("entry", config.Scene.StartEntry, "entry point the player starts at")
	debug := flag.Bool("debug", config.Debug.Enabled, "show the debug overlay")
	skipSplash := flag.Bool("skip-splash", config.Debug.SkipSplash, "start in the world")
	assetsDir := flag.String("assets", config.Debug.AssetsDir, "load assets from this directory instead of the embedded copy")
	flag.Parse()

	config.Scene.StartRoom = *room
	config.Scene.StartEntry = *entry
	config.Debug.SkipSplash = *skipSplash
	config.Debug.AssetsDir = *assetsDir

	if config.Debug.AssetsDir != "" {
		assets.UseDir(config.Debug.AssetsDir)
	}
	if err := assets.ValidateRooms(); err != nil {
		log.Printf("Warning: Rooms failed validation: %v", err)
	}
	if _, err := assets.LoadRoom(config.Scene.StartRoom); err != nil {
		log.Fatalf("Failed to load start room: %v", err)
	}

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettingsGlobal(saved)

	// The environment or an explicit flag wins over the saved overlay setting.
	if config.Debug.Enabled {
		systems.SetDebug(true)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "debug" {
			systems.SetDebug(*debug)
		}
	})

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
