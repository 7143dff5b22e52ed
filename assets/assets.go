package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/animation"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:rooms all:characters
	embedded embed.FS

	assetFS fs.FS = embedded

	roomLoader      = NewRoomLoader(embedded, config.Scene.RoomsDir)
	animationSource = NewAnimationSource(embedded, config.Scene.CharactersDir)
)

// UseDir loads every asset from dir on disk instead of the embedded copy.
func UseDir(dir string) {
	assetFS = os.DirFS(dir)
	roomLoader = NewRoomLoader(assetFS, config.Scene.RoomsDir)
	animationSource = NewAnimationSource(assetFS, config.Scene.CharactersDir)
}

// FS returns the filesystem assets are read from.
func FS() fs.FS {
	return assetFS
}

// Room is a parsed room plus its pre-rendered tile layers.
type Room struct {
	*leveldata.Room
	Background *ebiten.Image
}

// RoomLoader loads TMX rooms from one directory and keeps them once loaded.
type RoomLoader struct {
	fsys  fs.FS
	dir   string
	cache map[string]*Room
}

func NewRoomLoader(fsys fs.FS, dir string) *RoomLoader {
	return &RoomLoader{
		fsys:  fsys,
		dir:   dir,
		cache: make(map[string]*Room),
	}
}

// LoadRoom parses rooms/<name>.tmx and renders every tile layer that has
// the "render" property set.
func (l *RoomLoader) LoadRoom(name string) (*Room, error) {
	if room, ok := l.cache[name]; ok {
		return room, nil
	}

	tmxPath := path.Join(l.dir, name+".tmx")
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	data, err := leveldata.FromMap(levelMap, tmxPath)
	if err != nil {
		return nil, err
	}

	background, err := renderBackground(l.fsys, levelMap, data.Width, data.Height)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", tmxPath, err)
	}

	room := &Room{Room: data, Background: background}
	l.cache[name] = room
	return room, nil
}

func (l *RoomLoader) MustLoadRoom(name string) *Room {
	room, err := l.LoadRoom(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load room %s: %v", name, err))
	}
	return room
}

// Validate loads every room's data and checks that all exits lead somewhere.
func (l *RoomLoader) Validate() error {
	rooms, _, err := leveldata.LoadAll(l.fsys, l.dir)
	if err != nil {
		return err
	}
	return leveldata.Validate(rooms)
}

func LoadRoom(name string) (*Room, error) {
	return roomLoader.LoadRoom(name)
}

func MustLoadRoom(name string) *Room {
	return roomLoader.MustLoadRoom(name)
}

func ValidateRooms() error {
	return roomLoader.Validate()
}

func renderBackground(fsys fs.FS, levelMap *tiled.Map, width, height int) (*ebiten.Image, error) {
	background := ebiten.NewImage(width, height)

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		// go-tiled defaults opacity to 1.0 when the TMX leaves it out
		if layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			continue
		}

		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background, nil
}

// AnimationSource supplies a character's clips: the clip names under its
// directory and the ordered frames of each.
type AnimationSource interface {
	StateNames(character string) ([]string, error)
	Frames(character, clip string) ([]*ebiten.Image, error)
}

// FSAnimationSource reads characters/<name>/<clip>/<index>.png from a
// filesystem. Decoded images are cached by path.
type FSAnimationSource struct {
	fsys  fs.FS
	root  string
	cache map[string]*ebiten.Image
}

func NewAnimationSource(fsys fs.FS, root string) *FSAnimationSource {
	return &FSAnimationSource{
		fsys:  fsys,
		root:  root,
		cache: make(map[string]*ebiten.Image),
	}
}

func (s *FSAnimationSource) StateNames(character string) ([]string, error) {
	return animation.Clips(s.fsys, path.Join(s.root, character))
}

func (s *FSAnimationSource) Frames(character, clip string) ([]*ebiten.Image, error) {
	paths, err := animation.FramePaths(s.fsys, path.Join(s.root, character, clip))
	if err != nil {
		return nil, err
	}
	frames := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := s.loadImage(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

func (s *FSAnimationSource) loadImage(p string) (*ebiten.Image, error) {
	if img, ok := s.cache[p]; ok {
		return img, nil
	}
	imgBytes, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", p, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}
	s.cache[p] = img
	return img, nil
}

// Animations returns the source characters are built from.
func Animations() AnimationSource {
	return animationSource
}
