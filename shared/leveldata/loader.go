package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/overworld/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Load parses a TMX room. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Room, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(levelMap, tmxPath)
}

// FromMap extracts a room from an already parsed map, for callers that also
// render it.
func FromMap(levelMap *tiled.Map, tmxPath string) (*Room, error) {
	room := &Room{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Path:       tmxPath,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Entries:    make(map[string]Entry),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != LayerBlocks {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				room.Blocks = append(room.Blocks, gamemath.NewRect(
					x*levelMap.TileWidth, y*levelMap.TileHeight,
					levelMap.TileWidth, levelMap.TileHeight,
				))
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case LayerBlocks:
			for _, o := range og.Objects {
				room.Blocks = append(room.Blocks, objectRect(o))
			}
		case LayerEntries:
			for _, o := range og.Objects {
				if o.Name == "" {
					return nil, fmt.Errorf("%s: entry object %d has no name", tmxPath, o.ID)
				}
				if _, dup := room.Entries[o.Name]; dup {
					return nil, fmt.Errorf("%s: duplicate entry %q", tmxPath, o.Name)
				}
				room.Entries[o.Name] = Entry{Name: o.Name, X: int(o.X), Y: int(o.Y)}
			}
		case LayerExits:
			for _, o := range og.Objects {
				exit := Exit{
					Area:  objectRect(o),
					Scene: o.Properties.GetString("scene"),
					Entry: o.Properties.GetString("entry"),
				}
				if exit.Scene == "" {
					return nil, fmt.Errorf("%s: exit object %d has no scene property", tmxPath, o.ID)
				}
				if exit.Entry == "" {
					exit.Entry = DefaultEntry
				}
				room.Exits = append(room.Exits, exit)
			}
		case LayerCharacters:
			for _, o := range og.Objects {
				name := o.Properties.GetString("name")
				if name == "" {
					name = o.Name
				}
				room.Characters = append(room.Characters, Placement{Name: name, X: int(o.X), Y: int(o.Y)})
			}
		}
	}

	return room, nil
}

// DefaultEntry is used by exits that do not name an entry.
const DefaultEntry = "0"

// objectRect converts a rectangle object. Point objects become 1x1 rects.
func objectRect(o *tiled.Object) gamemath.Rect {
	w, h := int(o.Width), int(o.Height)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return gamemath.NewRect(int(o.X), int(o.Y), w, h)
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Room, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	rooms := make(map[string]*Room, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		room, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		rooms[room.Name] = room
		names = append(names, room.Name)
	}

	sort.Strings(names)
	return rooms, names, nil
}

// Validate checks that every exit in rooms leads to a room and entry that
// exist.
func Validate(rooms map[string]*Room) error {
	names := make([]string, 0, len(rooms))
	for name := range rooms {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, exit := range rooms[name].Exits {
			target, ok := rooms[exit.Scene]
			if !ok {
				return fmt.Errorf("room %s: exit leads to unknown room %q", name, exit.Scene)
			}
			if _, ok := target.Entry(exit.Entry); !ok {
				return fmt.Errorf("room %s: exit leads to unknown entry %q in %s", name, exit.Entry, exit.Scene)
			}
		}
	}
	return nil
}
