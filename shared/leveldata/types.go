// Package leveldata turns TMX rooms into plain data: solid blocks, named
// entries, exits and character placements. It has no dependency on ebiten,
// donburi or resolv so it can be loaded and tested headless.
package leveldata

import "github.com/automoto/overworld/shared/gamemath"

// Layer names a room is built from.
const (
	LayerBlocks     = "blocks"
	LayerEntries    = "entries"
	LayerExits      = "exits"
	LayerCharacters = "characters"
)

// Room is everything the world needs from one TMX file.
type Room struct {
	Name       string
	Path       string
	Width      int // pixels
	Height     int
	TileWidth  int
	TileHeight int

	Blocks     []gamemath.Rect
	Entries    map[string]Entry
	Exits      []Exit
	Characters []Placement
}

// Entry is a named point a character can be placed at when the room loads.
type Entry struct {
	Name string
	X, Y int
}

// Exit is a trigger area leading to an entry of another room.
type Exit struct {
	Area  gamemath.Rect
	Scene string
	Entry string
}

// Placement puts a non-player character into the room.
type Placement struct {
	Name string
	X, Y int
}

// Entry looks up a named entry.
func (r *Room) Entry(name string) (Entry, bool) {
	e, ok := r.Entries[name]
	return e, ok
}
