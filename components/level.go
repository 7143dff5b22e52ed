package components

import (
	"github.com/automoto/overworld/assets"
	"github.com/yohamta/donburi"
)

// LevelData is the room the world was built from and the entry the player
// arrived at.
type LevelData struct {
	Room  *assets.Room
	Entry string
}

var Level = donburi.NewComponentType[LevelData]()
