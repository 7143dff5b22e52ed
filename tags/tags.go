package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	NPC       = donburi.NewTag().SetName("NPC")
	Character = donburi.NewTag().SetName("Character")
	Block     = donburi.NewTag().SetName("Block")
	Exit      = donburi.NewTag().SetName("Exit")
)

// Resolv tags for collision queries
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvExit      = "exit"
)
