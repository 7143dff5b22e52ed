package components

import (
	"github.com/automoto/overworld/shared/character"
	"github.com/yohamta/donburi"
)

// CharacterData is a moving, animated character. Name selects its asset set
// and tuning.
type CharacterData struct {
	Name string
	Body character.Body
}

var Character = donburi.NewComponentType[CharacterData]()
