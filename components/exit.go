package components

import (
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/yohamta/donburi"
)

type ExitData struct {
	leveldata.Exit
}

var Exit = donburi.NewComponentType[ExitData]()
