package components

import (
	"github.com/automoto/climber/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Names        []string // every embedded level, sorted
}

var Level = donburi.NewComponentType[LevelData]()
