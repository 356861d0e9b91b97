package components

import (
	"github.com/automoto/climber/assets/animations"
	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/physics"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *locomotion.Controller
	Character  *physics.Character
	Mixer      *animations.Mixer // empty until the clips finish loading
	Rig        string            // key into config.CharacterAnimations
	SpawnIndex int

	Cancel func() // stops a pending clip load
}

var Player = donburi.NewComponentType[PlayerData]()
