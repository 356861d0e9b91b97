package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Camera = donburi.NewTag().SetName("Camera")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvRamp      = "ramp"
	ResolvSensor    = "sensor"
	ResolvLadder    = "ladder"
	ResolvCharacter = "character"

	// Ramp rise direction tags
	RampUpEast  = "up_east"
	RampUpWest  = "up_west"
	RampUpSouth = "up_south"
	RampUpNorth = "up_north"
)
