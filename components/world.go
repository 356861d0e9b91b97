package components

import (
	"github.com/automoto/climber/physics"
	"github.com/yohamta/donburi"
)

// WorldData wraps the collision world singleton. Characters keep a pointer to
// their world, so the component holds it by reference.
type WorldData struct {
	*physics.World
}

var World = donburi.NewComponentType[WorldData]()
