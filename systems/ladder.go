package systems

import (
	"github.com/automoto/climber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLadders delivers the active ladder zone to every player controller.
// The zone is whatever ladder sensor the character box overlaps after last
// frame's move, or nil.
func UpdateLadders(ecs *ecs.ECS) {
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	if world.World == nil {
		return
	}

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Controller == nil {
			return
		}
		player.Controller.SetLadder(world.LadderAt(player.Controller.Collider()))
	})
}
