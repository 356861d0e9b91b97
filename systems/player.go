package systems

import (
	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KillPlaneY is the height below which a falling player is respawned.
const KillPlaneY = -20.0

// UpdatePlayer steps every player's locomotion controller by one fixed tick
// and advances its animation mix. It must run after UpdateLadders.
func UpdatePlayer(ecs *ecs.ECS) {
	yaw := 0.0
	if camEntry, ok := components.Camera.First(ecs.World); ok {
		yaw = components.Camera.Get(camEntry).Yaw
	}
	input := getOrCreateInput(ecs)
	dt := 1.0 / float64(cfg.TPS)

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Controller == nil {
			return
		}

		if GetAction(input, cfg.ActionRespawn).JustPressed || player.Controller.Position().Y() < KillPlaneY {
			respawnPlayer(ecs, player)
		}

		player.Controller.Update(dt, yaw)
		if player.Mixer != nil {
			player.Mixer.Update(dt)
		}
	})
}

// respawnPlayer teleports the player back to its level spawn point.
func respawnPlayer(ecs *ecs.ECS, player *components.PlayerData) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || len(level.Spawns) == 0 {
		return
	}
	spawn := level.Spawns[0]
	for _, s := range level.Spawns {
		if s.Index == player.SpawnIndex {
			spawn = s
			break
		}
	}
	player.Controller.SetPosition(mgl64.Vec3{spawn.X, spawn.Y, spawn.Z})
	player.Controller.SetLadder(nil)
}

// RemovePlayers cancels any pending clip loads and takes the players out of
// the collision world.
func RemovePlayers(ecs *ecs.ECS) {
	var world *components.WorldData
	if worldEntry, ok := components.World.First(ecs.World); ok {
		world = components.World.Get(worldEntry)
	}
	var entries []*donburi.Entry
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Cancel != nil {
			player.Cancel()
		}
		if world != nil && world.World != nil && player.Controller != nil {
			world.RemoveCharacter(player.Controller.Collider())
		}
		entries = append(entries, entry)
	})
	for _, e := range entries {
		ecs.World.Remove(e.Entity())
	}
}
