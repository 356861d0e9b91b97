package factory

import (
	"context"
	"fmt"

	"github.com/automoto/climber/archetypes"
	"github.com/automoto/climber/assets"
	"github.com/automoto/climber/assets/animations"
	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/physics"
	"github.com/automoto/climber/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a locomotion controller at spawn. The rig's clips load
// in the background; ctx bounds that load and is cancelled by the returned
// entry's PlayerData.Cancel.
func CreatePlayer(ctx context.Context, ecs *ecs.ECS, world *physics.World, spawn leveldata.SpawnPoint, rig string, input locomotion.InputSource) (*donburi.Entry, error) {
	ctx, cancel := context.WithCancel(ctx)

	mixer := animations.NewMixer()
	loader := assets.NewClipLoader(rig)
	loader.Mixer = mixer
	ctrl, err := locomotion.Spawn(ctx, world, mgl64.Vec3{spawn.X, spawn.Y, spawn.Z}, cfg.Locomotion, input, loader)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create player: %w", err)
	}

	character, ok := ctrl.Collider().(*physics.Character)
	if !ok {
		cancel()
		return nil, fmt.Errorf("create player: unexpected collider %T", ctrl.Collider())
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Controller: ctrl,
		Character:  character,
		Mixer:      mixer,
		Rig:        rig,
		SpawnIndex: spawn.Index,
		Cancel:     cancel,
	})
	return player, nil
}
