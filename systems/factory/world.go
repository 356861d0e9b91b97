package factory

import (
	"fmt"

	"github.com/automoto/climber/archetypes"
	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/automoto/climber/physics"
	"github.com/automoto/climber/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld builds the collision world for level.
func CreateWorld(ecs *ecs.ECS, level *leveldata.Level) (*donburi.Entry, error) {
	w, err := physics.FromLevel(level, cfg.Physics)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	entry := archetypes.World.Spawn(ecs)
	components.World.SetValue(entry, components.WorldData{World: w})
	return entry, nil
}
