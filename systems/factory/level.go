package factory

import (
	"github.com/automoto/climber/archetypes"
	"github.com/automoto/climber/assets"
	"github.com/automoto/climber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named embedded level. An unknown name falls back to
// the first level in sorted order.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	names := loader.MustLoadLevels()

	current, err := loader.Level(name)
	if err != nil {
		current, err = loader.Level(names[0])
		if err != nil {
			panic(err)
		}
	}

	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
		Names:        names,
	})

	return level
}
