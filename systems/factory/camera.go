package factory

import (
	"github.com/automoto/climber/archetypes"
	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera over (x, z).
func CreateCamera(ecs *ecs.ECS, x, z float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: z},
		Zoom:     cfg.Camera.Zoom,
	})
}
