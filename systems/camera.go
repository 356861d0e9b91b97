package systems

import (
	"math"

	"github.com/automoto/climber/components"
	"github.com/automoto/climber/config"
	"github.com/automoto/climber/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera orbits the camera on the rotate actions and eases its focus
// toward the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)
	dt := 1.0 / float64(config.TPS)

	if input.Current[config.ActionCameraLeft] {
		camera.Yaw -= config.Camera.YawSpeed * dt
	}
	if input.Current[config.ActionCameraRight] {
		camera.Yaw += config.Camera.YawSpeed * dt
	}
	camera.Yaw = wrapAngle(camera.Yaw)

	if camera.Zoom == 0 {
		camera.Zoom = config.Camera.Zoom
	}
	if GetAction(input, config.ActionZoomIn).JustPressed {
		camera.Zoom *= 1.25
	}
	if GetAction(input, config.ActionZoomOut).JustPressed {
		camera.Zoom /= 1.25
	}
	camera.Zoom = math.Max(config.Camera.MinZoom, math.Min(config.Camera.MaxZoom, camera.Zoom))

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Controller == nil {
		return
	}
	target := player.Controller.RenderPosition()

	camera.Position.X += (target.X() - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Z() - camera.Position.Y) * config.Camera.FollowSmoothing
}

// wrapAngle maps a into (-pi, pi].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// project maps a world XZ point to screen pixels. At yaw 0 world -Z is up.
func project(camera *components.CameraData, width, height int, x, z float64) (float64, float64) {
	dx := x - camera.Position.X
	dz := z - camera.Position.Y
	sin, cos := math.Sincos(camera.Yaw)
	sx := dx*cos - dz*sin
	sy := dx*sin + dz*cos
	return float64(width)/2 + sx*camera.Zoom, float64(height)/2 + sy*camera.Zoom
}
