package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is an orbit camera looking down at the player. Position is the
// smoothed focus point on the world XZ plane (X is world X, Y is world Z).
type CameraData struct {
	Position math.Vec2
	Yaw      float64 // radians, 0 looks toward -Z
	Zoom     float64 // screen pixels per world unit
}

var Camera = donburi.NewComponentType[CameraData]()
