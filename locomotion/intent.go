package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Intent is the horizontal movement request for a single frame.
type Intent struct {
	Direction mgl64.Vec3 // unit length or zero, Y always 0
	Running   bool
}

// Magnitude is 1 when any direction key is held and 0 otherwise.
func (i Intent) Magnitude() float64 {
	return i.Direction.Len()
}

// ResolveIntent rotates the camera-space key vector into world space by the
// camera yaw. At yaw 0 forward is -Z and right is +X.
func ResolveIntent(a Actions, cameraYaw float64) Intent {
	var x, z float64
	if a.Right {
		x++
	}
	if a.Left {
		x--
	}
	if a.Back {
		z++
	}
	if a.Forward {
		z--
	}

	intent := Intent{Running: a.Run}
	if x == 0 && z == 0 {
		return intent
	}

	sin, cos := math.Sincos(cameraYaw)
	dir := mgl64.Vec3{x*cos + z*sin, 0, -x*sin + z*cos}
	intent.Direction = dir.Normalize()
	return intent
}
