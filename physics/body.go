package physics

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/shared/gamemath"
	"github.com/automoto/climber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Rise is the horizontal direction a ramp climbs toward.
type Rise int

const (
	RiseEast  Rise = iota // toward +X
	RiseWest              // toward -X
	RiseSouth             // toward +Z
	RiseNorth             // toward -Z
)

// ParseRise maps a level file rise name ("east", "west", "south", "north").
func ParseRise(name string) (Rise, error) {
	switch strings.ToLower(name) {
	case "east":
		return RiseEast, nil
	case "west":
		return RiseWest, nil
	case "south":
		return RiseSouth, nil
	case "north":
		return RiseNorth, nil
	}
	return RiseEast, fmt.Errorf("unknown ramp rise %q", name)
}

func (r Rise) tag() string {
	switch r {
	case RiseWest:
		return tags.RampUpWest
	case RiseSouth:
		return tags.RampUpSouth
	case RiseNorth:
		return tags.RampUpNorth
	default:
		return tags.RampUpEast
	}
}

// axis is the Vec3 index the ramp rises along.
func (r Rise) axis() int {
	if r == RiseSouth || r == RiseNorth {
		return 2
	}
	return 0
}

// downhill is the sign of the downhill direction on the rise axis.
func (r Rise) downhill() float64 {
	if r == RiseEast || r == RiseSouth {
		return -1
	}
	return 1
}

type bodyKind int

const (
	kindSolid bodyKind = iota
	kindRamp
	kindSensor
)

// Body is a static collision volume. It is stored in the resolv object's Data.
type Body struct {
	Min, Max mgl64.Vec3

	kind   bodyKind
	rise   Rise
	ladder *locomotion.LadderZone
	obj    *resolv.Object
}

// IsRamp reports whether the body is a sloped surface.
func (b *Body) IsRamp() bool { return b.kind == kindRamp }

// IsSensor reports whether the body is a trigger volume.
func (b *Body) IsSensor() bool { return b.kind == kindSensor }

// Ladder returns the zone of a ladder sensor, or nil.
func (b *Body) Ladder() *locomotion.LadderZone { return b.ladder }

// Uphill is the unit horizontal direction a ramp climbs toward. It is zero
// for flat bodies.
func (b *Body) Uphill() mgl64.Vec3 {
	var v mgl64.Vec3
	if b.kind == kindRamp {
		v[b.rise.axis()] = -b.rise.downhill()
	}
	return v
}

// Angle is the incline in degrees; flat bodies report 0.
func (b *Body) Angle() float64 {
	if b.kind != kindRamp {
		return 0
	}
	a := b.rise.axis()
	return gamemath.RampAngle(b.Max[a]-b.Min[a], b.Max.Y()-b.Min.Y())
}

// Top is the walkable height of the body under the point (x, z).
func (b *Body) Top(x, z float64) float64 {
	if b.kind != kindRamp {
		return b.Max.Y()
	}
	a := b.rise.axis()
	at := x
	if a == 2 {
		at = z
	}
	rising := b.rise == RiseEast || b.rise == RiseSouth
	return gamemath.RampSurfaceY(at, b.Min[a], b.Max[a], b.Min.Y(), b.Max.Y()-b.Min.Y(), rising)
}

func (b *Body) overlapsXZ(min, max mgl64.Vec3) bool {
	return min.X() < b.Max.X()-skin && max.X() > b.Min.X()+skin &&
		min.Z() < b.Max.Z()-skin && max.Z() > b.Min.Z()+skin
}

// overlaps is the exact narrowphase test against a character box. Ramps are
// solid below their surface at the box centre.
func (b *Body) overlaps(min, max mgl64.Vec3) bool {
	if !b.overlapsXZ(min, max) {
		return false
	}
	cx := (min.X() + max.X()) / 2
	cz := (min.Z() + max.Z()) / 2
	return min.Y() < b.Top(cx, cz)-skin && max.Y() > b.Min.Y()+skin
}

func newBody(kind bodyKind, min, max mgl64.Vec3, tagList ...string) *Body {
	lo := mgl64.Vec3{math.Min(min.X(), max.X()), math.Min(min.Y(), max.Y()), math.Min(min.Z(), max.Z())}
	hi := mgl64.Vec3{math.Max(min.X(), max.X()), math.Max(min.Y(), max.Y()), math.Max(min.Z(), max.Z())}
	b := &Body{Min: lo, Max: hi, kind: kind}

	x, y, w, h := toSpace(lo.X(), lo.Z(), hi.X()-lo.X(), hi.Z()-lo.Z())
	b.obj = resolv.NewObject(x, y, w, h, tagList...)
	b.obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	b.obj.Data = b
	return b
}

// pixelsPerUnit scales world units into resolv space. resolv buckets objects
// by whole pixels and trims one pixel off the far edge, so rectangles are
// padded by that pixel.
const pixelsPerUnit = 16

func toSpace(x, z, w, d float64) (float64, float64, float64, float64) {
	return x * pixelsPerUnit, z * pixelsPerUnit, w*pixelsPerUnit + 1, d*pixelsPerUnit + 1
}

// FromSpace converts a broadphase object's rectangle back to world units on
// the XZ plane.
func FromSpace(o *resolv.Object) (minX, minZ, maxX, maxZ float64) {
	minX, minZ = o.X/pixelsPerUnit, o.Y/pixelsPerUnit
	return minX, minZ, minX + (o.W-1)/pixelsPerUnit, minZ + (o.H-1)/pixelsPerUnit
}
