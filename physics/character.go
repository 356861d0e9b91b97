package physics

import (
	"math"

	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Character is the kinematic box handed to the locomotion controller.
type Character struct {
	world    *World
	obj      *resolv.Object
	pos      mgl64.Vec3
	resolved mgl64.Vec3 // where the last ComputeMovement ended
	grounded bool
	ground   *Body
}

// SetTranslation moves the box without collision checks. Anything other than
// committing the last resolved move is a teleport and drops the ground contact.
func (c *Character) SetTranslation(p mgl64.Vec3) {
	if p.Sub(c.resolved).Len() > skin {
		c.grounded = false
		c.ground = nil
	}
	c.pos = p
	r := c.world.settings.Radius
	c.obj.X, c.obj.Y, c.obj.W, c.obj.H = toSpace(p.X()-r, p.Z()-r, 2*r, 2*r)
	c.obj.Update()
}

func (c *Character) Position() mgl64.Vec3 { return c.pos }

// Ground is the body the last resolved move ended on, or nil.
func (c *Character) Ground() *Body { return c.ground }

// Object is the resolv broadphase object for debug drawing.
func (c *Character) Object() *resolv.Object { return c.obj }

func (c *Character) bounds(p mgl64.Vec3) (min, max mgl64.Vec3) {
	s := c.world.settings
	ext := mgl64.Vec3{s.Radius, s.HalfHeight, s.Radius}
	return p.Sub(ext), p.Add(ext)
}

const angleEps = 1e-6

// ComputeMovement resolves desired against the static geometry: a vertical
// sweep for ground and ceiling, the X and Z axes with step-up, then ground
// snapping and ramp sliding. The character itself is not moved.
func (w *World) ComputeMovement(collider locomotion.Collider, desired mgl64.Vec3, excludeSensors bool) (mgl64.Vec3, bool) {
	c, ok := collider.(*Character)
	if !ok || c.world != w {
		return mgl64.Vec3{}, false
	}

	tagList := []string{tags.ResolvSolid, tags.ResolvRamp}
	if !excludeSensors {
		tagList = append(tagList, tags.ResolvSensor)
	}
	// Widen the broadphase for step-up and slides.
	reach := w.settings.SlideDistance + skin
	dx := desired.X() + math.Copysign(reach, desired.X())
	dz := desired.Z() + math.Copysign(reach, desired.Z())
	bodies := w.candidates(c, dx, dz, tagList...)

	start := c.pos
	pos, landed := w.sweepVertical(c, start, desired.Y(), bodies)
	canStep := landed || c.grounded

	pos = w.moveAxis(c, pos, 0, desired.X(), bodies, canStep)
	pos = w.moveAxis(c, pos, 2, desired.Z(), bodies, canStep)

	ground := w.support(c, pos, bodies, skin)
	if ground == nil && desired.Y() <= 0 && canStep {
		if snapped, b := w.snap(c, pos, bodies, w.settings.SnapDistance); b != nil {
			pos, ground = snapped, b
		}
	}

	if ground != nil && ground.IsRamp() && ground.Angle() > w.settings.MinSlideAngle+angleEps {
		pos, ground = w.slide(c, pos, ground, bodies)
	}

	c.grounded = ground != nil
	c.ground = ground
	c.resolved = pos
	return pos.Sub(start), c.grounded
}

// sweepVertical moves along Y, stopping on the highest floor below or the
// lowest ceiling above.
func (w *World) sweepVertical(c *Character, pos mgl64.Vec3, dy float64, bodies []*Body) (mgl64.Vec3, bool) {
	hh := w.settings.HalfHeight
	min, max := c.bounds(pos)

	if dy <= 0 {
		feet := pos.Y() - hh
		target := feet + dy
		best := math.Inf(-1)
		for _, b := range bodies {
			if !b.overlapsXZ(min, max) {
				continue
			}
			top := b.Top(pos.X(), pos.Z())
			if top <= feet+skin && top >= target-skin && top > best {
				best = top
			}
		}
		if math.IsInf(best, -1) {
			pos[1] += dy
			return pos, false
		}
		pos[1] = best + hh
		return pos, true
	}

	head := pos.Y() + hh
	target := head + dy
	lowest := math.Inf(1)
	for _, b := range bodies {
		if !b.overlapsXZ(min, max) {
			continue
		}
		if bottom := b.Min.Y(); bottom >= head-skin && bottom <= target && bottom < lowest {
			lowest = bottom
		}
	}
	if math.IsInf(lowest, 1) {
		pos[1] += dy
	} else {
		pos[1] = lowest - hh
	}
	return pos, false
}

// moveAxis moves along one horizontal axis, stepping up onto low obstacles
// and otherwise stopping at the first face hit.
func (w *World) moveAxis(c *Character, pos mgl64.Vec3, axis int, d float64, bodies []*Body, canStep bool) mgl64.Vec3 {
	if d == 0 {
		return pos
	}
	s := w.settings
	limit := w.width
	if axis == 2 {
		limit = w.depth
	}

	next := pos
	next[axis] = mgl64.Clamp(next[axis]+d, s.Radius, limit-s.Radius)
	blockers := w.blocking(c, next, bodies)
	if len(blockers) == 0 {
		return next
	}

	if canStep {
		feet := next.Y() - s.HalfHeight
		lift := 0.0
		stepable := true
		for _, b := range blockers {
			if b.IsRamp() && b.Angle() > s.MaxSlopeAngle {
				stepable = false
				break
			}
			need := b.Top(next.X(), next.Z()) - feet
			if need > s.StepHeight+skin {
				stepable = false
				break
			}
			lift = math.Max(lift, need)
		}
		if stepable {
			up := next
			up[1] += lift
			if len(w.blocking(c, up, bodies)) == 0 {
				return up
			}
		}
	}

	// Stop at the nearest face. Ramps and boxes we already overlap hold the axis.
	stop := next[axis]
	cmin, cmax := c.bounds(pos)
	for _, b := range blockers {
		if b.IsRamp() || b.overlaps(cmin, cmax) {
			return pos
		}
		if d > 0 {
			stop = math.Min(stop, b.Min[axis]-s.Radius)
		} else {
			stop = math.Max(stop, b.Max[axis]+s.Radius)
		}
	}
	if (d > 0 && stop < pos[axis]) || (d < 0 && stop > pos[axis]) {
		return pos
	}
	pos[axis] = stop
	return pos
}

func (w *World) blocking(c *Character, pos mgl64.Vec3, bodies []*Body) []*Body {
	min, max := c.bounds(pos)
	var out []*Body
	for _, b := range bodies {
		if b.overlaps(min, max) {
			out = append(out, b)
		}
	}
	return out
}

// support returns the highest body whose top lies within tol of the feet.
func (w *World) support(c *Character, pos mgl64.Vec3, bodies []*Body, tol float64) *Body {
	feet := pos.Y() - w.settings.HalfHeight
	min, max := c.bounds(pos)
	var best *Body
	bestTop := math.Inf(-1)
	for _, b := range bodies {
		if !b.overlapsXZ(min, max) {
			continue
		}
		top := b.Top(pos.X(), pos.Z())
		if math.Abs(top-feet) <= tol && top > bestTop {
			best, bestTop = b, top
		}
	}
	return best
}

// snap pulls the character down onto a surface at most dist below the feet.
func (w *World) snap(c *Character, pos mgl64.Vec3, bodies []*Body, dist float64) (mgl64.Vec3, *Body) {
	hh := w.settings.HalfHeight
	feet := pos.Y() - hh
	min, max := c.bounds(pos)
	var best *Body
	bestTop := math.Inf(-1)
	for _, b := range bodies {
		if !b.overlapsXZ(min, max) {
			continue
		}
		top := b.Top(pos.X(), pos.Z())
		if top <= feet+skin && top >= feet-dist && top > bestTop {
			best, bestTop = b, top
		}
	}
	if best == nil {
		return pos, nil
	}
	pos[1] = bestTop + hh
	return pos, best
}

// slide moves a character standing on a steep ramp downhill and keeps it on
// the surface.
func (w *World) slide(c *Character, pos mgl64.Vec3, ramp *Body, bodies []*Body) (mgl64.Vec3, *Body) {
	s := w.settings
	axis := ramp.rise.axis()
	moved := w.moveAxis(c, pos, axis, ramp.rise.downhill()*s.SlideDistance, bodies, false)

	drop := s.SlideDistance*math.Tan(ramp.Angle()*math.Pi/180) + s.SnapDistance
	if snapped, b := w.snap(c, moved, bodies, drop); b != nil {
		return snapped, b
	}
	return moved, nil
}
