// Package physics is a small kinematic collision world for the player
// character. Static geometry lives in a resolv space laid over the XZ plane;
// resolv does the broadphase and this package does exact box tests in 3D.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const skin = 1e-4

var ErrOutOfBounds = errors.New("outside world bounds")

// World implements locomotion.World.
type World struct {
	settings Settings
	space    *resolv.Space
	width    float64
	depth    float64
}

var _ locomotion.World = (*World)(nil)

// NewWorld creates a world covering [0,width] x [0,depth] on the XZ plane.
func NewWorld(width, depth int, s Settings) *World {
	if s.CellSize <= 0 {
		s.CellSize = 1
	}
	return &World{
		settings: s,
		space:    resolv.NewSpace(width*pixelsPerUnit, depth*pixelsPerUnit, s.CellSize*pixelsPerUnit, s.CellSize*pixelsPerUnit),
		width:    float64(width),
		depth:    float64(depth),
	}
}

func (w *World) Settings() Settings { return w.settings }

// SetSettings swaps the resolver tuning. Existing characters keep their box
// size until they are moved.
func (w *World) SetSettings(s Settings) {
	s.CellSize = w.settings.CellSize
	w.settings = s
}

// Space exposes the broadphase for debug drawing.
func (w *World) Space() *resolv.Space { return w.space }

func (w *World) Size() (width, depth float64) { return w.width, w.depth }

// AddSolid adds an axis-aligned box between the two corners.
func (w *World) AddSolid(min, max mgl64.Vec3) *Body {
	b := newBody(kindSolid, min, max, tags.ResolvSolid)
	w.space.Add(b.obj)
	return b
}

// AddRamp adds a wedge filling the box, with its surface climbing from the
// box bottom to the box top in the rise direction.
func (w *World) AddRamp(min, max mgl64.Vec3, rise Rise) *Body {
	b := newBody(kindRamp, min, max, tags.ResolvRamp, rise.tag())
	b.rise = rise
	w.space.Add(b.obj)
	return b
}

// AddLadder adds a ladder sensor column with the given X and Z half extents
// around the zone centre.
func (w *World) AddLadder(zone *locomotion.LadderZone, halfX, halfZ float64) *Body {
	min := mgl64.Vec3{zone.Center.X() - halfX, zone.MinY, zone.Center.Z() - halfZ}
	max := mgl64.Vec3{zone.Center.X() + halfX, zone.MaxY, zone.Center.Z() + halfZ}
	b := newBody(kindSensor, min, max, tags.ResolvSensor, tags.ResolvLadder)
	b.ladder = zone
	w.space.Add(b.obj)
	return b
}

// Bodies lists every static body in the world.
func (w *World) Bodies() []*Body {
	var out []*Body
	for _, o := range w.space.Objects() {
		if b, ok := o.Data.(*Body); ok {
			out = append(out, b)
		}
	}
	return out
}

// CreateCharacter adds a character box centred on position.
func (w *World) CreateCharacter(position mgl64.Vec3) (locomotion.Collider, error) {
	r := w.settings.Radius
	if position.X()-r < 0 || position.X()+r > w.width || position.Z()-r < 0 || position.Z()+r > w.depth {
		return nil, fmt.Errorf("character at %v: %w (%vx%v)", position, ErrOutOfBounds, w.width, w.depth)
	}

	c := &Character{world: w, pos: position}
	c.obj = resolv.NewObject(toSpace(position.X()-r, position.Z()-r, 2*r, 2*r))
	c.obj.AddTags(tags.ResolvCharacter)
	c.obj.Data = c
	w.space.Add(c.obj)
	return c, nil
}

// RemoveCharacter takes a character out of the broadphase.
func (w *World) RemoveCharacter(collider locomotion.Collider) {
	if c, ok := collider.(*Character); ok && c.world == w {
		w.space.Remove(c.obj)
	}
}

// LadderAt returns the ladder zone whose sensor overlaps the character, or nil.
// When several overlap the one with the nearest column wins.
func (w *World) LadderAt(collider locomotion.Collider) *locomotion.LadderZone {
	c, ok := collider.(*Character)
	if !ok {
		return nil
	}
	min, max := c.bounds(c.pos)

	var best *locomotion.LadderZone
	bestDist := math.Inf(1)
	for _, b := range w.candidates(c, 0, 0, tags.ResolvLadder) {
		if b.ladder == nil || !b.overlaps(min, max) {
			continue
		}
		d := math.Hypot(b.ladder.Center.X()-c.pos.X(), b.ladder.Center.Z()-c.pos.Z())
		if d < bestDist {
			best, bestDist = b.ladder, d
		}
	}
	return best
}

// candidates runs the resolv broadphase over the cells the character covers
// now and after moving (dx, dz).
func (w *World) candidates(c *Character, dx, dz float64, tagList ...string) []*Body {
	seen := map[*Body]bool{}
	var out []*Body
	collect := func(check *resolv.Collision) {
		if check == nil {
			return
		}
		for _, o := range check.Objects {
			b, ok := o.Data.(*Body)
			if !ok || seen[b] {
				continue
			}
			seen[b] = true
			out = append(out, b)
		}
	}
	collect(c.obj.Check(0, 0, tagList...))
	if dx != 0 || dz != 0 {
		collect(c.obj.Check(dx*pixelsPerUnit, dz*pixelsPerUnit, tagList...))
	}
	return out
}
