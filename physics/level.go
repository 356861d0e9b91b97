package physics

import (
	"fmt"
	"math"

	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

// FromLevel builds a collision world holding every solid, ramp and ladder of
// level.
func FromLevel(level *leveldata.Level, s Settings) (*World, error) {
	if level == nil {
		return nil, fmt.Errorf("build world: nil level")
	}
	w := NewWorld(int(math.Ceil(level.Width)), int(math.Ceil(level.Depth)), s)

	for _, b := range level.Solids {
		w.AddSolid(boxMin(b), boxMax(b))
	}
	for i, r := range level.Ramps {
		rise, err := ParseRise(r.Rise)
		if err != nil {
			return nil, fmt.Errorf("build world %s: ramp %d: %w", level.Name, i, err)
		}
		w.AddRamp(boxMin(r.Box), boxMax(r.Box), rise)
	}
	for _, l := range level.Ladders {
		zone := &locomotion.LadderZone{
			Center: mgl64.Vec3{l.X, l.MinY, l.Z},
			MinY:   l.MinY,
			MaxY:   l.MaxY,
		}
		w.AddLadder(zone, l.HalfX, l.HalfZ)
	}
	return w, nil
}

func boxMin(b leveldata.Box) mgl64.Vec3 { return mgl64.Vec3{b.MinX, b.MinY, b.MinZ} }

func boxMax(b leveldata.Box) mgl64.Vec3 { return mgl64.Vec3{b.MaxX, b.MaxY, b.MaxZ} }
