package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Move is the displacement request handed to the integrator.
type Move struct {
	Horizontal mgl64.Vec3 // intent direction * speed * dt
	Pull       mgl64.Vec3 // ladder alignment, excluded from facing
	Vertical   float64
	OnLadder   bool
}

// Desired is the single displacement vector sent to the resolver.
func (m Move) Desired() mgl64.Vec3 {
	d := m.Horizontal.Add(m.Pull)
	d[1] = m.Vertical
	return d
}

// IntegrateResult is the committed outcome of one move.
type IntegrateResult struct {
	Position     mgl64.Vec3
	Displacement mgl64.Vec3
	Grounded     bool
	Facing       float64
}

// Integrate delegates the move to the resolver and commits the corrected
// displacement, never the desired one.
func Integrate(resolver MovementResolver, collider Collider, pos mgl64.Vec3, facing float64, m Move, s Settings) IntegrateResult {
	var corrected mgl64.Vec3
	var grounded bool
	if resolver != nil {
		corrected, grounded = resolver.ComputeMovement(collider, m.Desired(), true)
	}
	if m.OnLadder {
		grounded = false
	}

	res := IntegrateResult{
		Position:     pos.Add(corrected),
		Displacement: corrected,
		Grounded:     grounded,
		Facing:       facing,
	}
	if collider != nil {
		collider.SetTranslation(res.Position)
	}

	h := m.Horizontal
	if math.Hypot(h.X(), h.Z()) > s.FacingEpsilon {
		res.Facing = math.Atan2(h.X(), h.Z())
	}
	return res
}

// RenderPosition converts a capsule-centre position to the feet-on-ground
// origin used by the visual transform.
func RenderPosition(pos mgl64.Vec3, s Settings) mgl64.Vec3 {
	return pos.Add(mgl64.Vec3{0, s.RenderOffsetY, 0})
}
