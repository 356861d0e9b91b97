package locomotion

// VerticalInput is what the gravity step reads from the previous frame.
type VerticalInput struct {
	Velocity float64
	Grounded bool
	Jump     bool
}

// VerticalResult carries the new velocity and this frame's vertical displacement.
type VerticalResult struct {
	Velocity     float64
	Displacement float64
	Jumped       bool
}

// StepVertical integrates gravity and jumps for a character that is not on a
// ladder. A jump frame skips gravity so the velocity leaves the ground at
// exactly JumpSpeed.
func StepVertical(in VerticalInput, dt float64, s Settings) VerticalResult {
	res := VerticalResult{Velocity: in.Velocity}

	if in.Grounded && in.Jump {
		res.Velocity = s.JumpSpeed
		res.Jumped = true
	} else {
		res.Velocity += s.Gravity * dt
	}

	if in.Grounded && res.Velocity < 0 {
		res.Velocity = 0
	}

	// Keep pressing into the ground so ramps don't turn into a series of hops.
	if in.Grounded && !res.Jumped {
		res.Displacement = -s.GroundStick * dt
	} else {
		res.Displacement = res.Velocity * dt
	}
	return res
}
