package locomotion

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"
)

// Collider is the kinematic body handle owned by the physics world.
type Collider interface {
	// SetTranslation moves the body to p without any collision checks.
	SetTranslation(p mgl64.Vec3)
}

// MovementResolver adjusts a desired displacement against world geometry.
// Implementations must always return a defined displacement; a resolver that
// cannot move the body returns the zero vector.
type MovementResolver interface {
	ComputeMovement(collider Collider, desired mgl64.Vec3, excludeSensors bool) (corrected mgl64.Vec3, grounded bool)
}

// World is the subset of a physics world the controller needs to spawn.
type World interface {
	MovementResolver
	CreateCharacter(position mgl64.Vec3) (Collider, error)
}

// Action is a logical input the controller queries every frame.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionRun
	ActionJump
)

// InputSource reports whether an action is currently held.
type InputSource interface {
	Pressed(a Action) bool
}

// ClipLoader produces the animation clips for a character. Load runs off the
// update goroutine and may take arbitrarily long.
type ClipLoader interface {
	Load(ctx context.Context) (ClipSet, Blender, error)
}

// Actions is the instantaneous input snapshot for one frame.
type Actions struct {
	Forward, Back, Left, Right bool
	Run                        bool
	Jump                       bool
}

// ReadActions samples every action the controller uses from src.
func ReadActions(src InputSource) Actions {
	if src == nil {
		return Actions{}
	}
	return Actions{
		Forward: src.Pressed(ActionForward),
		Back:    src.Pressed(ActionBack),
		Left:    src.Pressed(ActionLeft),
		Right:   src.Pressed(ActionRight),
		Run:     src.Pressed(ActionRun),
		Jump:    src.Pressed(ActionJump),
	}
}

// ClimbAxis is +1 for forward, -1 for back and 0 when neither or both are held.
func (a Actions) ClimbAxis() float64 {
	var axis float64
	if a.Forward {
		axis++
	}
	if a.Back {
		axis--
	}
	return axis
}
