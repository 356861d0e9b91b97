// Package locomotion is the per-frame player movement core: input intent,
// gravity and jumps, the ladder sub-mode, collision-aware integration and the
// locomotion animation state machine.
//
// A Controller is driven from a single goroutine. Update never blocks.
package locomotion

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// KinematicState is the physics-side state of the character.
type KinematicState struct {
	Position         mgl64.Vec3 // capsule centre
	VerticalVelocity float64
	Grounded         bool
	WasGrounded      bool
	Facing           float64 // yaw in radians
}

type clipLoad struct {
	clips   ClipSet
	blender Blender
	err     error
}

// Controller owns the kinematic body of one player character.
type Controller struct {
	settings Settings
	resolver MovementResolver
	collider Collider
	input    InputSource

	state    KinematicState
	ladder   LadderAttachment
	animator *Animator
	pending  chan clipLoad

	lastIntent       Intent
	lastDisplacement mgl64.Vec3
}

// Spawn creates the character body at position and starts loading its
// animation clips in the background. A loader failure only disables
// animation; it never fails the spawn.
func Spawn(ctx context.Context, world World, position mgl64.Vec3, settings Settings, input InputSource, loader ClipLoader) (*Controller, error) {
	if world == nil {
		return nil, fmt.Errorf("spawn character: nil world")
	}
	collider, err := world.CreateCharacter(position)
	if err != nil {
		return nil, fmt.Errorf("spawn character at %v: %w", position, err)
	}

	c := &Controller{
		settings: settings,
		resolver: world,
		collider: collider,
		input:    input,
		state:    KinematicState{Position: position},
	}

	if loader != nil {
		pending := make(chan clipLoad, 1)
		c.pending = pending
		go func() {
			clips, blender, err := loader.Load(ctx)
			pending <- clipLoad{clips: clips, blender: blender, err: err}
		}()
	}
	return c, nil
}

// Update advances the character by one frame.
func (c *Controller) Update(dt, cameraYaw float64) {
	if dt < 0 {
		dt = 0
	}
	c.pollAnimation()

	s := c.settings
	actions := ReadActions(c.input)
	intent := ResolveIntent(actions, cameraYaw)
	c.lastIntent = intent

	speed := s.WalkSpeed
	if intent.Running {
		speed = s.RunSpeed
	}

	c.ladder = c.ladder.Tick(dt)
	wasGrounded := c.state.Grounded

	move := Move{}
	overridden := false
	if c.ladder.Active() {
		climb := actions.ClimbAxis()
		if next, ok := c.ladder.ClimbedPastTop(c.state.Position.Y(), climb, s); ok {
			c.ladder = next
		} else if actions.Jump {
			c.ladder = c.ladder.JumpOff(s)
			c.state.VerticalVelocity = s.JumpSpeed
			move.Vertical = s.JumpSpeed * dt
			overridden = true
		} else {
			res := ClimbStep(*c.ladder.Zone, c.state.Position, climb, dt, s)
			c.state.VerticalVelocity = res.Velocity
			c.state.Grounded = false
			speed = math.Min(speed, res.SpeedCap)
			move.Pull = res.Pull
			move.Vertical = res.Displacement
			move.OnLadder = true
			overridden = true
		}
	}

	if !overridden {
		res := StepVertical(VerticalInput{
			Velocity: c.state.VerticalVelocity,
			Grounded: c.state.Grounded,
			Jump:     actions.Jump,
		}, dt, s)
		c.state.VerticalVelocity = res.Velocity
		move.Vertical = res.Displacement
	}

	move.Horizontal = intent.Direction.Mul(speed * dt)

	out := Integrate(c.resolver, c.collider, c.state.Position, c.state.Facing, move, s)
	c.state.WasGrounded = wasGrounded
	c.state.Position = out.Position
	c.state.Grounded = out.Grounded
	c.state.Facing = out.Facing
	c.lastDisplacement = out.Displacement

	if c.animator != nil {
		c.animator.Observe(AnimFrame{
			WasGrounded: c.state.WasGrounded,
			Grounded:    c.state.Grounded,
			Magnitude:   intent.Magnitude(),
			Running:     intent.Running,
		}, s)
	}
}

func (c *Controller) pollAnimation() {
	if c.pending == nil {
		return
	}
	select {
	case res := <-c.pending:
		c.pending = nil
		if res.err != nil {
			log.Printf("Warning: animation unavailable, continuing without it: %v", res.err)
			return
		}
		c.AttachAnimation(res.clips, res.blender)
	default:
	}
}

// AttachAnimation installs the clips. Passing an empty set keeps animation
// selection a no-op.
func (c *Controller) AttachAnimation(clips ClipSet, blender Blender) {
	if len(clips) == 0 {
		return
	}
	c.animator = NewAnimator(clips, blender)
}

// SetPosition teleports the character. Vertical velocity is zeroed and the
// ladder attachment is left as is.
func (c *Controller) SetPosition(p mgl64.Vec3) {
	c.state.Position = p
	c.state.VerticalVelocity = 0
	c.state.Grounded = false
	c.state.WasGrounded = false
	if c.collider != nil {
		c.collider.SetTranslation(p)
	}
}

// SetLadder delivers the per-frame active ladder notification. nil means the
// character is not inside any ladder zone.
func (c *Controller) SetLadder(zone *LadderZone) {
	if zone == nil {
		c.ladder = c.ladder.Release()
		return
	}
	c.ladder = c.ladder.Attach(zone, c.state.Position.Y(), c.settings)
}

// SetSettings replaces the tuning used from the next Update on.
func (c *Controller) SetSettings(s Settings) {
	c.settings = s
}

// Settings returns the tuning in use.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Collider returns the body handle created at spawn.
func (c *Controller) Collider() Collider {
	return c.collider
}

// Position is the capsule-centre position in world space.
func (c *Controller) Position() mgl64.Vec3 {
	return c.state.Position
}

// Grounded reports whether the last move ended resting on a surface.
func (c *Controller) Grounded() bool {
	return c.state.Grounded
}

// VerticalVelocity is the current vertical speed in units per second.
func (c *Controller) VerticalVelocity() float64 {
	return c.state.VerticalVelocity
}

// Facing is the yaw the character last moved toward.
func (c *Controller) Facing() float64 {
	return c.state.Facing
}

// State returns a copy of the kinematic state.
func (c *Controller) State() KinematicState {
	return c.state
}

// Ladder returns the current ladder attachment.
func (c *Controller) Ladder() LadderAttachment {
	return c.ladder
}

// LastIntent is the intent resolved by the most recent Update.
func (c *Controller) LastIntent() Intent {
	return c.lastIntent
}

// LastDisplacement is the corrected displacement applied by the most recent Update.
func (c *Controller) LastDisplacement() mgl64.Vec3 {
	return c.lastDisplacement
}

// HasAnimation reports whether the clips have finished loading.
func (c *Controller) HasAnimation() bool {
	return c.animator != nil
}

// RenderPosition is the feet-on-ground origin for the visual transform.
func (c *Controller) RenderPosition() mgl64.Vec3 {
	return RenderPosition(c.state.Position, c.settings)
}

// AnimState returns the animation state, or AnimIdle while clips are not loaded.
func (c *Controller) AnimState() AnimState {
	if c.animator == nil {
		return AnimIdle
	}
	return c.animator.State()
}

// ActiveClip returns the playing clip, or nil while clips are not loaded.
func (c *Controller) ActiveClip() Clip {
	if c.animator == nil {
		return nil
	}
	return c.animator.Active()
}
