package locomotion

// AnimState is the locomotion animation state.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimRun
	AnimJump
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "Idle"
	case AnimWalk:
		return "Walk"
	case AnimRun:
		return "Run"
	case AnimJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// Clip is an animation clip owned by the animation subsystem. The animator
// only compares clips by identity and passes them to the Blender.
type Clip interface {
	Name() string
}

// Blender performs crossfades on behalf of the animator.
type Blender interface {
	// CrossFade restarts to and fades it in over duration seconds while from
	// fades out. from may be nil. When once is set, to plays a single time and
	// holds its last frame.
	CrossFade(from, to Clip, duration float64, once bool)
}

// ClipSet maps states to their dedicated clip. Missing entries are allowed.
type ClipSet map[AnimState]Clip

// Dedicated returns the clip authored for s, or nil.
func (c ClipSet) Dedicated(s AnimState) Clip {
	return c[s]
}

// Resolve applies the fallback policy: the dedicated clip, else the Idle
// clip, else nil.
func (c ClipSet) Resolve(s AnimState) Clip {
	if clip := c[s]; clip != nil {
		return clip
	}
	return c[AnimIdle]
}

// AnimFrame is what the animation state machine observes each frame.
type AnimFrame struct {
	WasGrounded bool
	Grounded    bool
	Magnitude   float64
	Running     bool
}

// DesiredGroundState picks the grounded locomotion state.
func DesiredGroundState(magnitude float64, running bool, s Settings) AnimState {
	switch {
	case magnitude < s.IdleThreshold:
		return AnimIdle
	case running:
		return AnimRun
	default:
		return AnimWalk
	}
}

// Animator is the locomotion animation state machine.
type Animator struct {
	clips   ClipSet
	blender Blender
	state   AnimState
	active  Clip
}

// NewAnimator starts in Idle, playing whatever clip the fallback policy gives.
func NewAnimator(clips ClipSet, blender Blender) *Animator {
	a := &Animator{clips: clips, blender: blender, state: AnimIdle}
	if a.clips == nil {
		a.clips = ClipSet{}
	}
	a.active = a.clips.Resolve(AnimIdle)
	if a.active != nil && a.blender != nil {
		a.blender.CrossFade(nil, a.active, 0, false)
	}
	return a
}

// State returns the current animation state.
func (a *Animator) State() AnimState {
	return a.state
}

// Active returns the clip currently fading in or playing.
func (a *Animator) Active() Clip {
	return a.active
}

// Transition moves to the given state. It returns false when no clip could be
// resolved, in which case the state and the playing clip are left alone.
func (a *Animator) Transition(to AnimState, fade float64) bool {
	clip := a.clips.Resolve(to)
	if clip == nil {
		return false
	}
	a.state = to
	if clip == a.active {
		return true
	}
	if a.blender != nil {
		a.blender.CrossFade(a.active, clip, fade, to == AnimJump)
	}
	a.active = clip
	return true
}

// Observe applies the grounded-edge and locomotion rules for one frame.
func (a *Animator) Observe(f AnimFrame, s Settings) {
	if f.WasGrounded && !f.Grounded {
		if a.clips.Dedicated(AnimJump) != nil {
			a.Transition(AnimJump, s.JumpFadeTime)
		}
		return
	}

	if !f.WasGrounded && f.Grounded {
		a.Transition(AnimIdle, s.LocomotionFadeTime)
	}

	if !f.Grounded {
		return
	}

	if desired := DesiredGroundState(f.Magnitude, f.Running, s); desired != a.state {
		a.Transition(desired, s.LocomotionFadeTime)
	}
}
