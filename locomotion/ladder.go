package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LadderZone describes a climbable column. Only X and Z of Center are used.
type LadderZone struct {
	Center mgl64.Vec3
	MinY   float64
	MaxY   float64
}

// LadderState is the attachment mode.
type LadderState int

const (
	Detached LadderState = iota
	Attached
	CooldownAfterDetach
)

func (s LadderState) String() string {
	switch s {
	case Detached:
		return "Detached"
	case Attached:
		return "Attached"
	case CooldownAfterDetach:
		return "Cooldown"
	default:
		return "Unknown"
	}
}

// LadderAttachment is the ladder sub-mode. All transitions are value methods
// returning the next attachment, so callers decide when to commit.
type LadderAttachment struct {
	State    LadderState
	Cooldown float64 // seconds, never negative
	Zone     *LadderZone
}

// Active reports whether ladder climbing overrides vertical kinematics.
func (l LadderAttachment) Active() bool {
	return l.State == Attached && l.Zone != nil
}

// Attach handles the "ladder zone became active" notification. It is refused
// while a cooldown is pending or when the character is already above the exit.
func (l LadderAttachment) Attach(zone *LadderZone, posY float64, s Settings) LadderAttachment {
	if zone == nil {
		return l.Release()
	}
	switch l.State {
	case Attached:
		l.Zone = zone
		return l
	case CooldownAfterDetach:
		return l
	}
	if l.Cooldown > 0 || posY > zone.MaxY+s.LadderTopMargin {
		return l
	}
	return LadderAttachment{State: Attached, Zone: zone}
}

// Release handles the notification clearing. A pending cooldown is kept.
func (l LadderAttachment) Release() LadderAttachment {
	if l.State != Attached {
		return l
	}
	return LadderAttachment{State: Detached}
}

// JumpOff detaches and starts the re-attach cooldown.
func (l LadderAttachment) JumpOff(s Settings) LadderAttachment {
	if l.State != Attached {
		return l
	}
	return LadderAttachment{State: CooldownAfterDetach, Cooldown: s.LadderDetachCooldown}
}

// ClimbedPastTop detaches without cooldown once an upward climb clears the top.
func (l LadderAttachment) ClimbedPastTop(posY, climb float64, s Settings) (LadderAttachment, bool) {
	if !l.Active() || climb <= 0 || posY <= l.Zone.MaxY+s.LadderTopMargin {
		return l, false
	}
	return LadderAttachment{State: Detached}, true
}

// Tick counts the cooldown down and leaves CooldownAfterDetach at zero.
func (l LadderAttachment) Tick(dt float64) LadderAttachment {
	l.Cooldown = math.Max(0, l.Cooldown-dt)
	if l.Cooldown <= cooldownEpsilon {
		l.Cooldown = 0
	}
	if l.Cooldown == 0 && l.State == CooldownAfterDetach {
		l.State = Detached
	}
	return l
}

// ladderPullShare bounds the pull speed as a share of LadderMaxHorizontalSpeed.
const ladderPullShare = 0.9

// cooldownEpsilon absorbs the rounding left after ticking a window away in
// fixed steps.
const cooldownEpsilon = 1e-9

// ClimbResult is the frame-local override produced while attached.
type ClimbResult struct {
	Velocity     float64    // vertical
	SpeedCap     float64    // horizontal speed ceiling
	Pull         mgl64.Vec3 // horizontal displacement toward the ladder column
	Displacement float64    // vertical displacement for this frame
}

// ClimbStep computes the climb or slide motion for an attached character.
func ClimbStep(zone LadderZone, pos mgl64.Vec3, climb, dt float64, s Settings) ClimbResult {
	vy := s.LadderSlideSpeed
	if climb != 0 {
		vy = climb * s.LadderClimbSpeed
	}
	vy = mgl64.Clamp(vy, -s.LadderMaxVerticalSpeed, s.LadderMaxVerticalSpeed)

	offset := mgl64.Vec3{zone.Center.X() - pos.X(), 0, zone.Center.Z() - pos.Z()}
	if d := offset.Len(); d > s.LadderPullDistanceCap {
		offset = offset.Mul(s.LadderPullDistanceCap / d)
	}

	// The pull stays below the capped walking speed so a player can always
	// steer out of the zone.
	pull := offset.Mul(s.LadderPullRate)
	if maxPull := s.LadderMaxHorizontalSpeed * ladderPullShare; pull.Len() > maxPull {
		pull = pull.Mul(maxPull / pull.Len())
	}

	return ClimbResult{
		Velocity:     vy,
		SpeedCap:     s.LadderMaxHorizontalSpeed,
		Pull:         pull.Mul(dt),
		Displacement: vy * dt,
	}
}
