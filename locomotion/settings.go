package locomotion

// Settings holds every tunable the controller reads during Update.
// Speeds are in units per second, accelerations in units per second squared.
type Settings struct {
	// Ground movement
	WalkSpeed   float64
	RunSpeed    float64
	JumpSpeed   float64
	Gravity     float64 // negative, applied every airborne frame
	GroundStick float64 // downward speed used instead of gravity while grounded

	// Ladder
	LadderClimbSpeed         float64
	LadderSlideSpeed         float64 // negative, used when there is no climb input
	LadderMaxVerticalSpeed   float64
	LadderMaxHorizontalSpeed float64
	LadderPullDistanceCap    float64
	LadderPullRate           float64 // fraction of the capped offset closed per second; never outpaces LadderMaxHorizontalSpeed
	LadderTopMargin          float64
	LadderDetachCooldown     float64 // seconds

	// Rendering
	RenderOffsetY float64
	FacingEpsilon float64

	// Animation
	IdleThreshold      float64
	JumpFadeTime       float64
	LocomotionFadeTime float64
}

// DefaultSettings returns the reference tuning.
func DefaultSettings() Settings {
	return Settings{
		WalkSpeed:   6.0,
		RunSpeed:    10.0,
		JumpSpeed:   10.0,
		Gravity:     -22.0,
		GroundStick: 0.25,

		LadderClimbSpeed:         4.6,
		LadderSlideSpeed:         -1.2,
		LadderMaxVerticalSpeed:   6.5,
		LadderMaxHorizontalSpeed: 2.8,
		LadderPullDistanceCap:    0.8,
		LadderPullRate:           3.0,
		LadderTopMargin:          0.35,
		LadderDetachCooldown:     0.25,

		RenderOffsetY: -0.8,
		FacingEpsilon: 1e-4,

		IdleThreshold:      0.05,
		JumpFadeTime:       0.08,
		LocomotionFadeTime: 0.12,
	}
}
