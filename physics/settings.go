package physics

// Settings tunes the character movement resolver. Distances are in world units,
// angles in degrees.
type Settings struct {
	Radius     float64 // horizontal half extent of the character box
	HalfHeight float64 // centre to feet

	StepHeight    float64
	SnapDistance  float64
	MaxSlopeAngle float64 // ramps steeper than this only block
	MinSlideAngle float64 // walkable ramps steeper than this slide downhill
	SlideDistance float64 // downhill slide per resolved move

	CellSize int // resolv broadphase cell size
}

func DefaultSettings() Settings {
	return Settings{
		Radius:        0.35,
		HalfHeight:    0.8,
		StepHeight:    0.3,
		SnapDistance:  0.2,
		MaxSlopeAngle: 70,
		MinSlideAngle: 45,
		SlideDistance: 0.05,
		CellSize:      1,
	}
}
