// Package leveldata provides TMX level parsing for the collision world.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
//
// Levels are drawn top-down in Tiled: the map X axis is world X and the map Y
// axis is world Z. Heights come from object properties.
package leveldata

// Level holds everything the collision world needs from a TMX file, already
// converted to world units.
type Level struct {
	Name    string
	Width   float64 // world X extent
	Depth   float64 // world Z extent
	Solids  []Box
	Ramps   []Ramp
	Ladders []Ladder
	Spawns  []SpawnPoint
}

// Box is an axis-aligned solid volume.
type Box struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Ramp is a wedge inside Box rising toward Rise.
type Ramp struct {
	Box
	Rise string // "east", "west", "south", "north"
}

// Ladder is a climbable column centred on (X, Z). The sensor keeps the drawn
// footprint, so thin ladders stay thin.
type Ladder struct {
	X, Z         float64
	HalfX, HalfZ float64
	MinY         float64
	MaxY         float64
}

// SpawnPoint is a player spawn location.
type SpawnPoint struct {
	X, Y, Z float64
	Index   int
}
