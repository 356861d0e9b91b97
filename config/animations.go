package config

import "github.com/automoto/climber/locomotion"

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions. A state left out of a
// character's map falls back to that character's Idle clip.
var CharacterAnimations = map[string]map[locomotion.AnimState]AnimationDef{
	"player": {
		locomotion.AnimIdle: {First: 0, Last: 6, Step: 1, Speed: 5},
		locomotion.AnimWalk: {First: 0, Last: 7, Step: 1, Speed: 5},
		locomotion.AnimRun:  {First: 0, Last: 7, Step: 1, Speed: 3},
		locomotion.AnimJump: {First: 0, Last: 2, Step: 1, Speed: 10},
	},
	// Placeholder rig with only an idle loop
	"mannequin": {
		locomotion.AnimIdle: {First: 0, Last: 3, Step: 1, Speed: 8},
	},
}
