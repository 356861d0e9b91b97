package components

import (
	cfg "github.com/automoto/climber/config"
	"github.com/automoto/climber/locomotion"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// locomotionActions maps controller actions onto bound game actions.
var locomotionActions = map[locomotion.Action]cfg.ActionID{
	locomotion.ActionForward: cfg.ActionForward,
	locomotion.ActionBack:    cfg.ActionBack,
	locomotion.ActionLeft:    cfg.ActionLeft,
	locomotion.ActionRight:   cfg.ActionRight,
	locomotion.ActionRun:     cfg.ActionRun,
	locomotion.ActionJump:    cfg.ActionJump,
}

// Pressed lets the input component serve as the controller's InputSource.
func (d *InputData) Pressed(a locomotion.Action) bool {
	id, ok := locomotionActions[a]
	if !ok {
		return false
	}
	return d.Current[id]
}
