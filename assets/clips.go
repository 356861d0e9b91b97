package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/automoto/climber/assets/animations"
	"github.com/automoto/climber/config"
	"github.com/automoto/climber/locomotion"
)

// ClipLoader builds a character's clips from config.CharacterAnimations. It
// implements locomotion.ClipLoader and is run off the update goroutine by the
// controller.
type ClipLoader struct {
	Character string
	// Delay simulates streaming latency before the clips become available.
	Delay time.Duration
	// Mixer receives the clips. A new one is created when nil.
	Mixer *animations.Mixer
}

var _ locomotion.ClipLoader = (*ClipLoader)(nil)

func NewClipLoader(character string) *ClipLoader {
	return &ClipLoader{Character: character}
}

// Load returns the clip set and the Mixer that will blend it.
func (l *ClipLoader) Load(ctx context.Context) (locomotion.ClipSet, locomotion.Blender, error) {
	if l.Delay > 0 {
		timer := time.NewTimer(l.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	defs, ok := config.CharacterAnimations[l.Character]
	if !ok {
		return nil, nil, fmt.Errorf("no animations for character %q", l.Character)
	}

	clips := make(locomotion.ClipSet, len(defs))
	for state, def := range defs {
		clips[state] = animations.NewAnimation(
			fmt.Sprintf("%s/%s", l.Character, state), def.First, def.Last, def.Step, def.Speed)
	}
	mixer := l.Mixer
	if mixer == nil {
		mixer = animations.NewMixer()
	}
	return clips, mixer, nil
}
