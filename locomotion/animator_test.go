package locomotion

import "testing"

func TestNewAnimatorStartsIdle(t *testing.T) {
	clips := fullClipSet()
	b := &recordingBlender{}
	a := NewAnimator(clips, b)

	if a.State() != AnimIdle {
		t.Errorf("state = %v, want Idle", a.State())
	}
	if a.Active() != clips[AnimIdle] {
		t.Errorf("active = %v, want idle clip", a.Active())
	}
	if len(b.fades) != 1 || b.fades[0].from != nil || b.fades[0].duration != 0 {
		t.Errorf("initial fades = %+v, want a single instant fade-in", b.fades)
	}
}

func TestClipSetResolve(t *testing.T) {
	idle := &testClip{"idle"}
	walk := &testClip{"walk"}

	tests := []struct {
		name  string
		clips ClipSet
		state AnimState
		want  Clip
	}{
		{"dedicated", ClipSet{AnimIdle: idle, AnimWalk: walk}, AnimWalk, walk},
		{"fallback to idle", ClipSet{AnimIdle: idle}, AnimRun, idle},
		{"nothing", ClipSet{AnimWalk: walk}, AnimRun, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.clips.Resolve(tt.state); got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestAnimatorGroundedTransitions(t *testing.T) {
	s := DefaultSettings()

	tests := []struct {
		name      string
		magnitude float64
		running   bool
		want      AnimState
	}{
		{"idle", 0, false, AnimIdle},
		{"below threshold", 0.04, true, AnimIdle},
		{"walk", 1, false, AnimWalk},
		{"run", 1, true, AnimRun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimator(fullClipSet(), &recordingBlender{})
			a.Observe(AnimFrame{WasGrounded: true, Grounded: true, Magnitude: tt.magnitude, Running: tt.running}, s)
			if a.State() != tt.want {
				t.Errorf("state = %v, want %v", a.State(), tt.want)
			}
		})
	}
}

func TestAnimatorSameStateDoesNotRestart(t *testing.T) {
	s := DefaultSettings()
	b := &recordingBlender{}
	a := NewAnimator(fullClipSet(), b)
	frame := AnimFrame{WasGrounded: true, Grounded: true}

	a.Observe(frame, s)
	active := a.Active()
	fades := len(b.fades)
	a.Observe(frame, s)

	if a.Active() != active {
		t.Error("active clip changed on a repeated idle frame")
	}
	if len(b.fades) != fades {
		t.Errorf("repeated idle frame issued %d extra crossfades", len(b.fades)-fades)
	}

	walk := AnimFrame{WasGrounded: true, Grounded: true, Magnitude: 1}
	a.Observe(walk, s)
	a.Observe(walk, s)
	if got := len(b.fades) - fades; got != 1 {
		t.Errorf("two walk frames issued %d crossfades, want 1", got)
	}
}

func TestAnimatorAirborneEdge(t *testing.T) {
	s := DefaultSettings()

	t.Run("with jump clip", func(t *testing.T) {
		clips := fullClipSet()
		b := &recordingBlender{}
		a := NewAnimator(clips, b)
		a.Observe(AnimFrame{WasGrounded: true, Grounded: false, Magnitude: 1}, s)

		if a.State() != AnimJump {
			t.Fatalf("state = %v, want Jump", a.State())
		}
		last := b.fades[len(b.fades)-1]
		if last.to != clips[AnimJump] || !last.once {
			t.Errorf("jump fade = %+v, want once-only jump clip", last)
		}
		approxEqual(t, last.duration, s.JumpFadeTime, eps, "fade")
	})

	t.Run("without jump clip", func(t *testing.T) {
		clips := fullClipSet()
		delete(clips, AnimJump)
		a := NewAnimator(clips, &recordingBlender{})
		a.Observe(AnimFrame{WasGrounded: true, Grounded: true, Magnitude: 1}, s)
		a.Observe(AnimFrame{WasGrounded: true, Grounded: false, Magnitude: 1}, s)
		if a.State() != AnimWalk {
			t.Errorf("state = %v, want Walk kept", a.State())
		}
	})

	t.Run("airborne frames hold state", func(t *testing.T) {
		a := NewAnimator(fullClipSet(), &recordingBlender{})
		a.Observe(AnimFrame{WasGrounded: true, Grounded: false}, s)
		a.Observe(AnimFrame{WasGrounded: false, Grounded: false, Magnitude: 1, Running: true}, s)
		if a.State() != AnimJump {
			t.Errorf("state = %v, want Jump while airborne", a.State())
		}
	})
}

func TestAnimatorLanding(t *testing.T) {
	s := DefaultSettings()
	clips := fullClipSet()
	b := &recordingBlender{}
	a := NewAnimator(clips, b)
	a.Observe(AnimFrame{WasGrounded: true, Grounded: false}, s)

	a.Observe(AnimFrame{WasGrounded: false, Grounded: true}, s)
	if a.State() != AnimIdle || a.Active() != clips[AnimIdle] {
		t.Errorf("landing idle: state %v clip %v", a.State(), a.Active())
	}

	a.Observe(AnimFrame{WasGrounded: true, Grounded: true, Magnitude: 1, Running: true}, s)
	if a.State() != AnimRun {
		t.Errorf("state = %v, want Run", a.State())
	}
}

func TestAnimatorMissingClips(t *testing.T) {
	s := DefaultSettings()

	t.Run("fallback shares the idle clip", func(t *testing.T) {
		idle := &testClip{"idle"}
		b := &recordingBlender{}
		a := NewAnimator(ClipSet{AnimIdle: idle}, b)
		a.Observe(AnimFrame{WasGrounded: true, Grounded: true, Magnitude: 1}, s)

		if a.State() != AnimWalk {
			t.Errorf("state = %v, want Walk", a.State())
		}
		if a.Active() != idle || len(b.fades) != 1 {
			t.Errorf("fallback restarted the idle clip: %d fades", len(b.fades))
		}
	})

	t.Run("unresolvable transition is a no-op", func(t *testing.T) {
		walk := &testClip{"walk"}
		a := NewAnimator(ClipSet{AnimWalk: walk}, &recordingBlender{})
		a.Observe(AnimFrame{WasGrounded: true, Grounded: true, Magnitude: 1}, s)
		a.Observe(AnimFrame{WasGrounded: true, Grounded: true, Magnitude: 1, Running: true}, s)

		if a.State() != AnimWalk || a.Active() != walk {
			t.Errorf("state %v clip %v, want Walk kept", a.State(), a.Active())
		}
	})
}
