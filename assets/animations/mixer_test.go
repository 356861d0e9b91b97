package animations

import (
	"math"
	"testing"
)

type otherClip struct{}

func (otherClip) Name() string { return "other" }

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", field, got, want, tol)
	}
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation("walk", 0, 2, 1, 1)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	if a.Frame() != 2 || a.Looped {
		t.Fatalf("after 5 ticks: frame %d looped %v, want 2 and not looped", a.Frame(), a.Looped)
	}
	a.Update()
	if a.Frame() != 0 || !a.Looped {
		t.Errorf("after 6 ticks: frame %d looped %v, want 0 and looped", a.Frame(), a.Looped)
	}
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation("jump", 0, 2, 1, 1)
	a.FreezeOnComplete = true
	for i := 0; i < 20; i++ {
		a.Update()
	}
	if a.Frame() != 2 || !a.Looped {
		t.Errorf("frame %d looped %v, want frozen on 2", a.Frame(), a.Looped)
	}
	approxEqual(t, a.Progress(), 1, 1e-12, "progress")

	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Errorf("restart: frame %d looped %v", a.Frame(), a.Looped)
	}
}

func TestMixerInstantFade(t *testing.T) {
	m := NewMixer()
	idle := NewAnimation("idle", 0, 3, 1, 5)
	m.CrossFade(nil, idle, 0, false)

	if got := m.Weight(idle); got != 1 {
		t.Errorf("weight = %v, want 1", got)
	}
	if m.Dominant() != idle || len(m.Layers()) != 1 {
		t.Errorf("layers = %+v, want only idle", m.Layers())
	}
}

func TestMixerCrossFade(t *testing.T) {
	m := NewMixer()
	idle := NewAnimation("idle", 0, 3, 1, 5)
	walk := NewAnimation("walk", 0, 7, 1, 5)
	m.CrossFade(nil, idle, 0, false)

	m.CrossFade(idle, walk, 0.12, false)
	m.Update(0.06)
	approxEqual(t, m.Weight(idle), 0.5, 1e-5, "idle weight")
	approxEqual(t, m.Weight(walk), 0.5, 1e-5, "walk weight")

	m.Update(0.06)
	approxEqual(t, m.Weight(walk), 1, 1e-6, "walk weight")
	if len(m.Layers()) != 1 || m.Dominant() != walk {
		t.Errorf("layers = %+v, want only walk after the fade", m.Layers())
	}
}

func TestMixerReversedFade(t *testing.T) {
	m := NewMixer()
	idle := NewAnimation("idle", 0, 3, 1, 5)
	walk := NewAnimation("walk", 0, 7, 1, 5)
	m.CrossFade(nil, idle, 0, false)
	m.CrossFade(idle, walk, 0.1, false)
	m.Update(0.05)

	// idle comes back from where it was, not from zero
	m.CrossFade(walk, idle, 0.1, false)
	approxEqual(t, m.Weight(idle), 0.5, 1e-5, "idle weight")
	m.Update(0.1)
	approxEqual(t, m.Weight(idle), 1, 1e-6, "idle weight")
	approxEqual(t, m.Weight(walk), 0, 1e-6, "walk weight")
}

func TestMixerOnceFreezes(t *testing.T) {
	m := NewMixer()
	jump := NewAnimation("jump", 0, 2, 1, 1)
	m.CrossFade(nil, jump, 0.08, true)
	if !jump.FreezeOnComplete {
		t.Fatal("once did not set FreezeOnComplete")
	}
	for i := 0; i < 30; i++ {
		m.Update(1.0 / 60)
	}
	if jump.Frame() != jump.Last {
		t.Errorf("frame = %d, want held on %d", jump.Frame(), jump.Last)
	}

	m.CrossFade(jump, jump, 0.08, false)
	if jump.FreezeOnComplete || jump.Frame() != jump.First {
		t.Error("looping crossfade did not restart the clip")
	}
}

func TestMixerIgnoresForeignClips(t *testing.T) {
	m := NewMixer()
	idle := NewAnimation("idle", 0, 3, 1, 5)
	m.CrossFade(nil, idle, 0, false)
	m.CrossFade(idle, otherClip{}, 0.1, false)
	if m.Weight(idle) != 1 || len(m.Layers()) != 1 {
		t.Errorf("foreign clip changed the mix: %+v", m.Layers())
	}
}
