package locomotion

import (
	"context"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", field, got, want, tol)
	}
}

func approxVec(t *testing.T, got, want mgl64.Vec3, tol float64, field string) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s = %v, want %v", field, got, want)
			return
		}
	}
}

type fakeCollider struct {
	pos mgl64.Vec3
}

func (c *fakeCollider) SetTranslation(p mgl64.Vec3) { c.pos = p }

// floorWorld has an infinite floor at height floor and nothing else.
type floorWorld struct {
	floor    float64
	calls    int
	excluded bool
}

func (w *floorWorld) CreateCharacter(position mgl64.Vec3) (Collider, error) {
	return &fakeCollider{pos: position}, nil
}

func (w *floorWorld) ComputeMovement(collider Collider, desired mgl64.Vec3, excludeSensors bool) (mgl64.Vec3, bool) {
	w.calls++
	w.excluded = excludeSensors
	pos := collider.(*fakeCollider).pos
	corrected := desired
	if pos.Y()+desired.Y() <= w.floor {
		corrected[1] = w.floor - pos.Y()
		return corrected, true
	}
	return corrected, false
}

type keys map[Action]bool

func (k keys) Pressed(a Action) bool { return k[a] }

type testClip struct {
	name string
}

func (c *testClip) Name() string { return c.name }

type fade struct {
	from, to Clip
	duration float64
	once     bool
}

type recordingBlender struct {
	fades []fade
}

func (b *recordingBlender) CrossFade(from, to Clip, duration float64, once bool) {
	b.fades = append(b.fades, fade{from: from, to: to, duration: duration, once: once})
}

func fullClipSet() ClipSet {
	return ClipSet{
		AnimIdle: &testClip{"idle"},
		AnimWalk: &testClip{"walk"},
		AnimRun:  &testClip{"run"},
		AnimJump: &testClip{"jump"},
	}
}

type staticLoader struct {
	clips   ClipSet
	blender Blender
	err     error
}

func (l staticLoader) Load(context.Context) (ClipSet, Blender, error) {
	return l.clips, l.blender, l.err
}
