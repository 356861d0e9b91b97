package locomotion_test

import (
	"context"
	"math"
	"testing"

	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/physics"
	"github.com/go-gl/mathgl/mgl64"
)

const dt = 1.0 / 60

type held map[locomotion.Action]bool

func (h held) Pressed(a locomotion.Action) bool { return h[a] }

func newArena(t *testing.T) *physics.World {
	t.Helper()
	w := physics.NewWorld(20, 20, physics.DefaultSettings())
	w.AddSolid(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{20, 0, 20})
	return w
}

func spawnController(t *testing.T, w *physics.World, pos mgl64.Vec3, input locomotion.InputSource) *locomotion.Controller {
	t.Helper()
	ctrl, err := locomotion.Spawn(context.Background(), w, pos, locomotion.DefaultSettings(), input, nil)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	return ctrl
}

func TestWalkOnFloor(t *testing.T) {
	w := newArena(t)
	input := held{}
	ctrl := spawnController(t, w, mgl64.Vec3{10, 0.8, 10}, input)

	// settle
	for i := 0; i < 5; i++ {
		ctrl.Update(dt, 0)
	}
	if !ctrl.Grounded() {
		t.Fatal("expected the character to rest on the floor")
	}

	input[locomotion.ActionForward] = true
	for i := 0; i < 30; i++ {
		ctrl.Update(dt, 0)
	}

	pos := ctrl.Position()
	if !ctrl.Grounded() {
		t.Error("walking should keep the character grounded")
	}
	if math.Abs(pos.X()-10) > 1e-6 {
		t.Errorf("x drifted to %v", pos.X())
	}
	if pos.Z() > 7.2 || pos.Z() < 6.8 {
		t.Errorf("z = %v, want about 7 after half a second toward -Z", pos.Z())
	}
	if math.Abs(pos.Y()-0.8) > 0.01 {
		t.Errorf("y = %v, want the capsule centre on the floor", pos.Y())
	}
	if want := math.Pi; math.Abs(math.Abs(ctrl.Facing())-want) > 1e-6 {
		t.Errorf("facing = %v, want ±pi", ctrl.Facing())
	}
}

func TestWalkIntoWall(t *testing.T) {
	w := newArena(t)
	w.AddSolid(mgl64.Vec3{0, 0, 7}, mgl64.Vec3{20, 2, 8})
	input := held{locomotion.ActionForward: true}
	ctrl := spawnController(t, w, mgl64.Vec3{10, 0.8, 10}, input)

	for i := 0; i < 60; i++ {
		ctrl.Update(dt, 0)
	}
	if z := ctrl.Position().Z(); z < 8+physics.DefaultSettings().Radius-0.01 {
		t.Errorf("z = %v, character passed into the wall", z)
	}
}

func TestJumpAndLand(t *testing.T) {
	w := newArena(t)
	input := held{}
	ctrl := spawnController(t, w, mgl64.Vec3{10, 0.8, 10}, input)
	ctrl.Update(dt, 0)

	input[locomotion.ActionJump] = true
	ctrl.Update(dt, 0)
	input[locomotion.ActionJump] = false
	if ctrl.Grounded() || ctrl.VerticalVelocity() <= 0 {
		t.Fatalf("grounded=%v vy=%v after jumping", ctrl.Grounded(), ctrl.VerticalVelocity())
	}

	peak := 0.0
	for i := 0; i < 120 && !ctrl.Grounded(); i++ {
		ctrl.Update(dt, 0)
		peak = math.Max(peak, ctrl.Position().Y())
	}
	if !ctrl.Grounded() {
		t.Fatal("character never landed")
	}
	if peak < 2.5 {
		t.Errorf("peak = %v, want a jump above 2.5", peak)
	}
	if math.Abs(ctrl.Position().Y()-0.8) > 0.01 {
		t.Errorf("landed at y = %v", ctrl.Position().Y())
	}
}

func TestClimbLadder(t *testing.T) {
	w := newArena(t)
	zone := &locomotion.LadderZone{Center: mgl64.Vec3{10, 0, 10}, MinY: 0, MaxY: 5}
	w.AddLadder(zone, 0.5, 0.5)
	// the wall the ladder is fixed to
	w.AddSolid(mgl64.Vec3{8, 0, 8.5}, mgl64.Vec3{12, 6, 9.5})
	input := held{}
	ctrl := spawnController(t, w, mgl64.Vec3{10, 0.8, 10.3}, input)
	ctrl.Update(dt, 0)

	input[locomotion.ActionForward] = true
	for i := 0; i < 30; i++ {
		ctrl.SetLadder(w.LadderAt(ctrl.Collider()))
		ctrl.Update(dt, 0)
	}

	if !ctrl.Ladder().Active() {
		t.Fatal("expected the character to be on the ladder")
	}
	if ctrl.Grounded() {
		t.Error("climbing characters are never grounded")
	}
	if y := ctrl.Position().Y(); y < 2.5 {
		t.Errorf("y = %v, want a climb of well over a unit", y)
	}
	if d := math.Abs(ctrl.Position().Z() - zone.Center.Z()); d > 0.8 {
		t.Errorf("drifted %v from the ladder column", d)
	}
}

func TestWalkOffLadder(t *testing.T) {
	tests := []struct {
		name string
		run  bool
	}{
		{"walk", false},
		{"run", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newArena(t)
			zone := &locomotion.LadderZone{Center: mgl64.Vec3{10, 0, 10}, MinY: 0, MaxY: 5}
			w.AddLadder(zone, 0.5, 0.5)
			input := held{}
			ctrl := spawnController(t, w, mgl64.Vec3{10, 0.8, 10}, input)

			ctrl.SetLadder(w.LadderAt(ctrl.Collider()))
			if !ctrl.Ladder().Active() {
				t.Fatal("expected to start on the ladder")
			}

			input[locomotion.ActionRight] = true
			input[locomotion.ActionRun] = tt.run
			for i := 0; i < 180; i++ {
				ctrl.SetLadder(w.LadderAt(ctrl.Collider()))
				ctrl.Update(dt, 0)
			}

			if ctrl.Ladder().Active() {
				t.Fatalf("still attached at x offset %v", ctrl.Position().X()-zone.Center.X())
			}
			if w.LadderAt(ctrl.Collider()) != nil {
				t.Error("character is still inside the ladder zone")
			}
			if !ctrl.Grounded() {
				t.Error("expected to be walking on the floor after leaving the ladder")
			}
			intent := ctrl.LastIntent()
			approxIntent := math.Abs(intent.Magnitude() - 1)
			if approxIntent > 1e-9 || intent.Running != tt.run {
				t.Errorf("intent = %+v, want unit magnitude with running=%v", intent, tt.run)
			}
		})
	}
}
