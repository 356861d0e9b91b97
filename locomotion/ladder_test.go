package locomotion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testZone() *LadderZone {
	return &LadderZone{Center: mgl64.Vec3{0, 0, 0}, MinY: 0, MaxY: 10}
}

func TestLadderAttach(t *testing.T) {
	s := DefaultSettings()
	zone := testZone()
	other := &LadderZone{Center: mgl64.Vec3{4, 0, 4}, MinY: 0, MaxY: 3}

	tests := []struct {
		name      string
		from      LadderAttachment
		zone      *LadderZone
		posY      float64
		wantState LadderState
		wantZone  *LadderZone
	}{
		{"detached attaches", LadderAttachment{}, zone, 5, Attached, zone},
		{"attached switches zone", LadderAttachment{State: Attached, Zone: zone}, other, 1, Attached, other},
		{"refused during cooldown", LadderAttachment{State: CooldownAfterDetach, Cooldown: 0.1}, zone, 5, CooldownAfterDetach, nil},
		{"refused above the exit", LadderAttachment{}, zone, 10.5, Detached, nil},
		{"allowed just under the exit", LadderAttachment{}, zone, 10.3, Attached, zone},
		{"nil zone releases", LadderAttachment{State: Attached, Zone: zone}, nil, 5, Detached, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Attach(tt.zone, tt.posY, s)
			if got.State != tt.wantState {
				t.Errorf("state = %v, want %v", got.State, tt.wantState)
			}
			if got.Zone != tt.wantZone {
				t.Errorf("zone = %p, want %p", got.Zone, tt.wantZone)
			}
		})
	}
}

func TestLadderReleaseKeepsCooldown(t *testing.T) {
	l := LadderAttachment{State: CooldownAfterDetach, Cooldown: 0.2}
	if got := l.Release(); got != l {
		t.Errorf("Release during cooldown = %+v, want unchanged %+v", got, l)
	}
}

func TestLadderCooldownWindow(t *testing.T) {
	s := DefaultSettings()
	zone := testZone()
	dt := 0.05

	l := LadderAttachment{}.Attach(zone, 5, s)
	l = l.JumpOff(s)
	if l.Active() {
		t.Fatal("still attached after jump-off")
	}
	approxEqual(t, l.Cooldown, s.LadderDetachCooldown, eps, "cooldown")

	// 0.25s window at 0.05s per frame: four refused notifications.
	for i := 0; i < 4; i++ {
		l = l.Tick(dt)
		l = l.Attach(zone, 5, s)
		if l.Active() {
			t.Fatalf("frame %d: attached inside the cooldown window (cooldown %v)", i, l.Cooldown)
		}
	}

	for i := 0; i < 2; i++ {
		l = l.Tick(dt)
	}
	if l.State != Detached || l.Cooldown != 0 {
		t.Fatalf("after window: %+v, want Detached with zero cooldown", l)
	}
	l = l.Attach(zone, 5, s)
	if !l.Active() {
		t.Errorf("first notification after the window did not attach: %+v", l)
	}
}

func TestLadderCooldownFrameCount(t *testing.T) {
	s := DefaultSettings()
	l := LadderAttachment{}.Attach(testZone(), 5, s).JumpOff(s)

	// 0.25s at 60 ticks per second is exactly fifteen frames.
	frames := 0
	for l.State == CooldownAfterDetach && frames < 100 {
		l = l.Tick(1.0 / 60)
		frames++
	}
	if frames != 15 {
		t.Errorf("cooldown lasted %d frames, want 15", frames)
	}
	if l.Cooldown != 0 {
		t.Errorf("cooldown = %v, want 0", l.Cooldown)
	}
}

func TestLadderTickClampsAtZero(t *testing.T) {
	l := LadderAttachment{State: CooldownAfterDetach, Cooldown: 0.1}.Tick(3)
	if l.Cooldown != 0 {
		t.Errorf("cooldown = %v, want 0", l.Cooldown)
	}
	if l.State != Detached {
		t.Errorf("state = %v, want Detached", l.State)
	}

	attached := LadderAttachment{State: Attached, Zone: testZone()}
	if got := attached.Tick(1); got != attached {
		t.Errorf("Tick changed an attached ladder: %+v", got)
	}
}

func TestLadderClimbedPastTop(t *testing.T) {
	s := DefaultSettings()
	l := LadderAttachment{State: Attached, Zone: testZone()}

	tests := []struct {
		name  string
		posY  float64
		climb float64
		want  bool
	}{
		{"below the exit", 10.2, 1, false},
		{"above the exit climbing", 10.4, 1, true},
		{"above the exit without input", 10.4, 0, false},
		{"above the exit climbing down", 10.4, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.ClimbedPastTop(tt.posY, tt.climb, s)
			if ok != tt.want {
				t.Fatalf("ok = %v, want %v", ok, tt.want)
			}
			if ok && (got.State != Detached || got.Cooldown != 0) {
				t.Errorf("top exit = %+v, want Detached without cooldown", got)
			}
		})
	}
}

func TestClimbStep(t *testing.T) {
	s := DefaultSettings()
	zone := *testZone()
	dt := 0.1

	t.Run("climb up", func(t *testing.T) {
		r := ClimbStep(zone, mgl64.Vec3{0, 5, 0}, 1, dt, s)
		approxEqual(t, r.Velocity, 4.6, eps, "velocity")
		approxEqual(t, r.Displacement, 0.46, eps, "displacement")
		approxEqual(t, r.SpeedCap, 2.8, eps, "speed cap")
	})

	t.Run("climb down", func(t *testing.T) {
		r := ClimbStep(zone, mgl64.Vec3{0, 5, 0}, -1, dt, s)
		approxEqual(t, r.Velocity, -4.6, eps, "velocity")
	})

	t.Run("slide without input", func(t *testing.T) {
		r := ClimbStep(zone, mgl64.Vec3{0, 5, 0}, 0, dt, s)
		approxEqual(t, r.Velocity, -1.2, eps, "velocity")
	})

	t.Run("vertical clamp", func(t *testing.T) {
		fast := s
		fast.LadderClimbSpeed = 20
		r := ClimbStep(zone, mgl64.Vec3{0, 5, 0}, 1, dt, fast)
		approxEqual(t, r.Velocity, 6.5, eps, "velocity")
		r = ClimbStep(zone, mgl64.Vec3{0, 5, 0}, -1, dt, fast)
		approxEqual(t, r.Velocity, -6.5, eps, "velocity")
	})

	t.Run("pull inside the cap", func(t *testing.T) {
		r := ClimbStep(zone, mgl64.Vec3{0.5, 5, 0}, 0, dt, s)
		approxVec(t, r.Pull, mgl64.Vec3{-0.15, 0, 0}, 1e-9, "pull")
	})

	t.Run("pull capped", func(t *testing.T) {
		r := ClimbStep(zone, mgl64.Vec3{0, 5, -3}, 0, dt, s)
		approxVec(t, r.Pull, mgl64.Vec3{0, 0, 0.24}, 1e-9, "pull")
	})

	t.Run("pull slower than the horizontal cap", func(t *testing.T) {
		strong := s
		strong.LadderPullRate = 20
		r := ClimbStep(zone, mgl64.Vec3{0, 5, -3}, 0, dt, strong)
		approxVec(t, r.Pull, mgl64.Vec3{0, 0, 2.8 * 0.9 * dt}, 1e-9, "pull")
	})

	t.Run("pull ignores height", func(t *testing.T) {
		r := ClimbStep(LadderZone{Center: mgl64.Vec3{0, 100, 0}, MaxY: 10}, mgl64.Vec3{0, 5, 0}, 0, dt, s)
		approxVec(t, r.Pull, mgl64.Vec3{}, 1e-12, "pull")
	})
}
