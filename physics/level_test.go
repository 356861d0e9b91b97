package physics

import (
	"os"
	"strings"
	"testing"

	"github.com/automoto/climber/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

func TestFromLevel(t *testing.T) {
	level, err := leveldata.LoadLevel(os.DirFS("../shared/leveldata/testdata"), "level.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	w, err := FromLevel(level, DefaultSettings())
	if err != nil {
		t.Fatalf("FromLevel: %v", err)
	}

	var solids, ramps, sensors int
	for _, b := range w.Bodies() {
		switch {
		case b.IsRamp():
			ramps++
		case b.IsSensor():
			sensors++
		default:
			solids++
		}
	}
	if solids != 2 || ramps != 1 || sensors != 1 {
		t.Errorf("bodies = %d solids, %d ramps, %d sensors; want 2, 1, 1", solids, ramps, sensors)
	}
	if width, depth := w.Size(); width != 20 || depth != 16 {
		t.Errorf("size = %vx%v, want 20x16", width, depth)
	}

	spawn := level.Spawns[0]
	c := spawnGrounded(t, w, spawn.X, 0, spawn.Z)
	if w.LadderAt(c) != nil {
		t.Error("spawn point should not be on a ladder")
	}

	c.SetTranslation(mgl64.Vec3{11.5, 0.8, 3.5})
	zone := w.LadderAt(c)
	if zone == nil {
		t.Fatal("expected the ladder zone next to the platform")
	}
	approxEqual(t, zone.Center.X(), 11.5, 1e-9, "ladder x")
	approxEqual(t, zone.Center.Z(), 3.5, 1e-9, "ladder z")
	approxEqual(t, zone.MaxY, 3, 1e-9, "ladder top")
}

func TestFromLevelErrors(t *testing.T) {
	if _, err := FromLevel(nil, DefaultSettings()); err == nil {
		t.Error("expected an error for a nil level")
	}

	level := &leveldata.Level{
		Name:  "bad",
		Width: 4,
		Depth: 4,
		Ramps: []leveldata.Ramp{{Box: leveldata.Box{MaxX: 1, MaxY: 1, MaxZ: 1}, Rise: "up"}},
	}
	_, err := FromLevel(level, DefaultSettings())
	if err == nil || !strings.Contains(err.Error(), `unknown ramp rise "up"`) {
		t.Errorf("err = %v, want an unknown rise error", err)
	}
}

func TestParseRise(t *testing.T) {
	tests := []struct {
		name string
		want Rise
	}{
		{"east", RiseEast},
		{"West", RiseWest},
		{"SOUTH", RiseSouth},
		{"north", RiseNorth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRise(tt.name)
			if err != nil || got != tt.want {
				t.Errorf("ParseRise(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
			}
		})
	}
}

func TestBodyUphill(t *testing.T) {
	w := NewWorld(10, 10, DefaultSettings())
	tests := []struct {
		rise Rise
		want mgl64.Vec3
	}{
		{RiseEast, mgl64.Vec3{1, 0, 0}},
		{RiseWest, mgl64.Vec3{-1, 0, 0}},
		{RiseSouth, mgl64.Vec3{0, 0, 1}},
		{RiseNorth, mgl64.Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		b := w.AddRamp(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{3, 1, 3}, tt.rise)
		if got := b.Uphill(); got != tt.want {
			t.Errorf("rise %v: uphill = %v, want %v", tt.rise, got, tt.want)
		}
	}
	solid := w.AddSolid(mgl64.Vec3{5, 0, 5}, mgl64.Vec3{6, 1, 6})
	if got := solid.Uphill(); got != (mgl64.Vec3{}) {
		t.Errorf("solid uphill = %v, want zero", got)
	}
}

func TestFromSpace(t *testing.T) {
	w := newFloorWorld(t)
	b := w.AddSolid(mgl64.Vec3{2.5, 0, 4}, mgl64.Vec3{3.25, 1, 6})
	minX, minZ, maxX, maxZ := FromSpace(b.obj)
	approxEqual(t, minX, 2.5, 1e-9, "minX")
	approxEqual(t, minZ, 4, 1e-9, "minZ")
	approxEqual(t, maxX, 3.25, 1e-9, "maxX")
	approxEqual(t, maxZ, 6, 1e-9, "maxZ")
}
