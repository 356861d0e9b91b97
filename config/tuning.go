package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/automoto/climber/locomotion"
	"github.com/automoto/climber/physics"
	"gopkg.in/yaml.v3"
)

// Tuning is a partial override file. Only keys present in the YAML are
// applied; everything else keeps its current value.
type Tuning struct {
	Locomotion LocomotionTuning `yaml:"locomotion"`
	Physics    PhysicsTuning    `yaml:"physics"`
	Camera     CameraTuning     `yaml:"camera"`
}

type LocomotionTuning struct {
	WalkSpeed   *float64 `yaml:"walk_speed"`
	RunSpeed    *float64 `yaml:"run_speed"`
	JumpSpeed   *float64 `yaml:"jump_speed"`
	Gravity     *float64 `yaml:"gravity"`
	GroundStick *float64 `yaml:"ground_stick"`

	LadderClimbSpeed         *float64 `yaml:"ladder_climb_speed"`
	LadderSlideSpeed         *float64 `yaml:"ladder_slide_speed"`
	LadderMaxVerticalSpeed   *float64 `yaml:"ladder_max_vertical_speed"`
	LadderMaxHorizontalSpeed *float64 `yaml:"ladder_max_horizontal_speed"`
	LadderPullDistanceCap    *float64 `yaml:"ladder_pull_distance_cap"`
	LadderPullRate           *float64 `yaml:"ladder_pull_rate"`
	LadderTopMargin          *float64 `yaml:"ladder_top_margin"`
	LadderDetachCooldown     *float64 `yaml:"ladder_detach_cooldown"`

	RenderOffsetY *float64 `yaml:"render_offset_y"`

	IdleThreshold      *float64 `yaml:"idle_threshold"`
	JumpFadeTime       *float64 `yaml:"jump_fade_time"`
	LocomotionFadeTime *float64 `yaml:"locomotion_fade_time"`
}

type PhysicsTuning struct {
	StepHeight    *float64 `yaml:"step_height"`
	SnapDistance  *float64 `yaml:"snap_distance"`
	MaxSlopeAngle *float64 `yaml:"max_slope_angle"`
	MinSlideAngle *float64 `yaml:"min_slide_angle"`
	SlideDistance *float64 `yaml:"slide_distance"`
}

type CameraTuning struct {
	FollowSmoothing *float64 `yaml:"follow_smoothing"`
	YawSpeed        *float64 `yaml:"yaw_speed"`
	Zoom            *float64 `yaml:"zoom"`
}

// ParseTuning decodes a tuning file. Unknown keys are an error so typos do not
// silently leave a value untouched.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		// a file with no document means no overrides
		if errors.Is(err, io.EOF) {
			return &t, nil
		}
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) validate() error {
	positive := map[string]*float64{
		"locomotion.walk_speed":         t.Locomotion.WalkSpeed,
		"locomotion.run_speed":          t.Locomotion.RunSpeed,
		"locomotion.ladder_climb_speed": t.Locomotion.LadderClimbSpeed,
		"camera.zoom":                   t.Camera.Zoom,
	}
	for key, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("tuning %s must be positive, got %v", key, *v)
		}
	}
	if v := t.Locomotion.Gravity; v != nil && *v > 0 {
		return fmt.Errorf("tuning locomotion.gravity must not be positive, got %v", *v)
	}
	if v := t.Locomotion.LadderDetachCooldown; v != nil && *v < 0 {
		return fmt.Errorf("tuning locomotion.ladder_detach_cooldown must not be negative, got %v", *v)
	}
	return nil
}

// Apply writes every present key into the given settings.
func (t *Tuning) Apply(loco *locomotion.Settings, phys *physics.Settings, cam *CameraConfig) {
	l := t.Locomotion
	set(&loco.WalkSpeed, l.WalkSpeed)
	set(&loco.RunSpeed, l.RunSpeed)
	set(&loco.JumpSpeed, l.JumpSpeed)
	set(&loco.Gravity, l.Gravity)
	set(&loco.GroundStick, l.GroundStick)
	set(&loco.LadderClimbSpeed, l.LadderClimbSpeed)
	set(&loco.LadderSlideSpeed, l.LadderSlideSpeed)
	set(&loco.LadderMaxVerticalSpeed, l.LadderMaxVerticalSpeed)
	set(&loco.LadderMaxHorizontalSpeed, l.LadderMaxHorizontalSpeed)
	set(&loco.LadderPullDistanceCap, l.LadderPullDistanceCap)
	set(&loco.LadderPullRate, l.LadderPullRate)
	set(&loco.LadderTopMargin, l.LadderTopMargin)
	set(&loco.LadderDetachCooldown, l.LadderDetachCooldown)
	set(&loco.RenderOffsetY, l.RenderOffsetY)
	set(&loco.IdleThreshold, l.IdleThreshold)
	set(&loco.JumpFadeTime, l.JumpFadeTime)
	set(&loco.LocomotionFadeTime, l.LocomotionFadeTime)

	p := t.Physics
	set(&phys.StepHeight, p.StepHeight)
	set(&phys.SnapDistance, p.SnapDistance)
	set(&phys.MaxSlopeAngle, p.MaxSlopeAngle)
	set(&phys.MinSlideAngle, p.MinSlideAngle)
	set(&phys.SlideDistance, p.SlideDistance)

	c := t.Camera
	set(&cam.FollowSmoothing, c.FollowSmoothing)
	set(&cam.YawSpeed, c.YawSpeed)
	set(&cam.Zoom, c.Zoom)
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// LoadTuning reads path and applies it over the global settings.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply(&Locomotion, &Physics, &Camera)
	if Debug.LogTuning {
		log.Printf("Applied tuning from %s", path)
	}
	return nil
}
