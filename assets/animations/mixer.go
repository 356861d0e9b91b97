package animations

import (
	"log"

	"github.com/automoto/climber/locomotion"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Layer is one clip contributing to the blended pose.
type Layer struct {
	Clip   *Animation
	Weight float64
}

type mixLayer struct {
	clip   *Animation
	weight float32
	tween  *gween.Tween // nil once the weight has settled
}

// Mixer blends Animation clips by weight. Crossfades tween the incoming clip
// to full weight and every other clip to zero over the same duration.
type Mixer struct {
	layers []*mixLayer
}

var _ locomotion.Blender = (*Mixer)(nil)

func NewMixer() *Mixer {
	return &Mixer{}
}

// CrossFade restarts to and fades it in. Clips that are not *Animation are
// ignored with a warning.
func (m *Mixer) CrossFade(from, to locomotion.Clip, duration float64, once bool) {
	target, ok := to.(*Animation)
	if !ok || target == nil {
		log.Printf("Warning: mixer cannot play clip %v", to)
		return
	}
	target.FreezeOnComplete = once
	target.Restart()

	if duration <= 0 {
		m.layers = []*mixLayer{{clip: target, weight: 1}}
		return
	}

	d := float32(duration)
	found := false
	for _, l := range m.layers {
		if l.clip == target {
			found = true
			l.tween = gween.New(l.weight, 1, d, ease.Linear)
			continue
		}
		l.tween = gween.New(l.weight, 0, d, ease.Linear)
	}
	if !found {
		m.layers = append(m.layers, &mixLayer{clip: target, tween: gween.New(0, 1, d, ease.Linear)})
	}
}

// Update advances fades by dt seconds and every playing clip by one tick.
func (m *Mixer) Update(dt float64) {
	kept := m.layers[:0]
	for _, l := range m.layers {
		if l.tween != nil {
			w, done := l.tween.Update(float32(dt))
			l.weight = w
			if done {
				l.tween = nil
			}
		}
		if l.weight <= 0 && l.tween == nil {
			continue
		}
		l.clip.Update()
		kept = append(kept, l)
	}
	m.layers = kept
}

// Layers returns the clips currently contributing, in the order they started.
func (m *Mixer) Layers() []Layer {
	out := make([]Layer, 0, len(m.layers))
	for _, l := range m.layers {
		out = append(out, Layer{Clip: l.clip, Weight: float64(l.weight)})
	}
	return out
}

// Weight returns the blend weight of clip, 0 when it is not playing.
func (m *Mixer) Weight(clip *Animation) float64 {
	for _, l := range m.layers {
		if l.clip == clip {
			return float64(l.weight)
		}
	}
	return 0
}

// Dominant returns the clip with the highest weight, or nil.
func (m *Mixer) Dominant() *Animation {
	var best *mixLayer
	for _, l := range m.layers {
		if best == nil || l.weight >= best.weight {
			best = l
		}
	}
	if best == nil {
		return nil
	}
	return best.clip
}
