package bstviz

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// advanceEntrance moves a node one tick through its fade-and-slide entrance.
// Both fields are clamped, so a settled node never drifts.
func (n *TreeNode) advanceEntrance() {
	if n.VerticalOffset < 0 {
		n.VerticalOffset = min(n.VerticalOffset+OffsetStep, 0)
	}
	if n.Opacity < 1 {
		n.Opacity = min(n.Opacity+OpacityStep, 1)
	}
}

// Ring overlay defaults.
const (
	ringDuration = 0.25 // seconds
)

// RingTween animates the radius of the overlay ring drawn around a found
// node. Call Update(dt) each frame; Done turns true once the radius has
// reached its target.
//
// There is no global animation manager; the Visualizer owns at most one.
type RingTween struct {
	tween  *gween.Tween
	Value  int
	Radius float64
	Done   bool
}

// NewRingTween creates a tween growing the ring around value from radius
// from to radius to over duration seconds.
func NewRingTween(value int, from, to float64, duration float32, fn ease.TweenFunc) *RingTween {
	return &RingTween{
		tween:  gween.New(float32(from), float32(to), duration, fn),
		Value:  value,
		Radius: from,
	}
}

// Update advances the tween by dt seconds and writes the current radius.
func (r *RingTween) Update(dt float32) {
	if r.Done {
		return
	}
	val, finished := r.tween.Update(dt)
	r.Radius = float64(val)
	r.Done = finished
}
