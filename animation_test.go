package bstviz

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestEntranceSettles(t *testing.T) {
	n := newTreeNode(1)
	prevOffset, prevOpacity := n.VerticalOffset, n.Opacity

	for i := 0; i < 30; i++ {
		n.advanceEntrance()
		if n.VerticalOffset < prevOffset || n.Opacity < prevOpacity {
			t.Fatalf("tick %d: animation moved backwards", i)
		}
		if n.VerticalOffset > 0 || n.Opacity > 1 {
			t.Fatalf("tick %d: overshoot offset=%v opacity=%v", i, n.VerticalOffset, n.Opacity)
		}
		prevOffset, prevOpacity = n.VerticalOffset, n.Opacity
	}
	if !n.Settled() {
		t.Fatalf("not settled after 30 ticks: offset=%v opacity=%v", n.VerticalOffset, n.Opacity)
	}

	// Settled nodes stay put.
	n.advanceEntrance()
	if n.VerticalOffset != 0 || n.Opacity != 1 {
		t.Error("settled node drifted")
	}
}

func TestEntranceOffsetSteps(t *testing.T) {
	n := newTreeNode(1)
	for i := 0; i < 12; i++ {
		n.advanceEntrance()
	}
	if n.VerticalOffset != -1 {
		t.Errorf("offset after 12 ticks = %v, want -1", n.VerticalOffset)
	}
	if n.Settled() {
		t.Error("should not be settled after 12 ticks")
	}
	n.advanceEntrance()
	if n.VerticalOffset != 0 {
		t.Errorf("offset after 13 ticks = %v, want 0 (clamped)", n.VerticalOffset)
	}
	if math.Abs(n.Opacity-13*OpacityStep) > 1e-9 {
		t.Errorf("opacity after 13 ticks = %v, want %v", n.Opacity, 13*OpacityStep)
	}
}

func TestRingTweenReachesTarget(t *testing.T) {
	r := NewRingTween(4, 22, 26, 0.5, ease.Linear)
	if r.Radius != 22 {
		t.Fatalf("initial radius = %v, want 22", r.Radius)
	}

	r.Update(0.25)
	if r.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(r.Radius-24) > 0.05 {
		t.Errorf("radius = %f, want ~24 at halfway", r.Radius)
	}

	r.Update(0.25)
	if !r.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(r.Radius-26) > 0.01 {
		t.Errorf("radius = %f, want ~26", r.Radius)
	}

	// Further updates are no-ops.
	r.Update(1)
	if math.Abs(r.Radius-26) > 0.01 {
		t.Errorf("radius moved after Done: %f", r.Radius)
	}
}
