package bstviz

import (
	"time"
)

// debugFrameInterval is how many ticks pass between frame stat lines.
const debugFrameInterval = 120

// debugStats holds per-tick timing and size metrics.
// Only populated when Options.Debug is true.
type debugStats struct {
	schedTime  time.Duration
	layoutTime time.Duration
	ran        int
	dropped    int
	nodes      int
	edges      int
	pending    int
}

// debugLogFrame prints timing and size stats every debugFrameInterval ticks.
func (v *Visualizer) debugLogFrame(stats debugStats) {
	if !v.opts.Debug || v.ticks%debugFrameInterval != 0 {
		return
	}
	v.opts.Logger.Infof("tick %d | sched: %v | layout: %v | total: %v",
		v.ticks, stats.schedTime, stats.layoutTime, stats.schedTime+stats.layoutTime)
	v.opts.Logger.Infof("nodes: %d | edges: %d | tasks ran: %d | dropped: %d | pending: %d",
		stats.nodes, stats.edges, stats.ran, stats.dropped, stats.pending)
}

// debugCheckCrowding warns when the tree is deep enough for the halving
// layout to make nodes overlap.
func (v *Visualizer) debugCheckCrowding(height int) {
	if !v.opts.Debug {
		return
	}
	if d := v.opts.Layout.CrowdedDepth(); height > d {
		v.opts.Logger.Infof("warning: tree height %d exceeds %d; nodes below depth %d may overlap",
			height, d, d)
	}
}
