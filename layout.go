package bstviz

import "math"

// Layout controls where nodes land on the plane. The root sits at the
// horizontal center, TopMargin pixels from the top; each level is RowHeight
// lower and the horizontal gap to a child shrinks by GapDivisor per level.
// Deep trees compress until siblings overlap; this is not corrected.
type Layout struct {
	Width      float64
	Height     float64
	TopMargin  float64
	RowHeight  float64
	InitialGap float64
	GapDivisor float64
	NodeRadius float64
	RingRadius float64
}

// DefaultLayout returns a 1000x520 surface with the standard spacing.
func DefaultLayout() Layout {
	return Layout{
		Width:      1000,
		Height:     520,
		TopMargin:  50,
		RowHeight:  80,
		InitialGap: 140,
		GapDivisor: 1.6,
		NodeRadius: 22,
		RingRadius: 26,
	}
}

// withDefaults fills every unset or non-positive field from DefaultLayout.
func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.Width <= 0 {
		l.Width = d.Width
	}
	if l.Height <= 0 {
		l.Height = d.Height
	}
	if l.TopMargin <= 0 {
		l.TopMargin = d.TopMargin
	}
	if l.RowHeight <= 0 {
		l.RowHeight = d.RowHeight
	}
	if l.InitialGap <= 0 {
		l.InitialGap = d.InitialGap
	}
	if l.GapDivisor <= 0 {
		l.GapDivisor = d.GapDivisor
	}
	if l.NodeRadius <= 0 {
		l.NodeRadius = d.NodeRadius
	}
	if l.RingRadius <= 0 {
		l.RingRadius = l.NodeRadius + d.RingRadius - d.NodeRadius
	}
	return l
}

// Anchor returns the root position.
func (l Layout) Anchor() Vec2 {
	return Vec2{X: l.Width / 2, Y: l.TopMargin}
}

// GapAt returns the horizontal parent-to-child offset used below depth.
func (l Layout) GapAt(depth int) float64 {
	return l.InitialGap / math.Pow(l.GapDivisor, float64(depth))
}

// CrowdedDepth returns the first depth whose children sit closer than one
// node diameter to their parent horizontally, the point at which cousins
// start to overlap.
func (l Layout) CrowdedDepth() int {
	if l.GapDivisor <= 1 {
		return math.MaxInt
	}
	d := 0
	for l.GapAt(d) >= 2*l.NodeRadius {
		d++
	}
	return d
}

// NodeSprite is the per-tick visual state of one node.
type NodeSprite struct {
	Value   int
	Pos     Vec2
	Opacity float64
	State   ColorState
}

// Edge connects a parent's drawn position to its child's slot.
type Edge struct {
	From    Vec2
	To      Vec2
	Opacity float64
}

// Ring is the overlay drawn around a found node.
type Ring struct {
	Value  int
	Pos    Vec2
	Radius float64
}

// Frame is everything a render surface needs for one tick. Edges are listed
// before the nodes they join; children precede their parent in Nodes so the
// parent paints on top.
type Frame struct {
	Nodes []NodeSprite
	Edges []Edge
	Ring  *Ring
}

// place lays out the subtree at i, appends its sprites and edges to f,
// records drawn positions and advances each node's entrance by one tick.
// The frame captures the state from before the advance.
func (l Layout) place(t *Tree, i NodeIndex, x, y, gap float64, f *Frame, positions map[int]Vec2) {
	if i == NoNode {
		return
	}
	n := t.Node(i)
	drawn := Vec2{X: x, Y: y + n.VerticalOffset}
	sprite := NodeSprite{
		Value:   n.Value,
		Pos:     drawn,
		Opacity: n.Opacity,
		State:   n.State(),
	}
	left, right := n.left, n.right
	n.advanceEntrance()

	childY := y + l.RowHeight
	next := gap / l.GapDivisor
	if left != NoNode {
		f.Edges = append(f.Edges, Edge{From: drawn, To: Vec2{X: x - gap, Y: childY}, Opacity: sprite.Opacity})
		l.place(t, left, x-gap, childY, next, f, positions)
	}
	if right != NoNode {
		f.Edges = append(f.Edges, Edge{From: drawn, To: Vec2{X: x + gap, Y: childY}, Opacity: sprite.Opacity})
		l.place(t, right, x+gap, childY, next, f, positions)
	}

	f.Nodes = append(f.Nodes, sprite)
	positions[n.Value] = drawn
}
