package bstviz

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// DefaultStepDelay is the pause between consecutive path nodes lighting up.
const DefaultStepDelay = 600 * time.Millisecond

// PathStep is one node on a search path and when it lights up, relative to
// the search call.
type PathStep struct {
	Node  NodeIndex
	Value int
	Delay time.Duration
}

// Path is the ordered sequence of nodes a search visits.
type Path []PathStep

// Values returns the node values along the path.
func (p Path) Values() []int {
	vals := make([]int, len(p))
	for i, st := range p {
		vals[i] = st.Value
	}
	return vals
}

// Matches reports whether the path ends on target.
func (p Path) Matches(target int) bool {
	return len(p) > 0 && p[len(p)-1].Value == target
}

// HighlightEvents receives highlight progress. Every callback runs from
// inside Scheduler.Advance. Nil callbacks are skipped.
type HighlightEvents struct {
	OnVisit    func(PathStep)
	OnFound    func(PathStep)
	OnNotFound func(err error)
}

// Highlighter turns a search into a timed walk: node i of the path is marked
// visited i×StepDelay after the call, the last node is also marked found if
// it matches, and a miss is reported once the walk has finished.
//
// Every search runs under a new generation. Starting a search, or calling
// Cancel, invalidates whatever an earlier search still had queued, so a
// superseded walk can never touch the flags of a newer one.
type Highlighter struct {
	tree      *Tree
	sched     *Scheduler
	StepDelay time.Duration
	Events    HighlightEvents

	gen uint64
}

// NewHighlighter creates a highlighter for tree driven by sched.
func NewHighlighter(tree *Tree, sched *Scheduler, stepDelay time.Duration) *Highlighter {
	return &Highlighter{tree: tree, sched: sched, StepDelay: stepDelay}
}

// Generation returns the generation of the most recent search.
func (h *Highlighter) Generation() uint64 { return h.gen }

// Cancel invalidates every pending highlight task.
func (h *Highlighter) Cancel() {
	h.sched.CancelThrough(h.gen)
	h.gen++
}

// Reset clears visited and found on every node.
func (h *Highlighter) Reset() {
	h.tree.Walk(func(_ NodeIndex, n *TreeNode, _ int) {
		n.resetHighlight()
	})
}

// Search cancels any walk in progress, clears all highlight flags and
// schedules the walk toward target. The returned path is known immediately;
// its effects arrive through the scheduler.
func (h *Highlighter) Search(target int) (Path, error) {
	if h.tree.Empty() {
		return nil, errors.Wrapf(ErrEmptyTree, "search %d", redact.Safe(target))
	}
	h.Cancel()
	h.Reset()
	gen := h.gen

	indices := h.tree.Search(target)
	path := make(Path, len(indices))
	for i, ni := range indices {
		path[i] = PathStep{
			Node:  ni,
			Value: h.tree.Node(ni).Value,
			Delay: time.Duration(i) * h.StepDelay,
		}
	}
	matched := path.Matches(target)
	for i, st := range path {
		found := matched && i == len(path)-1
		h.sched.After(st.Delay, gen, func() { h.mark(st, found) })
	}
	if !matched {
		h.sched.After(time.Duration(len(path))*h.StepDelay, gen, func() {
			if h.Events.OnNotFound != nil {
				h.Events.OnNotFound(errors.Wrapf(ErrNotFound, "search %d", redact.Safe(target)))
			}
		})
	}
	return path, nil
}

func (h *Highlighter) mark(st PathStep, found bool) {
	n := h.tree.Node(st.Node)
	n.Visited = true
	if h.Events.OnVisit != nil {
		h.Events.OnVisit(st)
	}
	if found {
		n.Found = true
		if h.Events.OnFound != nil {
			h.Events.OnFound(st)
		}
	}
}
