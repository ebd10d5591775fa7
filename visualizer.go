package bstviz

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tanema/gween/ease"
)

// Options configures a Visualizer. Zero fields take their defaults.
type Options struct {
	// Layout positions nodes. Defaults to DefaultLayout().
	Layout Layout
	// StepDelay is the pause between path nodes during a search walk.
	// Defaults to DefaultStepDelay.
	StepDelay time.Duration
	// Events receives highlight progress in addition to the Visualizer's
	// own bookkeeping.
	Events HighlightEvents
	// Debug enables periodic frame stats and layout warnings.
	Debug bool
	// Logger receives debug and event lines. Defaults to DefaultLogger.
	Logger Logger
	// Metrics, when non-nil, is updated on every command and tick.
	Metrics *Metrics
}

func (o Options) withDefaults() Options {
	o.Layout = o.Layout.withDefaults()
	if o.StepDelay <= 0 {
		o.StepDelay = DefaultStepDelay
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	return o
}

// Visualizer is one interactive session: the tree, its animation state, the
// search highlighter and the last resolved node positions. It is not safe
// for concurrent use; the host drives it from a single loop.
type Visualizer struct {
	opts   Options
	tree   *Tree
	sched  *Scheduler
	hl     *Highlighter
	status error

	positions map[int]Vec2
	summary   Summary
	built     bool
	ring      *RingTween

	frame Frame
	ticks uint64
}

// New creates an empty session.
func New(opts Options) *Visualizer {
	opts = opts.withDefaults()
	v := &Visualizer{
		opts:      opts,
		tree:      NewTree(),
		sched:     &Scheduler{},
		positions: make(map[int]Vec2),
	}
	v.hl = NewHighlighter(v.tree, v.sched, opts.StepDelay)
	v.hl.Events = HighlightEvents{
		OnVisit:    v.onVisit,
		OnFound:    v.onFound,
		OnNotFound: v.onNotFound,
	}
	return v
}

// Tree returns the underlying tree. Callers must not insert into it.
func (v *Visualizer) Tree() *Tree { return v.tree }

// Layout returns the active layout.
func (v *Visualizer) Layout() Layout { return v.opts.Layout }

// SetSize updates the layout surface, moving the anchor on the next tick.
// Non-positive sizes fall back to the default surface.
func (v *Visualizer) SetSize(width, height float64) {
	v.opts.Layout.Width = width
	v.opts.Layout.Height = height
	v.opts.Layout = v.opts.Layout.withDefaults()
}

// StepDelay returns the pause between highlighted path nodes.
func (v *Visualizer) StepDelay() time.Duration { return v.opts.StepDelay }

// Build replaces the tree with values, inserted in order. Pending highlight
// work is cancelled and every node replays its entrance. Empty input is
// rejected and leaves the current tree untouched.
func (v *Visualizer) Build(values []int) (Summary, error) {
	if len(values) == 0 {
		if v.opts.Metrics != nil {
			v.opts.Metrics.BuildErrors.Inc()
		}
		return Summary{}, ErrEmptyInput
	}
	v.hl.Cancel()
	v.tree.Build(values)
	v.clearDisplay()
	v.summary = Summarize(v.tree)
	v.built = true

	if m := v.opts.Metrics; m != nil {
		m.Builds.Inc()
		m.observeTree(v.summary)
	}
	if v.opts.Debug {
		v.opts.Logger.Infof("build: %d values, %d nodes, height %d",
			len(values), v.summary.Nodes, v.summary.Height)
	}
	v.debugCheckCrowding(v.summary.Height)
	return v.summary, nil
}

// BuildString parses comma-separated raw input and builds from it.
func (v *Visualizer) BuildString(raw string) (Summary, error) {
	values, err := ParseValues(raw)
	if err != nil {
		if v.opts.Metrics != nil {
			v.opts.Metrics.BuildErrors.Inc()
		}
		return Summary{}, err
	}
	return v.Build(values)
}

// Search starts a highlight walk toward target and returns the path. Marks
// and the found / not-found outcome arrive over the following ticks.
func (v *Visualizer) Search(target int) (Path, error) {
	v.ring = nil
	v.status = nil
	path, err := v.hl.Search(target)
	if err != nil {
		v.opts.Metrics.search(SearchEmptyTree)
		return nil, err
	}
	if v.opts.Debug {
		v.opts.Logger.Infof("search %d: path %s (generation %d)",
			target, JoinValues(path.Values()), v.hl.Generation())
	}
	return path, nil
}

// SearchString parses raw as an integer and searches for it.
func (v *Visualizer) SearchString(raw string) (Path, error) {
	target, err := ParseSearchValue(raw)
	if err != nil {
		v.opts.Metrics.search(SearchInvalidValue)
		return nil, err
	}
	return v.Search(target)
}

// Delete clears the tree, the summary and all pending highlight work.
func (v *Visualizer) Delete() {
	v.hl.Cancel()
	v.tree.Reset()
	v.clearDisplay()
	v.summary = Summary{}
	v.built = false
	v.opts.Metrics.observeTree(Summarize(v.tree))
	if v.opts.Debug {
		v.opts.Logger.Infof("delete")
	}
}

func (v *Visualizer) clearDisplay() {
	v.ring = nil
	v.status = nil
	clear(v.positions)
}

// Summary returns the traversals and metrics of the current tree. ok is
// false when no tree has been built.
func (v *Visualizer) Summary() (s Summary, ok bool) {
	return v.summary, v.built
}

// Status returns the outcome of the most recent completed search walk: nil
// while a walk is running or after a match, an ErrNotFound error after a
// miss.
func (v *Visualizer) Status() error { return v.status }

// Position returns where value was drawn on the last tick.
func (v *Visualizer) Position(value int) (Vec2, bool) {
	p, ok := v.positions[value]
	return p, ok
}

// Pending returns the number of queued highlight tasks.
func (v *Visualizer) Pending() int { return v.sched.Pending() }

// Now returns the session's virtual clock.
func (v *Visualizer) Now() time.Duration { return v.sched.Now() }

// Settled reports whether every node has finished its entrance.
func (v *Visualizer) Settled() bool {
	settled := true
	v.tree.Walk(func(_ NodeIndex, n *TreeNode, _ int) {
		if !n.Settled() {
			settled = false
		}
	})
	return settled
}

// Tick advances the session by dt: due highlight tasks run, the ring tween
// moves, and every node is laid out and stepped one entrance tick. The
// returned Frame shares buffers with the Visualizer and is only valid until
// the next Tick.
func (v *Visualizer) Tick(dt time.Duration) Frame {
	v.ticks++
	var stats debugStats
	var t0 time.Time
	if v.opts.Debug {
		t0 = time.Now()
	}

	stats.ran, stats.dropped = v.sched.Advance(dt)
	if v.ring != nil {
		v.ring.Update(float32(dt.Seconds()))
	}

	if v.opts.Debug {
		stats.schedTime = time.Since(t0)
		t0 = time.Now()
	}

	f := &v.frame
	f.Nodes = f.Nodes[:0]
	f.Edges = f.Edges[:0]
	f.Ring = nil
	clear(v.positions)
	l := v.opts.Layout
	a := l.Anchor()
	l.place(v.tree, v.tree.Root(), a.X, a.Y, l.InitialGap, f, v.positions)

	if v.ring != nil {
		if p, ok := v.positions[v.ring.Value]; ok {
			f.Ring = &Ring{Value: v.ring.Value, Pos: p, Radius: v.ring.Radius}
		}
	}

	if m := v.opts.Metrics; m != nil {
		m.Frames.Inc()
		if stats.dropped > 0 {
			m.StaleTasks.Add(float64(stats.dropped))
		}
	}
	if v.opts.Debug {
		stats.layoutTime = time.Since(t0)
		stats.nodes = len(f.Nodes)
		stats.edges = len(f.Edges)
		stats.pending = v.sched.Pending()
		if stats.dropped > 0 {
			v.opts.Logger.Infof("dropped %d stale highlight tasks", stats.dropped)
		}
		v.debugLogFrame(stats)
	}
	return *f
}

func (v *Visualizer) onVisit(st PathStep) {
	if v.opts.Metrics != nil {
		v.opts.Metrics.HighlightSteps.Inc()
	}
	if v.opts.Events.OnVisit != nil {
		v.opts.Events.OnVisit(st)
	}
}

func (v *Visualizer) onFound(st PathStep) {
	l := v.opts.Layout
	v.ring = NewRingTween(st.Value, l.NodeRadius, l.RingRadius, ringDuration, ease.OutBack)
	v.opts.Metrics.search(SearchFound)
	if v.opts.Debug {
		v.opts.Logger.Infof("found %d at %v", st.Value, v.sched.Now())
	}
	if v.opts.Events.OnFound != nil {
		v.opts.Events.OnFound(st)
	}
}

func (v *Visualizer) onNotFound(err error) {
	v.status = err
	v.opts.Metrics.search(SearchNotFound)
	if v.opts.Debug {
		v.opts.Logger.Infof("%v", err)
	}
	if v.opts.Events.OnNotFound != nil {
		v.opts.Events.OnNotFound(err)
	}
}

// IsNotFound reports whether err is a not-found search outcome.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
