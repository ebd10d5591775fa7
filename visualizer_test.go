package bstviz

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newTestVisualizer(t *testing.T) (*Visualizer, *Metrics) {
	t.Helper()
	m := NewMetrics(prometheus.NewRegistry())
	return New(Options{Logger: NoopLogger{}, Metrics: m}), m
}

// tickFor advances v in 1/60s steps until d has elapsed.
func tickFor(v *Visualizer, d time.Duration) {
	const frame = time.Second / 60
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		v.Tick(frame)
	}
}

func TestVisualizerBuildSummary(t *testing.T) {
	v, m := newTestVisualizer(t)

	s, err := v.BuildString("5, 3, 8, 1, 4")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4, 5, 8}, s.InOrder)
	require.Equal(t, []int{5, 3, 1, 4, 8}, s.PreOrder)
	require.Equal(t, []int{1, 4, 3, 8, 5}, s.PostOrder)
	require.Equal(t, 5, s.Nodes)
	require.Equal(t, 3, s.Leaves)
	require.Equal(t, 2, s.Height)

	got, ok := v.Summary()
	require.True(t, ok)
	require.Equal(t, s, got)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Builds))
	require.Equal(t, 5.0, testutil.ToFloat64(m.Nodes))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Height))
}

func TestVisualizerBuildRejectsEmptyInput(t *testing.T) {
	v, m := newTestVisualizer(t)
	_, err := v.Build([]int{7})
	require.NoError(t, err)

	_, err = v.BuildString("a, b")
	require.True(t, errors.Is(err, ErrEmptyInput))
	_, err = v.Build(nil)
	require.True(t, errors.Is(err, ErrEmptyInput))

	// The previous tree survives a rejected build.
	require.Equal(t, []int{7}, v.Tree().InOrder())
	require.Equal(t, 2.0, testutil.ToFloat64(m.BuildErrors))
}

func TestVisualizerSearchFound(t *testing.T) {
	v, m := newTestVisualizer(t)
	_, err := v.Build([]int{5, 3, 8, 1, 4})
	require.NoError(t, err)

	path, err := v.Search(4)
	require.NoError(t, err)
	require.Equal(t, []int{5, 3, 4}, path.Values())

	tickFor(v, 1300*time.Millisecond)
	four := v.Tree().Node(path[2].Node)
	require.True(t, four.Visited)
	require.True(t, four.Found)
	require.NoError(t, v.Status())

	f := v.Tick(time.Second)
	require.NotNil(t, f.Ring)
	require.Equal(t, 4, f.Ring.Value)
	pos, ok := v.Position(4)
	require.True(t, ok)
	require.Equal(t, pos, f.Ring.Pos)
	require.InDelta(t, v.Layout().RingRadius, f.Ring.Radius, 0.01)

	states := map[int]ColorState{}
	for _, s := range f.Nodes {
		states[s.Value] = s.State
	}
	require.Equal(t, StateVisited, states[5])
	require.Equal(t, StateVisited, states[3])
	require.Equal(t, StateFound, states[4])
	require.Equal(t, StateNormal, states[8])

	require.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues(SearchFound)))
	require.Equal(t, 3.0, testutil.ToFloat64(m.HighlightSteps))
}

func TestVisualizerSearchNotFound(t *testing.T) {
	var signalled []error
	m := NewMetrics(prometheus.NewRegistry())
	v := New(Options{
		Logger:  NoopLogger{},
		Metrics: m,
		Events: HighlightEvents{
			OnNotFound: func(err error) { signalled = append(signalled, err) },
		},
	})
	_, err := v.Build([]int{5, 3, 8, 1, 4})
	require.NoError(t, err)

	path, err := v.Search(7)
	require.NoError(t, err)
	require.Len(t, path, 2)

	v.Tick(0)
	v.Tick(1199 * time.Millisecond)
	require.Empty(t, signalled)
	require.NoError(t, v.Status())

	v.Tick(time.Millisecond)
	require.Len(t, signalled, 1)
	require.True(t, IsNotFound(signalled[0]))
	require.True(t, IsNotFound(v.Status()))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues(SearchNotFound)))
}

func TestVisualizerSearchErrors(t *testing.T) {
	v, m := newTestVisualizer(t)

	_, err := v.Search(1)
	require.True(t, errors.Is(err, ErrEmptyTree))

	_, err = v.SearchString("abc")
	require.True(t, errors.Is(err, ErrInvalidSearchValue))

	require.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues(SearchEmptyTree)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues(SearchInvalidValue)))
}

func TestVisualizerRebuildResetsState(t *testing.T) {
	v, m := newTestVisualizer(t)
	_, err := v.Build([]int{5, 3, 8, 1, 4})
	require.NoError(t, err)
	tickFor(v, time.Second)
	_, err = v.Search(4)
	require.NoError(t, err)
	v.Tick(700 * time.Millisecond) // 5 and 3 marked, 4 pending

	_, err = v.Build([]int{5, 3, 8, 1, 4})
	require.NoError(t, err)
	v.Tree().Walk(func(_ NodeIndex, n *TreeNode, _ int) {
		require.False(t, n.Visited, "node %d visited", n.Value)
		require.False(t, n.Found, "node %d found", n.Value)
		require.Equal(t, EntranceOffset, n.VerticalOffset)
		require.Equal(t, 0.0, n.Opacity)
	})

	// The pending mark from before the rebuild is discarded.
	v.Tick(5 * time.Second)
	v.Tree().Walk(func(_ NodeIndex, n *TreeNode, _ int) {
		require.False(t, n.Visited || n.Found, "stale highlight on %d", n.Value)
	})
	require.Equal(t, 0, v.Pending())
	require.Equal(t, 1.0, testutil.ToFloat64(m.StaleTasks))
}

func TestVisualizerDelete(t *testing.T) {
	v, m := newTestVisualizer(t)
	_, err := v.Build([]int{2, 1, 3})
	require.NoError(t, err)
	_, err = v.Search(3)
	require.NoError(t, err)
	v.Tick(0)

	v.Delete()
	_, ok := v.Summary()
	require.False(t, ok)
	require.True(t, v.Tree().Empty())
	_, ok = v.Position(2)
	require.False(t, ok)

	f := v.Tick(time.Second)
	require.Empty(t, f.Nodes)
	require.Empty(t, f.Edges)
	require.Nil(t, f.Ring)
	require.Equal(t, -1.0, testutil.ToFloat64(m.Height))

	_, err = v.Search(2)
	require.True(t, errors.Is(err, ErrEmptyTree))
}

func TestVisualizerSearchDuringEntrance(t *testing.T) {
	v, _ := newTestVisualizer(t)
	_, err := v.Build([]int{5, 3})
	require.NoError(t, err)

	_, err = v.Search(3)
	require.NoError(t, err)
	f := v.Tick(0)
	for _, s := range f.Nodes {
		if s.Value == 5 {
			require.Equal(t, StateVisited, s.State)
			require.Less(t, s.Opacity, 1.0)
		}
	}
	require.False(t, v.Settled())
}

func TestVisualizerFramesCounted(t *testing.T) {
	v, m := newTestVisualizer(t)
	for i := 0; i < 3; i++ {
		v.Tick(time.Millisecond)
	}
	require.Equal(t, 3.0, testutil.ToFloat64(m.Frames))
	require.Equal(t, 3*time.Millisecond, v.Now())
}
