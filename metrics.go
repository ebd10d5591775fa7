package bstviz

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Search result label values.
const (
	SearchFound        = "found"
	SearchNotFound     = "not_found"
	SearchEmptyTree    = "empty_tree"
	SearchInvalidValue = "invalid_value"
)

// Metrics holds the Prometheus collectors a Visualizer updates. A nil
// *Metrics disables collection.
type Metrics struct {
	Builds         prometheus.Counter
	BuildErrors    prometheus.Counter
	Searches       *prometheus.CounterVec
	HighlightSteps prometheus.Counter
	StaleTasks     prometheus.Counter
	Frames         prometheus.Counter
	Nodes          prometheus.Gauge
	Height         prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstviz",
			Name:      "builds_total",
			Help:      "Trees built.",
		}),
		BuildErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstviz",
			Name:      "build_errors_total",
			Help:      "Build requests rejected for empty input.",
		}),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bstviz",
			Name:      "searches_total",
			Help:      "Completed or rejected searches by result.",
		}, []string{"result"}),
		HighlightSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstviz",
			Name:      "highlight_steps_total",
			Help:      "Path nodes marked visited.",
		}),
		StaleTasks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstviz",
			Name:      "stale_tasks_total",
			Help:      "Highlight tasks discarded because a newer search or build superseded them.",
		}),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstviz",
			Name:      "frames_total",
			Help:      "Animation ticks processed.",
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bstviz",
			Name:      "tree_nodes",
			Help:      "Nodes in the current tree.",
		}),
		Height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bstviz",
			Name:      "tree_height",
			Help:      "Height of the current tree (-1 when empty).",
		}),
	}
	m.Height.Set(-1)
	if reg != nil {
		reg.MustRegister(
			m.Builds, m.BuildErrors, m.Searches, m.HighlightSteps,
			m.StaleTasks, m.Frames, m.Nodes, m.Height,
		)
	}
	return m
}

func (m *Metrics) observeTree(s Summary) {
	if m == nil {
		return
	}
	m.Nodes.Set(float64(s.Nodes))
	m.Height.Set(float64(s.Height))
}

func (m *Metrics) search(result string) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(result).Inc()
}
