package bstviz

import (
	"math/rand"
	"testing"
	"time"
)

// benchValues returns a fixed pseudo-random permutation of 0..n-1, giving a
// tree of roughly logarithmic height.
func benchValues(n int) []int {
	return rand.New(rand.NewSource(1)).Perm(n)
}

func setupBenchVisualizer(b *testing.B, n int) *Visualizer {
	b.Helper()
	v := New(Options{Logger: NoopLogger{}})
	if _, err := v.Build(benchValues(n)); err != nil {
		b.Fatal(err)
	}
	return v
}

// --- Tree ---

func BenchmarkBuild_1000(b *testing.B) {
	values := benchValues(1000)
	t := NewTree()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t.Build(values)
	}
}

func BenchmarkSummarize_1000(b *testing.B) {
	t := NewTree()
	t.Build(benchValues(1000))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Summarize(t)
	}
}

// --- Tick ---

func BenchmarkTick_1000Nodes_Settled(b *testing.B) {
	v := setupBenchVisualizer(b, 1000)
	for !v.Settled() {
		v.Tick(time.Millisecond)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Tick(time.Millisecond)
	}
}

func BenchmarkTick_1000Nodes_Searching(b *testing.B) {
	v := setupBenchVisualizer(b, 1000)
	v.Tick(time.Millisecond) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if i%64 == 0 {
			if _, err := v.Search(i % 1000); err != nil {
				b.Fatal(err)
			}
		}
		v.Tick(100 * time.Millisecond)
	}
}

// --- Scheduler ---

func BenchmarkScheduler_SupersededSearches(b *testing.B) {
	var s Scheduler
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen := uint64(i)
		for j := 0; j < 8; j++ {
			s.After(time.Duration(j)*DefaultStepDelay, gen, func() {})
		}
		s.CancelThrough(gen)
		s.Advance(DefaultStepDelay)
	}
}
