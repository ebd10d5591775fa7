package canvas

import (
	"testing"

	"github.com/phanxgames/bstviz"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	v := bstviz.New(bstviz.Options{Logger: bstviz.NoopLogger{}})
	g, err := NewGame(v, RunConfig{Logger: bstviz.NoopLogger{}})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "build", "input": "5,3,8"},
			{"action": "wait", "frames": 3},
			{"action": "click", "x": 500, "y": 50},
			{"action": "screenshot", "label": "after-click"}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(s.steps))
	}
	if s.steps[0].Action != "build" || s.steps[0].Input != "5,3,8" {
		t.Error("step 0 mismatch")
	}
	if s.steps[2].X != 500 || s.steps[2].Y != 50 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	for _, data := range []string{
		`not json`,
		`{"steps": []}`,
		`{"steps": [{"action": "explode"}]}`,
	} {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("LoadScript(%s): expected error", data)
		}
	}
}

func TestScriptStep_BuildWaitSearch(t *testing.T) {
	g := newTestGame(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "build", "input": "5,3,8,1,4"},
		{"action": "wait", "frames": 2},
		{"action": "search", "input": "4"},
		{"action": "screenshot", "label": "searching"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	s.step(g)
	if got := g.vis.Tree().Len(); got != 5 {
		t.Fatalf("after build: %d nodes, want 5", got)
	}
	// Two wait frames: the step itself and one more.
	s.step(g)
	s.step(g)
	if g.vis.Pending() != 0 {
		t.Fatal("search ran before the wait elapsed")
	}
	s.step(g)
	if g.Status() != "searching: 5 -> 3 -> 4" {
		t.Errorf("status = %q", g.Status())
	}
	if g.vis.Pending() != 3 {
		t.Errorf("pending = %d, want 3", g.vis.Pending())
	}
	if s.Done() {
		t.Fatal("done before screenshot step")
	}
	s.step(g)
	if len(g.shots) != 1 || g.shots[0] != "searching" {
		t.Errorf("shots = %v", g.shots)
	}
	if !s.Done() {
		t.Error("script should be done after last step")
	}
}

func TestScriptStep_ClickWaitsForQueue(t *testing.T) {
	g := newTestGame(t)
	s, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 1, "y": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.step(g)
	if len(g.clicks) != 1 {
		t.Fatalf("expected 1 queued click, got %d", len(g.clicks))
	}
	if s.Done() {
		t.Error("script should not be done while a click is queued")
	}
	g.clicks = g.clicks[:0]
	s.step(g)
	if !s.Done() {
		t.Error("script should be done once the queue drains")
	}
}
