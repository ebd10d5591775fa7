package canvas

import (
	"testing"
	"time"

	"github.com/phanxgames/bstviz"
)

func TestNodeAt(t *testing.T) {
	f := bstviz.Frame{Nodes: []bstviz.NodeSprite{
		{Value: 3, Pos: bstviz.Vec2{X: 100, Y: 100}, Opacity: 1},
		{Value: 5, Pos: bstviz.Vec2{X: 110, Y: 100}, Opacity: 1},
		{Value: 9, Pos: bstviz.Vec2{X: 300, Y: 100}, Opacity: 0},
	}}
	if v, ok := nodeAt(f, 22, 105, 100); !ok || v != 5 {
		t.Errorf("overlap: got %d,%v want 5 (drawn last)", v, ok)
	}
	if v, ok := nodeAt(f, 22, 80, 100); !ok || v != 3 {
		t.Errorf("got %d,%v want 3", v, ok)
	}
	if _, ok := nodeAt(f, 22, 300, 100); ok {
		t.Error("invisible node should not be hit")
	}
	if _, ok := nodeAt(f, 22, 500, 500); ok {
		t.Error("empty space should not be hit")
	}
}

func TestGameClickSearches(t *testing.T) {
	g := newTestGame(t)
	g.exec(bstviz.Command{Kind: bstviz.CmdBuild, Arg: "5,3,8"})
	// The first frame shows the nodes fully transparent; click on the second.
	g.vis.Tick(time.Millisecond)
	g.frame = g.vis.Tick(time.Millisecond)

	p, ok := g.vis.Position(8)
	if !ok {
		t.Fatal("8 not placed")
	}
	g.clickAt(p.X, p.Y)
	if g.Status() != "searching: 5 -> 8" {
		t.Errorf("status = %q", g.Status())
	}
}

func TestGameSubmit(t *testing.T) {
	g := newTestGame(t)

	g.line = []rune("5, 3, 8")
	g.submit()
	if g.statusErr || g.vis.Tree().Len() != 3 {
		t.Fatalf("build failed: %q", g.Status())
	}
	if len(g.line) != 0 {
		t.Error("prompt not cleared")
	}

	g.line = []rune("search x")
	g.submit()
	if !g.statusErr {
		t.Errorf("expected error status, got %q", g.Status())
	}

	g.line = []rune("frobnicate")
	g.submit()
	if !g.statusErr {
		t.Errorf("expected error status, got %q", g.Status())
	}

	g.line = []rune("theme")
	g.submit()
	if !g.dark || g.palette != bstviz.DarkPalette {
		t.Error("theme command did not switch to dark")
	}

	g.line = []rune("quit")
	g.submit()
	if !g.quit {
		t.Error("quit command ignored")
	}
}

func TestGameLayoutResizesVisualizer(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Fatalf("Layout = %d,%d", w, h)
	}
	if a := g.vis.Layout().Anchor(); a.X != 320 {
		t.Errorf("anchor x = %v, want 320", a.X)
	}
}
