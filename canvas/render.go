package canvas

import (
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/bstviz"
)

const (
	edgeWidth   = 2
	strokeWidth = 2
	ringWidth   = 4
	panelMargin = 16
)

// drawFrame paints edges first, then nodes, then the found ring.
func drawFrame(dst *ebiten.Image, f bstviz.Frame, p bstviz.Palette, radius float64, face *text.GoTextFace) {
	for _, e := range f.Edges {
		vector.StrokeLine(dst,
			float32(e.From.X), float32(e.From.Y), float32(e.To.X), float32(e.To.Y),
			edgeWidth, p.Edge.RGBA(e.Opacity), true)
	}
	r := float32(radius)
	for _, n := range f.Nodes {
		x, y := float32(n.Pos.X), float32(n.Pos.Y)
		vector.DrawFilledCircle(dst, x, y, r, p.Fill(n.State).RGBA(n.Opacity), true)
		vector.StrokeCircle(dst, x, y, r, strokeWidth, p.Stroke.RGBA(n.Opacity), true)
		drawCentered(dst, strconv.Itoa(n.Value), face, n.Pos, p.Label, n.Opacity)
	}
	if ring := f.Ring; ring != nil {
		vector.StrokeCircle(dst, float32(ring.Pos.X), float32(ring.Pos.Y),
			float32(ring.Radius), ringWidth, p.Ring.RGBA(1), true)
	}
}

func drawCentered(dst *ebiten.Image, s string, face *text.GoTextFace, at bstviz.Vec2, c bstviz.Color, opacity float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c.RGBA(1))
	op.ColorScale.ScaleAlpha(float32(opacity))
	text.Draw(dst, s, face, op)
}

// drawLines draws lines top-down starting at (x, y).
func drawLines(dst *ebiten.Image, lines []string, face *text.GoTextFace, x, y float64, c bstviz.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = lineHeight(face)
	op.ColorScale.ScaleWithColor(c.RGBA(1))
	text.Draw(dst, strings.Join(lines, "\n"), face, op)
}

// nodeAt returns the value of the node under (x, y). Later nodes are drawn
// on top, so they win.
func nodeAt(f bstviz.Frame, radius, x, y float64) (int, bool) {
	for i := len(f.Nodes) - 1; i >= 0; i-- {
		n := f.Nodes[i]
		if n.Opacity <= 0 {
			continue
		}
		if math.Hypot(x-n.Pos.X, y-n.Pos.Y) <= radius {
			return n.Value, true
		}
	}
	return 0, false
}
