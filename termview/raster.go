package termview

import (
	"math"
	"strconv"
	"strings"

	"github.com/phanxgames/bstviz"
)

// Pixels per terminal cell. Cells are roughly twice as tall as wide.
const (
	pxPerCol = 10.0
	pxPerRow = 20.0
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellEdge
	cellNode
	cellVisited
	cellFound
	cellRing
)

type cell struct {
	r     rune
	kind  cellKind
	faint bool
}

// raster is a character grid a Frame is rasterised into.
type raster struct {
	cols, rows int
	cells      []cell
}

func newRaster(cols, rows int) *raster {
	cols, rows = max(cols, 0), max(rows, 0)
	r := &raster{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range r.cells {
		r.cells[i].r = ' '
	}
	return r
}

func (r *raster) set(col, row int, c cell) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.cells[row*r.cols+col] = c
}

func (r *raster) at(col, row int) cell { return r.cells[row*r.cols+col] }

func toCell(p bstviz.Vec2) (int, int) {
	return int(math.Round(p.X / pxPerCol)), int(math.Round(p.Y / pxPerRow))
}

// draw rasterises f: edges first, then node labels on top.
func (r *raster) draw(f bstviz.Frame) {
	for _, e := range f.Edges {
		r.line(e.From, e.To, e.Opacity < 0.5)
	}
	ringAt, hasRing := 0, f.Ring != nil
	if hasRing {
		ringAt = f.Ring.Value
	}
	for _, n := range f.Nodes {
		kind := cellNode
		switch n.State {
		case bstviz.StateVisited:
			kind = cellVisited
		case bstviz.StateFound:
			kind = cellFound
		}
		lb, rb := '(', ')'
		if hasRing && n.Value == ringAt {
			lb, rb = '[', ']'
			kind = cellRing
		}
		label := []rune(string(lb) + strconv.Itoa(n.Value) + string(rb))
		col, row := toCell(n.Pos)
		start := col - len(label)/2
		for i, ch := range label {
			r.set(start+i, row, cell{r: ch, kind: kind, faint: n.Opacity < 0.5})
		}
	}
}

// line draws an edge between the rows of its endpoints, leaving the rows the
// nodes sit on free for their labels.
func (r *raster) line(from, to bstviz.Vec2, faint bool) {
	c0, r0 := toCell(from)
	c1, r1 := toCell(to)
	if r1 <= r0+1 {
		return
	}
	ch := '|'
	switch {
	case c1 < c0:
		ch = '/'
	case c1 > c0:
		ch = '\\'
	}
	for row := r0 + 1; row < r1; row++ {
		t := float64(row-r0) / float64(r1-r0)
		col := int(math.Round(float64(c0) + t*float64(c1-c0)))
		r.set(col, row, cell{r: ch, kind: cellEdge, faint: faint})
	}
}

// String returns the grid as plain text with trailing spaces trimmed.
func (r *raster) String() string {
	var b strings.Builder
	for row := 0; row < r.rows; row++ {
		line := make([]rune, r.cols)
		for col := range line {
			line[col] = r.at(col, row).r
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		if row < r.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// styled renders the grid with st, batching runs of identical cells.
func (r *raster) styled(st styles) string {
	var b strings.Builder
	for row := 0; row < r.rows; row++ {
		col := 0
		for col < r.cols {
			c := r.at(col, row)
			end := col + 1
			for end < r.cols {
				n := r.at(end, row)
				if n.kind != c.kind || n.faint != c.faint {
					break
				}
				end++
			}
			var run strings.Builder
			for i := col; i < end; i++ {
				run.WriteRune(r.at(i, row).r)
			}
			b.WriteString(st.cell(c).Render(run.String()))
			col = end
		}
		if row < r.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
