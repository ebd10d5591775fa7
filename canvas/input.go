package canvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bstviz"
)

// click is a synthetic left click in screen coordinates.
type click struct {
	x, y float64
}

// InjectClick queues a click at (x, y). One queued click is consumed per
// frame, ahead of real mouse input.
func (g *Game) InjectClick(x, y float64) {
	g.clicks = append(g.clicks, click{x, y})
}

func (g *Game) handleInput() {
	if len(g.clicks) > 0 {
		c := g.clicks[0]
		g.clicks = g.clicks[1:]
		g.clickAt(c.x, c.y)
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.clickAt(float64(x), float64(y))
	}

	g.line = ebiten.AppendInputChars(g.line)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.submit()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		if len(g.line) > 0 {
			g.line = g.line[:len(g.line)-1]
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.line = g.line[:0]
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		g.toggleTheme()
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.Screenshot(fmt.Sprintf("tick-%d", g.vis.Now().Milliseconds()))
	}
}

// clickAt searches for the node under (x, y), if any.
func (g *Game) clickAt(x, y float64) {
	v, ok := nodeAt(g.frame, g.vis.Layout().NodeRadius, x, y)
	if !ok {
		return
	}
	g.exec(bstviz.Command{Kind: bstviz.CmdSearch, Arg: fmt.Sprint(v)})
}

// submit parses and runs the prompt line.
func (g *Game) submit() {
	line := string(g.line)
	g.line = g.line[:0]
	c, err := bstviz.ParseCommand(line)
	if err != nil {
		g.setStatus(err.Error(), true)
		return
	}
	g.exec(c)
}
