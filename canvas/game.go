package canvas

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/bstviz"
)

// Game adapts a Visualizer to ebiten.Game.
type Game struct {
	vis *bstviz.Visualizer
	cfg RunConfig

	palette bstviz.Palette
	dark    bool

	labelFace *text.GoTextFace
	panelFace *text.GoTextFace

	frame     bstviz.Frame
	line      []rune
	status    string
	statusErr bool

	clicks []click
	shots  []string
	fps    *fpsOverlay
	quit   bool
}

// NewGame creates a Game for v. It does not open a window; pass the result
// to ebiten.RunGame or use Run.
func NewGame(v *bstviz.Visualizer, cfg RunConfig) (*Game, error) {
	cfg = cfg.withDefaults()
	labelFace, err := loadFace(labelSize)
	if err != nil {
		return nil, err
	}
	panelFace, err := loadFace(panelSize)
	if err != nil {
		return nil, err
	}
	g := &Game{
		vis:       v,
		cfg:       cfg,
		labelFace: labelFace,
		panelFace: panelFace,
	}
	g.setTheme(cfg.Dark)
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	g.setStatus("type values and press Enter, or \"search N\"", false)
	return g, nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())

	if s := g.cfg.Script; s != nil {
		s.step(g)
	}
	g.handleInput()
	g.frame = g.vis.Tick(dt)
	if g.fps != nil {
		g.fps.update(dt.Seconds())
	}

	if g.quit {
		return ebiten.Termination
	}
	if s := g.cfg.Script; s != nil && s.Done() && g.cfg.ExitWhenScriptDone && len(g.shots) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background.RGBA(1))
	drawFrame(screen, g.frame, g.palette, g.vis.Layout().NodeRadius, g.labelFace)
	g.drawPanel(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The tree is re-anchored to the new width.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := g.vis.Layout()
	if l.Width != float64(outsideWidth) || l.Height != float64(outsideHeight) {
		g.vis.SetSize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	h := float64(screen.Bounds().Dy())
	lh := lineHeight(g.panelFace)

	var lines []string
	if s, ok := g.vis.Summary(); ok {
		lines = s.Lines()
	}
	y := h - panelMargin - lh*float64(len(lines)+2)
	drawLines(screen, lines, g.panelFace, panelMargin, y, g.palette.Text)

	status := g.palette.Text
	if g.statusErr {
		status = g.palette.Ring
	}
	drawLines(screen, []string{g.status}, g.panelFace, panelMargin, h-panelMargin-2*lh, status)
	drawLines(screen, []string{"> " + string(g.line) + "_"}, g.panelFace, panelMargin, h-panelMargin-lh, g.palette.Text)
}

// exec runs a command and reports the outcome in the status line.
func (g *Game) exec(c bstviz.Command) {
	switch c.Kind {
	case bstviz.CmdTheme:
		g.toggleTheme()
		return
	case bstviz.CmdQuit:
		g.quit = true
		return
	}
	msg, err := g.vis.Exec(c)
	if err != nil {
		g.setStatus(err.Error(), true)
		return
	}
	g.setStatus(msg, false)
}

func (g *Game) setStatus(msg string, isErr bool) {
	g.status = msg
	g.statusErr = isErr
}

func (g *Game) setTheme(dark bool) {
	g.dark = dark
	if dark {
		g.palette = bstviz.DarkPalette
	} else {
		g.palette = bstviz.LightPalette
	}
}

func (g *Game) toggleTheme() { g.setTheme(!g.dark) }

// Status returns the text shown in the status line.
func (g *Game) Status() string { return g.status }
