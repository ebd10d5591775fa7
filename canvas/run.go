// Package canvas draws a bstviz session in an Ebitengine window.
//
// The window shows the tree, a summary panel and a one-line prompt. Type a
// comma-separated list and press Enter to build, "search 4" to search,
// "delete" to clear. Clicking a node searches for it. F2 toggles the dark
// palette and F12 saves a screenshot.
package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bstviz"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS overlays FPS and TPS in the top-right corner.
	ShowFPS bool
	// Dark starts with the dark palette.
	Dark bool
	// ScreenshotDir receives PNGs from F12 and script screenshot steps.
	// Defaults to "screenshots".
	ScreenshotDir string
	// Script, when non-nil, is stepped once per frame.
	Script *Script
	// ExitWhenScriptDone closes the window after the last script step.
	ExitWhenScriptDone bool
	// Logger receives screenshot and command errors. Defaults to
	// bstviz.DefaultLogger.
	Logger bstviz.Logger
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "BST Visualizer"
	}
	if c.Width <= 0 {
		c.Width = 1000
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Logger == nil {
		c.Logger = bstviz.DefaultLogger{}
	}
	return c
}

// Run opens a window for v and blocks until it is closed. It must be called
// from the main goroutine.
func Run(v *bstviz.Visualizer, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	g, err := NewGame(v, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
