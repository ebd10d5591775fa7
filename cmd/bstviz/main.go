// Command bstviz builds binary search trees from integer lists and animates
// them in a window or a terminal, or inspects them headlessly.
package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/bstviz"
)

// app owns the command tree and the flag state shared between commands.
type app struct {
	Root    *cobra.Command
	GUI     *cobra.Command
	TUI     *cobra.Command
	Summary *cobra.Command
	Search  *cobra.Command
	Frames  *cobra.Command

	stepDelay   time.Duration
	debug       bool
	dark        bool
	metricsAddr string

	showFPS       bool
	script        string
	exitWhenDone  bool
	screenshotDir string

	profile   bool
	ticks     int
	searchFor string
}

func newApp() *app {
	a := &app{}
	a.Root = &cobra.Command{
		Use:   "bstviz [command] (flags)",
		Short: "binary search tree visualizer",
		Long: `
Build a binary search tree from a list of integers, inserted in order, and
watch it animate. Searches light up the root-to-target path one node at a
time.
`,
		SilenceUsage: true,
	}
	a.GUI = &cobra.Command{
		Use:   "gui [values]",
		Short: "open the visualizer window",
		RunE:  a.runGUI,
	}
	a.TUI = &cobra.Command{
		Use:   "tui [values]",
		Short: "run the visualizer in the terminal",
		RunE:  a.runTUI,
	}
	a.Summary = &cobra.Command{
		Use:   "summary <values>",
		Short: "print traversals and metrics of a tree",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runSummary,
	}
	a.Search = &cobra.Command{
		Use:   "search <values> <target>",
		Short: "replay a highlighted search on the virtual clock",
		Long: `
Build a tree from <values> and print each highlight step of a search for
<target> with the time it lights up. Exits non-zero when the target is
absent.
`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.runSearch,
	}
	a.Frames = &cobra.Command{
		Use:   "frames <values>",
		Short: "dump the render frame after a number of ticks",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runFrames,
	}

	a.Root.AddCommand(a.GUI, a.TUI, a.Summary, a.Search, a.Frames)
	a.Root.PersistentFlags().DurationVar(
		&a.stepDelay, "step-delay", bstviz.DefaultStepDelay, "pause between highlighted path nodes")
	a.Root.PersistentFlags().BoolVarP(
		&a.debug, "debug", "v", false, "log frame stats and layout warnings")

	for _, cmd := range []*cobra.Command{a.GUI, a.TUI} {
		cmd.Flags().BoolVar(&a.dark, "dark", false, "start with the dark palette")
		cmd.Flags().StringVar(
			&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	}
	a.GUI.Flags().BoolVar(&a.showFPS, "fps", false, "show an FPS overlay")
	a.GUI.Flags().StringVar(&a.script, "script", "", "JSON script to replay")
	a.GUI.Flags().BoolVar(&a.exitWhenDone, "exit", false, "close the window when the script finishes")
	a.GUI.Flags().StringVar(&a.screenshotDir, "screenshots", "screenshots", "directory for screenshots")

	a.Summary.Flags().BoolVar(&a.profile, "profile", false, "plot the number of nodes per level")
	a.Frames.Flags().IntVar(&a.ticks, "ticks", 1, "number of 60Hz ticks to run")
	a.Frames.Flags().StringVar(&a.searchFor, "search", "", "start a search before ticking")
	return a
}

// options returns the Visualizer options implied by the persistent flags.
func (a *app) options() bstviz.Options {
	return bstviz.Options{StepDelay: a.stepDelay, Debug: a.debug}
}

// parseValues reads a comma separated list that may be split across
// arguments.
func parseValues(args []string) ([]int, error) {
	return bstviz.ParseValues(strings.Join(args, ","))
}

func (a *app) execute(args []string, out io.Writer) error {
	a.Root.SetArgs(args)
	a.Root.SetOut(out)
	a.Root.SetErr(out)
	return a.Root.Execute()
}

func main() {
	log.SetFlags(0)
	cobra.EnableCommandSorting = false

	if err := newApp().execute(os.Args[1:], os.Stdout); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
