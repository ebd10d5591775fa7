package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/kr/pretty"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/phanxgames/bstviz"
)

// frameDT is one tick at 60 TPS.
const frameDT = time.Second / 60

func (a *app) build(args []string) (*bstviz.Visualizer, bstviz.Summary, error) {
	values, err := parseValues(args)
	if err != nil {
		return nil, bstviz.Summary{}, err
	}
	opts := a.options()
	opts.Logger = bstviz.NoopLogger{}
	v := bstviz.New(opts)
	s, err := v.Build(values)
	return v, s, err
}

func (a *app) runSummary(cmd *cobra.Command, args []string) error {
	v, s, err := a.build(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	writeSummaryTable(out, s)

	if a.profile {
		widths := v.Tree().LevelWidths()
		data := make([]float64, len(widths))
		for i, w := range widths {
			data[i] = float64(w)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(data,
			asciigraph.Height(max(s.Height+1, 4)),
			asciigraph.Caption("nodes per level")))
	}
	return nil
}

func writeSummaryTable(w io.Writer, s bstviz.Summary) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", "Value"})
	tbl.SetAutoWrapText(false)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	tbl.AppendBulk([][]string{
		{"Inorder", bstviz.JoinValues(s.InOrder)},
		{"Preorder", bstviz.JoinValues(s.PreOrder)},
		{"Postorder", bstviz.JoinValues(s.PostOrder)},
		{"Total nodes", strconv.Itoa(s.Nodes)},
		{"Leaf nodes", strconv.Itoa(s.Leaves)},
		{"Height", strconv.Itoa(s.Height)},
	})
	tbl.Render()
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	opts := a.options()
	opts.Logger = bstviz.NoopLogger{}
	opts.Events = bstviz.HighlightEvents{
		OnVisit: func(st bstviz.PathStep) {
			fmt.Fprintf(out, "%-8s visit %d\n", st.Delay, st.Value)
		},
		OnFound: func(st bstviz.PathStep) {
			fmt.Fprintf(out, "%-8s found %d\n", st.Delay, st.Value)
		},
	}
	values, err := parseValues(args[:len(args)-1])
	if err != nil {
		return err
	}
	v := bstviz.New(opts)
	if _, err := v.Build(values); err != nil {
		return err
	}
	if _, err := v.SearchString(args[len(args)-1]); err != nil {
		return err
	}
	for v.Pending() > 0 {
		v.Tick(v.StepDelay())
	}
	if err := v.Status(); err != nil {
		return errors.Wrapf(err, "after %s", v.Now())
	}
	return nil
}

func (a *app) runFrames(cmd *cobra.Command, args []string) error {
	if a.ticks < 1 {
		return errors.Newf("--ticks must be positive, got %d", a.ticks)
	}
	v, _, err := a.build(args)
	if err != nil {
		return err
	}
	if a.searchFor != "" {
		if _, err := v.SearchString(a.searchFor); err != nil {
			return err
		}
	}
	var f bstviz.Frame
	for i := 0; i < a.ticks; i++ {
		f = v.Tick(frameDT)
	}
	_, err = pretty.Fprintf(cmd.OutOrStdout(), "%# v\n", f)
	return err
}
