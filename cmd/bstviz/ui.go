package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/bstviz"
	"github.com/phanxgames/bstviz/canvas"
	"github.com/phanxgames/bstviz/termview"
)

// session creates the Visualizer for an interactive command, wiring metrics
// when --metrics-addr is set, and builds the initial tree from args if any.
func (a *app) session(args []string, logger bstviz.Logger) (*bstviz.Visualizer, *prometheus.Registry, error) {
	opts := a.options()
	opts.Logger = logger
	var reg *prometheus.Registry
	if a.metricsAddr != "" {
		reg = prometheus.NewRegistry()
		opts.Metrics = bstviz.NewMetrics(reg)
	}
	v := bstviz.New(opts)
	if len(args) > 0 {
		if _, err := v.BuildString(strings.Join(args, ",")); err != nil {
			return nil, nil, err
		}
	}
	return v, reg, nil
}

func (a *app) runGUI(cmd *cobra.Command, args []string) error {
	v, reg, err := a.session(args, bstviz.DefaultLogger{})
	if err != nil {
		return err
	}
	cfg := canvas.RunConfig{
		Width:              int(v.Layout().Width),
		Height:             720,
		ShowFPS:            a.showFPS,
		Dark:               a.dark,
		ScreenshotDir:      a.screenshotDir,
		ExitWhenScriptDone: a.exitWhenDone,
	}
	if a.script != "" {
		data, err := os.ReadFile(a.script)
		if err != nil {
			return errors.Wrap(err, "read script")
		}
		if cfg.Script, err = canvas.LoadScript(data); err != nil {
			return err
		}
	}
	return a.withMetrics(cmd.Context(), reg, func() error {
		return canvas.Run(v, cfg)
	})
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the program; debug lines would corrupt it.
	logger := bstviz.Logger(bstviz.NoopLogger{})
	if a.debug {
		logger = bstviz.DefaultLogger{}
	}
	v, reg, err := a.session(args, logger)
	if err != nil {
		return err
	}
	return a.withMetrics(cmd.Context(), reg, func() error {
		return termview.Run(v, a.dark)
	})
}

// withMetrics runs ui on the calling goroutine, serving reg on
// --metrics-addr until ui returns.
func (a *app) withMetrics(ctx context.Context, reg *prometheus.Registry, ui func() error) error {
	if reg == nil {
		return ui()
	}
	ln, err := net.Listen("tcp", a.metricsAddr)
	if err != nil {
		return errors.Wrap(err, "metrics listener")
	}
	return serveMetrics(ctx, ln, reg, ui)
}

// serveMetrics serves reg at /metrics on ln while run executes, then shuts
// the server down. run's error takes precedence.
func serveMetrics(ctx context.Context, ln net.Listener, reg *prometheus.Registry, run func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "metrics server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown(context.Background())
	})

	err := run()
	cancel()
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}
