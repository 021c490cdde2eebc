package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/trakai/internal/config"
	"git.home.luguber.info/inful/trakai/internal/logfields"
	"git.home.luguber.info/inful/trakai/internal/metrics"
	"git.home.luguber.info/inful/trakai/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	MetricsFile string `name:"metrics-file" help:"Write build metrics in Prometheus text format to this file"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunBuild(ctx, g, cfg, b.MetricsFile)
}

// RunBuild builds the site described by cfg and prints the summary.
func RunBuild(ctx context.Context, g *Global, cfg *config.Config, metricsFile string) error {
	var (
		recorder metrics.Recorder = metrics.NoopRecorder{}
		reg      *prom.Registry
	)
	if metricsFile != "" {
		reg = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
	}

	report, err := site.NewBuilder(cfg, site.WithLogger(g.Logger), site.WithRecorder(recorder)).Build(ctx)

	if reg != nil {
		if werr := metrics.WriteTextfile(metricsFile, reg); werr != nil {
			g.Logger.Warn("Failed to write metrics file", logfields.Path(metricsFile), logfields.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(g.Out, "Built %d posts into %s (%d files)\n", report.Records, cfg.OutputDir(), len(report.Pages))
	for _, w := range report.Warnings {
		_, _ = fmt.Fprintf(g.Out, "warning: %s\n", w)
	}
	return nil
}
