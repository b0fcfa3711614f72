package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/tebeka/atexit"

	"github.com/anggasct/trafficlight"
	"github.com/anggasct/trafficlight/internal/config"
	"github.com/anggasct/trafficlight/internal/intersection"
	"github.com/anggasct/trafficlight/pkg/observers"
	"github.com/anggasct/trafficlight/visualization"
)

type CLI struct {
	Config   string           `help:"config file path or URL (file, http(s), s3)" short:"c" env:"TRAFFICLIGHT_CONFIG"`
	Debug    bool             `help:"debug mode" short:"d" default:"false"`
	Duration time.Duration    `help:"override the run duration, 0 runs until interrupted" short:"t"`
	DOT      bool             `help:"print the phase graph of the first light as Graphviz DOT and exit" name:"dot"`
	Version  kong.VersionFlag `help:"show version" short:"v"`
}

func (c *CLI) loadConfig(ctx context.Context) (*config.Config, error) {
	if c.Config == "" {
		return config.Default(), nil
	}
	return config.Load(ctx, c.Config)
}

func run(ctx context.Context, cli *CLI) error {
	cfg, err := cli.loadConfig(ctx)
	if err != nil {
		return err
	}
	if cli.Duration != 0 {
		cfg.Intersection.Duration = cli.Duration
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logLevel.Set(cfg.Log.Level)
	if cli.Debug {
		logLevel.Set(slog.LevelDebug)
	}

	metrics := observers.NewMetricsObserver()
	validation := observers.NewValidationObserver(cfg.Light.MinCycle, cfg.Light.MaxCycle)
	logging := observers.NewLoggingObserver(logger, slog.LevelInfo)

	in, err := intersection.New(cfg, logger, logging, metrics, validation)
	if err != nil {
		return err
	}

	if cli.DOT {
		dot, err := visualization.NewDOTGenerator(in.Lights()[0]).Generate()
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, dot)
		return nil
	}

	atexit.Register(in.Stop)
	if err := in.Run(ctx); err != nil {
		return err
	}

	report(in, metrics, validation)
	if validation.HasViolations() {
		return fmt.Errorf("%d invariant violations observed", len(validation.GetViolations()))
	}
	return nil
}

func report(in *intersection.Intersection, metrics *observers.MetricsObserver, validation *observers.ValidationObserver) {
	spent := metrics.GetPhaseTimeSpent()
	visits := metrics.GetPhaseVisitCounts()
	for _, phase := range trafficlight.Phases() {
		logger.Info("phase summary",
			"phase", phase,
			"visits", visits[phase],
			"time_spent", spent[phase])
	}
	for _, light := range in.Lights() {
		attrs := []any{
			"light_id", light.ID().String(),
			"crossings", in.CrossingsFor(light.ID()),
			"phase", light.CurrentPhase(),
			"pending", light.Pending(),
		}
		if last := metrics.GetLastTransition(light.ID()); last != nil {
			attrs = append(attrs, "last_transition", last.String())
		}
		logger.Info("light summary", attrs...)
	}
	logger.Info("run summary",
		"crossings", in.Crossings(),
		"transitions", metrics.GetTransitionCounts(),
		"errors", metrics.GetErrorCount())
	for _, v := range validation.GetViolations() {
		logger.Warn("violation", "detail", v)
	}
}
