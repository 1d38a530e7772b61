// README: Entry point; loads config, parses seed events, runs the simulation, prints the report.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"ridesim/internal/config"
	"ridesim/internal/modules/dispatch"
	"ridesim/internal/modules/monitor"
	"ridesim/internal/modules/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		horizon    int
		format     string
		logLevel   string
	)

	flagSet := pflag.NewFlagSet("ridesim", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file")
	flagSet.IntVar(&horizon, "horizon", -1, "last simulated timestamp to process (0 = no horizon)")
	flagSet.StringVar(&format, "format", "", "report format: text or json")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ridesim [flags] <events-file>\n\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("want exactly one events file, got %d arguments", flagSet.NArg())
	}
	eventsPath := flagSet.Arg(0)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if horizon >= 0 {
		cfg.Sim.Horizon = horizon
	}
	if format != "" {
		cfg.Report.Format = format
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := sim.LoadEvents(eventsPath)
	if err != nil {
		return err
	}
	logger.Info("seed events loaded", "file", eventsPath, "count", len(events))

	engineHorizon := sim.NoHorizon
	if cfg.Sim.Horizon > 0 {
		engineHorizon = cfg.Sim.Horizon
	}

	mon := monitor.New()
	engine := sim.New(dispatch.NewDispatcher(), mon, engineHorizon, logger)
	engine.Schedule(events...)

	if err := engine.Run(ctx); err != nil {
		return fmt.Errorf("simulation interrupted: %w", err)
	}
	logger.Info("simulation finished", "processed", engine.Processed(), "discarded", engine.Pending())

	return printReport(os.Stdout, mon.Report(), cfg.Report.Format)
}

func printReport(w io.Writer, report monitor.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		fmt.Fprintf(w, "rider wait time:       %.2f\n", report.RiderWaitTime)
		fmt.Fprintf(w, "driver total distance: %.2f\n", report.DriverTotalDistance)
		fmt.Fprintf(w, "driver ride distance:  %.2f\n", report.DriverRideDistance)
		return nil
	}
}
