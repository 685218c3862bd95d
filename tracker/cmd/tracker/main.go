package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fittracker/fittracker/tracker/internal/batch"
	"github.com/fittracker/fittracker/tracker/internal/config"
	"github.com/fittracker/fittracker/tracker/internal/report"
)

// Exit codes.
const (
	exitOK         = 0
	exitConfig     = 1
	exitPkgFailure = 2
)

func main() {
	configPath := flag.String("config", "", "path to batch file; empty runs the built-in sample packages")
	format := flag.String("format", "", "output format override: text|json|prometheus")
	watch := flag.Bool("watch", false, "re-run the batch each time the config file changes (requires -config)")
	flag.Parse()

	os.Exit(run(*configPath, *format, *watch, os.Stdout, os.Stderr))
}

func run(configPath, format string, watch bool, stdout, stderr io.Writer) int {
	// Logs go to stderr so the report on stdout stays machine-readable.
	logger := newLogger(stderr, slog.LevelInfo)
	slog.SetDefault(logger)

	format = config.NormalizeFormat(format)
	if format != "" && !config.ValidFormat(format) {
		slog.Error("invalid -format", "format", format)
		return exitConfig
	}
	if watch && configPath == "" {
		slog.Error("-watch requires -config")
		return exitConfig
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			return exitConfig
		}
		cfg = loaded
	}

	logger = newLogger(stderr, cfg.Log.SlogLevel())
	slog.SetDefault(logger)
	slog.Debug("config loaded", "path", configPath, "packages", len(cfg.Packages), "format", cfg.Output.Format)

	failed, err := runBatch(stdout, cfg, format, logger)
	if err != nil {
		slog.Error("failed to write report", "err", err)
		return exitConfig
	}

	if !watch {
		if failed > 0 {
			slog.Warn("batch finished with failures", "failed", failed, "total", len(cfg.Packages))
			return exitPkgFailure
		}
		return exitOK
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = config.Watch(ctx, configPath, reloadFunc(stdout, stderr, format))
	if err != nil {
		slog.Error("config watcher stopped", "err", err)
		return exitConfig
	}
	slog.Info("tracker shutting down")
	return exitOK
}

// reloadFunc returns the watch callback. Each reload rebuilds the logger from
// the new log.level before re-running the batch.
func reloadFunc(stdout, stderr io.Writer, format string) func(*config.Config) {
	return func(updated *config.Config) {
		logger := newLogger(stderr, updated.Log.SlogLevel())
		slog.SetDefault(logger)
		slog.Debug("config reloaded", "packages", len(updated.Packages), "format", updated.Output.Format)

		if _, err := runBatch(stdout, updated, format, logger); err != nil {
			slog.Error("failed to write report", "err", err)
		}
	}
}

// runBatch processes cfg.Packages and writes the report to w. A non-empty
// format overrides cfg.Output.Format. It returns the number of failed packages.
func runBatch(w io.Writer, cfg *config.Config, format string, logger *slog.Logger) (int, error) {
	if format == "" {
		format = cfg.Output.Format
	}
	f, err := report.New(format)
	if err != nil {
		return 0, err
	}

	results := batch.New(logger).Run(cfg.Packages)
	if err := f.Format(w, results); err != nil {
		return 0, fmt.Errorf("tracker: %w", err)
	}
	return batch.Failed(results), nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
