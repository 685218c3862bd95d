package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/fittracker/fittracker/server/internal/api"
	"github.com/fittracker/fittracker/server/internal/auth"
	"github.com/fittracker/fittracker/server/internal/config"
	"github.com/fittracker/fittracker/server/internal/metrics"
	"github.com/fittracker/fittracker/server/internal/ws"
)

const shutdownTimeout = 10 * time.Second

// apiRoutes are instrumented individually so latency is labelled per route.
var apiRoutes = map[string]string{
	"/api/v1/summary":       "summary",
	"/api/v1/workout-types": "workout_types",
	"/api/v1/health":        "health",
}

func main() {
	configPath := flag.String("config", "", "path to config file; built-in defaults when empty")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	slog.Info("fittracker-server starting",
		"config", *configPath,
		"http_port", cfg.Server.HTTPPort,
		"auth_mode", cfg.Server.Auth.Mode,
		"stream", cfg.Server.Stream.Enabled,
	)
	if cfg.Server.Auth.Mode == "apikey" && cfg.Server.Auth.Key() == "" {
		slog.Warn("auth mode is apikey but the key variable is empty; API is unauthenticated",
			"key_env", cfg.Server.Auth.KeyEnv)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, hub := newHandler(cfg, reg)
	if hub != nil {
		go hub.Run(ctx)
	}

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("fittracker-server shutting down")
	shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
	defer done()
	httpSrv.Shutdown(shutdownCtx) //nolint:errcheck
}

// newHandler builds the combined HTTP handler: the REST API and the live
// stream behind auth, plus the metrics endpoint. The hub is nil when streaming
// is disabled.
func newHandler(cfg *config.Config, reg *prometheus.Registry) (http.Handler, *ws.Hub) {
	m := metrics.New(reg)

	opts := api.Options{
		Recorder:     m,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Logger:       slog.Default(),
	}
	var hub *ws.Hub
	if cfg.Server.Stream.Enabled {
		hub = ws.New(cfg.Server.Stream.SendBuffer, m)
		opts.Publisher = hub
	}
	apiHandler := api.New(opts)

	requireKey := auth.APIKey(
		cfg.Server.Auth.Mode,
		cfg.Server.Auth.EffectiveHeader(),
		cfg.Server.Auth.Key(),
	)

	mux := http.NewServeMux()
	for path, route := range apiRoutes {
		mux.Handle(path, requireKey(m.Instrument(route, apiHandler)))
	}
	mux.Handle("/api/", requireKey(apiHandler))
	mux.Handle("/metrics", metrics.Handler(reg))
	if hub != nil {
		mux.Handle("/ws/stream", requireKey(hub))
	}
	return mux, hub
}
