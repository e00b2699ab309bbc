package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cairometro/internal/app"
	"cairometro/internal/appconf"
	"cairometro/internal/logging"
	"cairometro/internal/metrics"
	"cairometro/internal/metro"
	"cairometro/internal/restapi"
	"cairometro/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run starts the server and blocks until ctx is cancelled or the listener
// fails.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := appconf.Load(args, ".env")
	if err != nil {
		return err
	}

	logger := newLogger(cfg, stdout)

	network, err := metro.DefaultNetwork()
	if err != nil {
		logging.LogError(logger, "failed to build metro network", err)
		return err
	}

	application := app.New(cfg, logger, network, metrics.NewCollector())
	api := restapi.NewRestAPI(application)
	defer api.Close()

	handler, err := newHandler(api)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("env", cfg.Env.String()),
		slog.String("log_level", appconf.LevelString(cfg.LogLevel)),
		slog.Int("stations", network.StationCount()),
		slog.Int("lines", len(network.Lines())),
		slog.Bool("api_keys_required", cfg.RequiresAPIKey()),
		slog.Bool("metrics", cfg.MetricsEnabled))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logging.LogError(logger, "server failed", err)
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	return logging.ShutdownWithLogging(func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}, logger, "http_server")
}

func newLogger(cfg appconf.Config, w io.Writer) *slog.Logger {
	if cfg.Env == appconf.Development {
		return logging.NewTextLogger(w, cfg.LogLevel)
	}
	return logging.NewStructuredLogger(w, cfg.LogLevel)
}

// newHandler mounts the REST API, the web UI and, when enabled, the metrics
// endpoint on one mux.
func newHandler(api *restapi.RestAPI) (http.Handler, error) {
	webUI, err := webui.New(api.Application)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	ui := http.NewServeMux()
	webUI.SetWebUIRoutes(ui)
	mux.Handle("/", restapi.NewRequestLoggingMiddleware(api.Logger)(ui))

	if api.Config.MetricsEnabled {
		mux.Handle("GET /metrics", api.Metrics.Handler())
	}
	return mux, nil
}
