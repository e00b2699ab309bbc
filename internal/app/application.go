package app

import (
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"cairometro/internal/appconf"
	"cairometro/internal/metrics"
	"cairometro/internal/metro"
	"cairometro/internal/planner"
	"cairometro/internal/render"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Everything in it is safe for concurrent use.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Network  *metro.Network
	Planner  *planner.Planner
	Renderer *render.Renderer
	Metrics  *metrics.Collector

	// RouteCache memoizes successful route queries. Nil when caching is
	// disabled.
	RouteCache *cache.Cache
}

// New wires an Application around a built network. collector may be nil.
func New(cfg appconf.Config, logger *slog.Logger, network *metro.Network, collector *metrics.Collector) *Application {
	if logger == nil {
		logger = slog.Default()
	}

	app := &Application{
		Config:   cfg,
		Logger:   logger,
		Network:  network,
		Planner:  planner.New(network),
		Metrics:  collector,
		Renderer: render.NewRenderer(network, render.DefaultOptions()),
	}
	if cfg.RouteCacheTTL > 0 {
		app.RouteCache = cache.New(cfg.RouteCacheTTL, 2*cfg.RouteCacheTTL)
	}

	collector.SetNetworkSize(network.StationCount(), len(network.Lines()), network.Graph().EdgeCount())
	return app
}

// CacheStats reports the number of cached routes.
func (app *Application) CacheStats() int {
	if app.RouteCache == nil {
		return 0
	}
	return app.RouteCache.ItemCount()
}

// FlushRouteCache drops every cached route.
func (app *Application) FlushRouteCache() {
	if app.RouteCache != nil {
		app.RouteCache.Flush()
	}
}

func routeCacheKey(from, to string) string {
	return "route:" + string(metro.NewStationID(from)) + "\x00" + string(metro.NewStationID(to))
}

func observeDuration(start time.Time) time.Duration {
	d := time.Since(start)
	if d <= 0 {
		d = time.Nanosecond
	}
	return d
}
