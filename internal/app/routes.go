package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"cairometro/internal/logging"
	"cairometro/internal/metrics"
	"cairometro/internal/planner"
)

// FindRoute plans a route, serving repeated queries from the route cache.
// Returned routes are shared between callers and must not be modified.
func (app *Application) FindRoute(from, to string) (*planner.Route, error) {
	key := routeCacheKey(from, to)

	if app.RouteCache != nil {
		if cached, ok := app.RouteCache.Get(key); ok {
			app.Metrics.ObserveCache(true)
			route := cached.(*planner.Route)
			app.Metrics.ObserveRoute(routeOutcome(route, nil), 0)
			return route, nil
		}
		app.Metrics.ObserveCache(false)
	}

	start := time.Now()
	route, err := app.Planner.FindPath(from, to)
	app.Metrics.ObserveRoute(routeOutcome(route, err), observeDuration(start))

	switch {
	case err == nil:
	case errors.Is(err, planner.ErrUnknownStation), errors.Is(err, planner.ErrNoPath):
		app.Logger.Debug("route not found",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("reason", err.Error()))
		return nil, err
	default:
		logging.LogError(app.Logger, "route planning failed", err,
			slog.String("from", from),
			slog.String("to", to),
			slog.String("component", "route_planner"))
		return nil, err
	}

	if app.RouteCache != nil {
		app.RouteCache.Set(key, route, cache.DefaultExpiration)
	}
	return route, nil
}

func routeOutcome(route *planner.Route, err error) string {
	switch {
	case errors.Is(err, planner.ErrUnknownStation):
		return metrics.OutcomeUnknownStation
	case errors.Is(err, planner.ErrNoPath):
		return metrics.OutcomeNoPath
	case err != nil:
		return metrics.OutcomeError
	case route.SameStation:
		return metrics.OutcomeSameStation
	case route.Direct:
		return metrics.OutcomeDirect
	default:
		return metrics.OutcomeTransfer
	}
}
