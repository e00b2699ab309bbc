package restapi

import (
	"time"

	"cairometro/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter.
// Keys in Config.ExemptKeys bypass the limiter.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second, app.Config.ExemptKeys...),
	}
}

// Close stops background work owned by the API.
func (api *RestAPI) Close() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
