package appconf

import (
	"log/slog"
	"strings"
	"time"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag to an Environment. Unknown values
// fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port           int
	Env            Environment
	ApiKeys        []string
	RateLimit      int // requests per second per API key
	ExemptKeys     []string
	LogLevel       slog.Level
	RouteCacheTTL  time.Duration
	MetricsEnabled bool
}

// RequiresAPIKey reports whether API requests must carry a configured key.
func (c Config) RequiresAPIKey() bool {
	return len(c.ApiKeys) > 0
}
