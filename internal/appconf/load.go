package appconf

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when neither a flag nor an environment variable is set.
const (
	DefaultPort          = 4000
	DefaultRateLimit     = 100
	DefaultRouteCacheTTL = 10 * time.Minute
)

// Load reads configuration from command-line args, falling back to the
// environment (optionally populated from .env files) and then to defaults.
// Flags given explicitly always win.
func Load(args []string, envFiles ...string) (Config, error) {
	// Missing .env files are fine.
	_ = godotenv.Load(envFiles...)

	var (
		cfg          Config
		envFlag      string
		apiKeysFlag  string
		exemptFlag   string
		logLevelFlag string
		err          error
	)

	fs := flag.NewFlagSet("cairometro", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", DefaultPort, "API server port")
	fs.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", "", "Comma Separated API Keys; empty disables key checks")
	fs.IntVar(&cfg.RateLimit, "rate-limit", DefaultRateLimit, "Requests per second allowed per API key")
	fs.StringVar(&exemptFlag, "rate-limit-exempt-keys", "", "Comma Separated API Keys that are never rate limited")
	fs.StringVar(&logLevelFlag, "log-level", "info", "Log level (debug|info|warn|error)")
	fs.DurationVar(&cfg.RouteCacheTTL, "route-cache-ttl", DefaultRouteCacheTTL, "How long planned routes stay cached; 0 disables the cache")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", true, "Expose Prometheus metrics on /metrics")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["port"] {
		if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
			return Config{}, err
		}
	}
	if !set["env"] {
		envFlag = getenvDefault("ENV", envFlag)
	}
	if !set["api-keys"] {
		apiKeysFlag = getenvDefault("API_KEYS", apiKeysFlag)
	}
	if !set["rate-limit"] {
		if cfg.RateLimit, err = envInt("RATE_LIMIT", cfg.RateLimit); err != nil {
			return Config{}, err
		}
	}
	if !set["rate-limit-exempt-keys"] {
		exemptFlag = getenvDefault("RATE_LIMIT_EXEMPT_KEYS", exemptFlag)
	}
	if !set["log-level"] {
		logLevelFlag = getenvDefault("LOG_LEVEL", logLevelFlag)
	}
	if !set["route-cache-ttl"] {
		if v := os.Getenv("ROUTE_CACHE_TTL"); v != "" {
			if cfg.RouteCacheTTL, err = time.ParseDuration(v); err != nil {
				return Config{}, fmt.Errorf("invalid ROUTE_CACHE_TTL: %q", v)
			}
		}
	}
	if !set["metrics"] {
		if v := os.Getenv("METRICS_ENABLED"); v != "" {
			cfg.MetricsEnabled = parseBool(v)
		}
	}

	cfg.Env = EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = splitKeys(apiKeysFlag)
	cfg.ExemptKeys = splitKeys(exemptFlag)
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelFlag)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", logLevelFlag, err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.RouteCacheTTL < 0 {
		return Config{}, fmt.Errorf("invalid route cache TTL: %s", cfg.RouteCacheTTL)
	}

	return cfg, nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", k, v)
	}
	return n, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// LevelString renders a slog level the way Load accepts it.
func LevelString(l slog.Level) string {
	return strings.ToLower(l.String())
}
