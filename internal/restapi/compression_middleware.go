package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig controls gzip compression of API responses.
type CompressionConfig struct {
	// MinSize is the smallest body, in bytes, worth compressing.
	MinSize int
	// Level is the gzip level, 1 (fastest) to 9 (smallest).
	Level int
}

func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
	}
}

// NewCompressionMiddleware builds a gzip middleware. An invalid config falls
// back to the gzhttp defaults.
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(config.MinSize),
		gzhttp.CompressionLevel(config.Level),
	)
	if err != nil {
		return func(next http.Handler) http.Handler {
			return gzhttp.GzipHandler(next)
		}
	}
	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}
