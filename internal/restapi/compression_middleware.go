package restapi

import (
	"log/slog"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the gzip compression level 1-9
	Level int
}

// DefaultCompressionConfig compresses anything past 1KB at level 6. Model
// replies are short, so in practice this mostly applies to /metrics and the
// debug pages.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
	}
}

// NewCompressionMiddleware creates a gzip middleware with the given
// configuration. An invalid configuration falls back to gzhttp defaults.
func NewCompressionMiddleware(config CompressionConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(config.MinSize),
		gzhttp.CompressionLevel(config.Level),
	)
	if err != nil {
		if logger != nil {
			logger.Warn("invalid compression config, using defaults",
				slog.Int("min_size", config.MinSize),
				slog.Int("level", config.Level),
				slog.String("error", err.Error()))
		}
		return func(next http.Handler) http.Handler {
			return gzhttp.GzipHandler(next)
		}
	}
	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}
}
