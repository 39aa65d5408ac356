package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a list request with its parsed range.
func LogRequest(logger *slog.Logger, collection string, r Range) {
	logger.Info("list request",
		"collection", collection,
		"offset", r.Offset,
		"limit", r.Limit,
		"mode", r.Mode())
}

// LogResponse logs a list response with duration and item count.
func LogResponse(logger *slog.Logger, collection string, r Range, returnedCount int, duration time.Duration) {
	logger.Info("list response",
		"collection", collection,
		"offset", r.Offset,
		"limit", r.Limit,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds())
}
