package main

import (
	"log/slog"
	"os"

	"qa-forum/internal/observability/logging"
)

func main() {
	logger := logging.NewLogger(os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	if err := rootCmd().Execute(); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}
