package logger

import (
	"log/slog"
	"os"
)

// New creates the application logger writing JSON records to stdout.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
