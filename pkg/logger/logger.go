package logger

import (
	"log/slog"
	"os"
)

// Log is safe to use before Init; Init swaps in the configured handler.
var Log = slog.Default()

// Init installs the process-wide JSON logger.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
