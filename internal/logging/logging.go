package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures the global slog logger. JSON if SEARCHBENCH_JSON_LOG
// is 1/true, text otherwise; output goes to stderr so benchmark result
// lines on stdout stay machine-readable.
func Init(service string) *slog.Logger {
	mode := strings.ToLower(os.Getenv("SEARCHBENCH_JSON_LOG"))
	json := mode == "1" || mode == "true" || mode == "json"
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: levelFromEnv()})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelFromEnv()})
	}
	logger := slog.New(handler).With("service", service)
	slog.SetDefault(logger)
	return logger
}

func levelFromEnv() slog.Leveler {
	switch strings.ToLower(os.Getenv("SEARCHBENCH_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
