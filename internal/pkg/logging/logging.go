package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Output is JSON on stdout; level comes
// from config with info as the fallback.
func New(service, environment, level string) zerolog.Logger {
	lvl := parseLevel(level)

	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Str("env", environment).
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
