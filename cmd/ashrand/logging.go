package main

import (
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// setupLogger configures zerolog with pretty console output on stderr.
func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// newSlogLogger routes the library's slog records into the CLI's zerolog stream.
// Level filtering is left to the zerolog logger.
func newSlogLogger(log zerolog.Logger) *slog.Logger {
	return slog.New(slogzerolog.Option{Level: slog.LevelDebug, Logger: &log}.NewZerologHandler())
}
