package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the configured logger for the reporter.
func New(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
}
