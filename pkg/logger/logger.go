// Package logger builds the zerolog logger used for run diagnostics.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes the global zerolog level and returns a logger writing to w.
//   - level: log level string (trace, debug, info, warn, error), defaults to info
//   - format: "pretty" for human-readable console output, anything else for JSON lines
func Setup(level, format string, w io.Writer) zerolog.Logger {
	if format == "pretty" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(w).
		With().
		Timestamp().
		Logger()
}
