// Package logging builds the zerolog logger the rest of the service
// receives explicitly — no package-level global.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a configured root logger. Level falls back to info,
// format "console" switches from JSON to human-readable output.
func New(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out = os.Stderr
	log := zerolog.New(out)
	if strings.EqualFold(format, "console") {
		log = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly})
	}
	return log.Level(lvl).With().Timestamp().Logger()
}
