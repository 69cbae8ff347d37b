// Package logging builds the zerolog loggers used across the module.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel names the env var that sets the log level.
// "no" disables logging; anything zerolog can't parse falls back to info.
const EnvLevel = "STORPROTO_LOG"

var (
	// logout is the logger configuration
	logout = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		FormatCaller: func(i interface{}) string {
			return filepath.Base(fmt.Sprintf("%s", i))
		},
	}
)

// New returns a logger tagged with component.
func New(component string) zerolog.Logger {
	return zerolog.New(logout).
		Level(Level(os.Getenv(EnvLevel))).
		With().Timestamp().Str("component", component).Logger().
		With().Caller().Logger()
}

// Level maps an env var value to a zerolog level.
func Level(s string) zerolog.Level {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "no" {
		return zerolog.Disabled
	}
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
