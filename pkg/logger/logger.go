// Package logger provides zerolog setup shared by the server.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger tagged with the service name.
// Unknown level strings fall back to info.
func New(service, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
