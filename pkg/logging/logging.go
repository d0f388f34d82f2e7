// Package logging builds the launcher's trace logger. Tracing goes to stderr
// and is disabled by default so forwarded output stays byte-transparent.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a debug-level logger on stderr when debug is true,
// and a no-op logger otherwise.
func New(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
