// SPDX-License-Identifier: MIT

package explorer

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped JSON logger at the given level.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewConsoleLogger returns a human-readable logger on stderr.
func NewConsoleLogger(level zerolog.Level) zerolog.Logger {
	return NewLogger(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}
