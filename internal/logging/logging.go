package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger writing human-readable output to w.
// Verbosity resolution: quiet wins over verbose; the default level is
// warn so normal runs stay silent on the log channel.
func New(w io.Writer, verbose, quiet bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.Disabled
	case verbose:
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Nop returns a disabled logger for components that receive a logger but
// whose caller did not configure one.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
