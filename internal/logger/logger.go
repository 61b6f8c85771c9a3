// Package logger builds the op/go-logging loggers used by the matchkit CLI.
// A *logging.Logger satisfies edmonds.Logger, so the same value is handed to
// the matching core.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
)

const logFormat = `%{color}%{time:15:04:05.000} %{module} ▶ %{level:.4s}%{color:reset} %{message}`

// NewLogger returns a logger for module writing to stderr. Unknown levels
// fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	return NewLoggerTo(os.Stderr, level, module)
}

// NewLoggerTo is NewLogger with an explicit destination and no colors.
func NewLoggerTo(w io.Writer, level string, module string) *logging.Logger {
	format := logging.MustStringFormatter(logFormat)
	if w != os.Stderr {
		format = logging.MustStringFormatter(`%{level:.4s} %{module}: %{message}`)
	}

	backend := logging.NewLogBackend(w, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(ParseLevel(level), module)

	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)

	return log
}

// ParseLevel maps a case-insensitive level name to a logging.Level,
// defaulting to INFO.
func ParseLevel(level string) logging.Level {
	l, err := logging.LogLevel(level)
	if err != nil {
		return logging.INFO
	}

	return l
}

// ParseTime splits an elapsed duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var (
		hours   = uint32(elapsed.Hours())
		minutes = uint32(elapsed.Minutes()) % 60
		seconds = uint32(elapsed.Seconds()) % 60
	)

	return hours, minutes, seconds
}
