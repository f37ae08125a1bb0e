// pkg/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Level represents the severity of a log message.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// zerologLevel maps a Level onto the backing zerolog level.
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger is a leveled logger backed by zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New creates a new Logger with the specified log level and output.
func New(level Level, out io.Writer) *Logger {
	return &Logger{
		zl: zerolog.New(out).Level(level.zerologLevel()).With().Timestamp().Logger(),
	}
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Infof logs an info message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Panicf logs a message and panics.
func (l *Logger) Panicf(format string, v ...interface{}) {
	l.zl.Panic().Msgf(format, v...)
}

// ParseLevel converts a string to a log Level (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("invalid log level: %s", s)
	}
}
