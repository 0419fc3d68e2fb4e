package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

// SlogLogger writes structured JSON records through log/slog.
type SlogLogger struct {
	log  *slog.Logger
	exit func(int)
}

// NewSlogLogger creates a logger writing to stdout at the given level.
func NewSlogLogger(level string) usecasecontract.IAppLogger {
	return NewSlogLoggerTo(os.Stdout, level)
}

// NewSlogLoggerTo creates a logger writing to w.
func NewSlogLoggerTo(w io.Writer, level string) *SlogLogger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &SlogLogger{log: slog.New(h).With("service", "remarks"), exit: os.Exit}
}

// Slog exposes the underlying logger for components that log with attributes.
func (l *SlogLogger) Slog() *slog.Logger {
	return l.log
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debugf logs a debug message.
func (l *SlogLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

// Infof logs an info message.
func (l *SlogLogger) Infof(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *SlogLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (l *SlogLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs an error message and exits.
func (l *SlogLogger) Fatalf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...), "fatal", true)
	l.exit(1)
}
