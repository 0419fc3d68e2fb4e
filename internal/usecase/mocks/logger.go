package mocks

import (
	"fmt"
	"sync"
)

// Logger records formatted messages per level.
type Logger struct {
	mu      sync.Mutex
	Entries map[string][]string
}

func NewLogger() *Logger {
	return &Logger{Entries: map[string][]string{}}
}

func (l *Logger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries[level] = append(l.Entries[level], fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.log("debug", format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log("info", format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log("warn", format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log("error", format, args...) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.log("fatal", format, args...) }
