// File: internal/services/logger.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Logger defines the common logging interface for all services.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StdLogger writes leveled key/value log lines to stdout.
type StdLogger struct {
	logger  *log.Logger
	level   LogLevel
	service string
}

func NewStdLogger(service string, level LogLevel) *StdLogger {
	return &StdLogger{
		logger:  log.New(os.Stdout, "", 0),
		level:   level,
		service: service,
	}
}

func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.log(LogLevelDebug, msg, keysAndValues...)
}

func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.log(LogLevelInfo, msg, keysAndValues...)
}

func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.log(LogLevelWarn, msg, keysAndValues...)
}

func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.log(LogLevelError, msg, keysAndValues...)
}

func (s *StdLogger) log(level LogLevel, msg string, keysAndValues ...interface{}) {
	if level < s.level {
		return
	}

	var kv strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		kv.WriteString(fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1]))
	}

	s.logger.Printf("[%s] %s [%s] %s%s",
		time.Now().UTC().Format(time.RFC3339), level.String(), s.service, msg, kv.String())
}

// NoOpLogger discards everything; used in tests.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *NoOpLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *NoOpLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *NoOpLogger) Error(msg string, keysAndValues ...interface{}) {}

// NewLogger picks a logger based on the environment.
func NewLogger(service string) Logger {
	if os.Getenv("GO_ENV") == "test" {
		return &NoOpLogger{}
	}

	level := LogLevelInfo
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		level = LogLevelDebug
	case "WARN":
		level = LogLevelWarn
	case "ERROR":
		level = LogLevelError
	}
	return NewStdLogger(service, level)
}
