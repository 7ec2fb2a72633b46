package server

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// DefaultLogger writes text-formatted entries through logrus
type DefaultLogger struct {
	logger *logrus.Logger
}

// NewDefaultLogger logs at info level to standard error
func NewDefaultLogger() *DefaultLogger {
	return NewLogger(os.Stderr, logrus.InfoLevel)
}

func NewLogger(out io.Writer, level logrus.Level) *DefaultLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return &DefaultLogger{logger: l}
}

func (l *DefaultLogger) Debug(msg string, fields ...Field) {
	l.entry(fields).Debug(msg)
}

func (l *DefaultLogger) Info(msg string, fields ...Field) {
	l.entry(fields).Info(msg)
}

func (l *DefaultLogger) Error(msg string, fields ...Field) {
	l.entry(fields).Error(msg)
}

func (l *DefaultLogger) Warn(msg string, fields ...Field) {
	l.entry(fields).Warn(msg)
}

func (l *DefaultLogger) entry(fields []Field) *logrus.Entry {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = sanitizeValue(f.Key, f.Value)
	}
	return l.logger.WithFields(data)
}

// sanitizeValue truncates long strings so client-supplied paths can't flood
// the log. Stack traces are kept whole.
func sanitizeValue(key string, v interface{}) interface{} {
	if s, ok := v.(string); ok && key != "stack" {
		if len(s) > 100 {
			return s[:100] + "...[truncated]"
		}
	}
	return v
}

// NullLogger discards all logs (for testing)
type NullLogger struct{}

func (n *NullLogger) Debug(msg string, fields ...Field) {}
func (n *NullLogger) Info(msg string, fields ...Field)  {}
func (n *NullLogger) Error(msg string, fields ...Field) {}
func (n *NullLogger) Warn(msg string, fields ...Field)  {}
