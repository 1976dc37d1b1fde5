// Package logger provides component loggers with a colored prefix, backed by
// logrus.
package logger

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

const colorReset = "\033[0m"

// Logger writes leveled messages tagged with a component name.
type Logger struct {
	entry *logrus.Entry
}

// New returns a logger writing to out. Every line carries the component
// field; on terminals the prefix is shown in color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})

	return &Logger{
		entry: l.WithField("component", color+"["+prefix+"]"+colorReset),
	}, nil
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// With returns a logger that adds fields to every message.
func (l *Logger) With(fields map[string]any) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}
