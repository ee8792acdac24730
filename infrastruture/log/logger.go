// Package log provides prefixed, coloured component loggers backed by logrus.
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes lines of the form "[PREFIX] [LEVEL] time message key=value".
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger whose lines are tagged with prefix, drawn in color.
// Pass an empty color to disable colouring.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if out == nil {
		return nil, fmt.Errorf("logger %s: nil writer", prefix)
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{entry: logrus.NewEntry(base)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warn logs a recoverable problem.
func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// With returns a logger that appends key=value to every line.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}
	fmt.Fprintf(&b, "[%s] %s %s", levelName(e.Level), e.Time.Format(time.RFC3339), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(level logrus.Level) string {
	switch level {
	case logrus.WarnLevel:
		return "WARN"
	case logrus.ErrorLevel:
		return "ERROR"
	case logrus.FatalLevel:
		return "FATAL"
	case logrus.PanicLevel:
		return "PANIC"
	case logrus.DebugLevel, logrus.TraceLevel:
		return "DEBUG"
	default:
		return "INFO"
	}
}
