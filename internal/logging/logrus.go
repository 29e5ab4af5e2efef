package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const badKey = "!BADKEY"

type LogrusLogger struct {
	entry *logrus.Entry
}

func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

// New builds a logger writing to out. format is "json" or "text".
func New(level, format string, out io.Writer) (*LogrusLogger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return NewLogrusLogger(l), nil
}

func (s *LogrusLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.entry.WithContext(ctx).WithFields(fields(args)).Debug(msg)
}

func (s *LogrusLogger) Info(ctx context.Context, msg string, args ...any) {
	s.entry.WithContext(ctx).WithFields(fields(args)).Info(msg)
}

func (s *LogrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.entry.WithContext(ctx).WithFields(fields(args)).Warn(msg)
}

func (s *LogrusLogger) Error(ctx context.Context, msg string, args ...any) {
	s.entry.WithContext(ctx).WithFields(fields(args)).Error(msg)
}

func (s *LogrusLogger) With(args ...any) Logger {
	return &LogrusLogger{entry: s.entry.WithFields(fields(args))}
}

// fields pairs up args the way slog does; a dangling value lands under !BADKEY.
func fields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)

	for len(args) > 0 {
		key, ok := args[0].(string)
		if !ok || len(args) == 1 {
			f[badKey] = args[0]
			args = args[1:]
			continue
		}

		value := args[1]
		if err, isErr := value.(error); isErr {
			value = err.Error()
		}
		f[key] = value
		args = args[2:]
	}

	return f
}
