package logger

import "github.com/sirupsen/logrus"

type logrusLogger struct {
	entry logrus.FieldLogger
}

var _ Logger = &logrusLogger{}

// NewLogrus adapts a logrus logger (or entry with fields) to the Logger interface.
func NewLogrus(l logrus.FieldLogger) Logger {
	return &logrusLogger{entry: l}
}

func (l *logrusLogger) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

func (l *logrusLogger) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *logrusLogger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logrusLogger) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}
