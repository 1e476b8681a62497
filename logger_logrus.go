package libemitter

import (
	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	*logrus.Entry
}

// NewLogrusLogger adapts a logrus logger to Logger.
func NewLogrusLogger(l *logrus.Logger) Logger {
	return logrusLogger{Entry: logrus.NewEntry(l)}
}

// NewLogrusEntryLogger adapts a logrus entry, keeping its fields.
func NewLogrusEntryLogger(e *logrus.Entry) Logger {
	return logrusLogger{Entry: e}
}

func (l logrusLogger) WithField(key string, value any) Logger {
	return logrusLogger{Entry: l.Entry.WithField(key, value)}
}
