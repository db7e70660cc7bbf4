// Package log provides the logger used throughout the emulator. The
// default implementation is backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger writing to stderr at info level.
func New() Logger {
	return NewWithOutput(os.Stderr, false, false)
}

// NewWithOutput returns a Logger writing to w. Debug messages are only
// emitted when debug is true, and colours are only used when colour is
// true (typically when w is a terminal).
func NewWithOutput(w io.Writer, debug, colour bool) Logger {
	l := logrus.New()
	l.SetOutput(w)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	l.Formatter = &logrus.TextFormatter{
		ForceColors:      colour,
		DisableColors:    !colour,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{Logger: l}
}

func (l *logger) Fatal(str string) {
	l.Logger.Fatal(str)
}
