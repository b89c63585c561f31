package panzoom

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// loggerPtr stores the active logger. Accessed atomically so SetLogger may
// be called while a surface is running.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// newNopLogger returns a logger that discards everything. Its level is
// Panic so entries skip formatting entirely.
func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger used by panzoom. By default the package
// produces no output. Pass nil to restore silence.
//
// Levels used:
//   - Debug: every interaction state change, injected and scripted events
//   - Info: zoom gestures starting, screenshots written
//   - Warn: recoverable problems (screenshot I/O, script steps skipped)
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently used by panzoom.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
