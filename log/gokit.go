package log

import (
	"io"

	gklog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type gkLogger struct {
	logger gklog.Logger
}

// NewGKLogger wraps a go-kit logger
func NewGKLogger(logger gklog.Logger) Logger {
	return &gkLogger{logger: logger}
}

// NewGKLoggerWriter creates a logfmt logger writing to w. Debug events are
// dropped unless debug is true.
func NewGKLoggerWriter(w io.Writer, debug bool) Logger {
	allow := level.AllowInfo()
	if debug {
		allow = level.AllowDebug()
	}

	logger := gklog.NewLogfmtLogger(gklog.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	logger = gklog.With(logger, "ts", gklog.DefaultTimestampUTC)

	return NewGKLogger(logger)
}

func (l *gkLogger) log(lvl gklog.Logger, event string, keyvals ...interface{}) {
	_ = lvl.Log(append([]interface{}{"event", event}, keyvals...)...)
}

func (l *gkLogger) Debug(event string, keyvals ...interface{}) {
	l.log(level.Debug(l.logger), event, keyvals...)
}

func (l *gkLogger) Info(event string, keyvals ...interface{}) {
	l.log(level.Info(l.logger), event, keyvals...)
}

func (l *gkLogger) Warn(event string, keyvals ...interface{}) {
	l.log(level.Warn(l.logger), event, keyvals...)
}

func (l *gkLogger) Error(event string, keyvals ...interface{}) {
	l.log(level.Error(l.logger), event, keyvals...)
}

func (l *gkLogger) With(keyvals ...interface{}) Logger {
	return &gkLogger{logger: gklog.With(l.logger, keyvals...)}
}
