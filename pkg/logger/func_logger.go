package logger

import (
	"fmt"
	"io"
)

// A logger that writes all of its messages to `write`
type funcLogger struct {
	supportsColor bool
	level         Level
	write         func(level Level, b []byte) error
}

var _ Logger = funcLogger{}

func NewFuncLogger(supportsColor bool, level Level, write func(level Level, b []byte) error) Logger {
	return funcLogger{supportsColor, level, write}
}

func (l funcLogger) Level() Level {
	return l.level
}

func (l funcLogger) Infof(format string, a ...interface{}) {
	l.writeString(InfoLvl, fmt.Sprintf(format+"\n", a...))
}

func (l funcLogger) Verbosef(format string, a ...interface{}) {
	l.writeString(VerboseLvl, fmt.Sprintf(format+"\n", a...))
}

func (l funcLogger) Debugf(format string, a ...interface{}) {
	l.writeString(DebugLvl, fmt.Sprintf(format+"\n", a...))
}

func (l funcLogger) Warnf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format+"\n", a...)
	l.writeString(WarnLvl, Yellow(l).Sprint("WARNING: ")+msg)
}

func (l funcLogger) Errorf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format+"\n", a...)
	l.writeString(ErrorLvl, Red(l).Sprint("ERROR: ")+msg)
}

func (l funcLogger) Write(level Level, bytes []byte) {
	if !l.level.ShouldDisplay(level) {
		return
	}
	_ = l.write(level, bytes)
}

func (l funcLogger) writeString(level Level, s string) {
	l.Write(level, []byte(s))
}

type funcLoggerWriter struct {
	l     funcLogger
	level Level
}

var _ io.Writer = funcLoggerWriter{}

func (fw funcLoggerWriter) Write(b []byte) (int, error) {
	if !fw.l.level.ShouldDisplay(fw.level) {
		return len(b), nil
	}
	return len(b), fw.l.write(fw.level, b)
}

func (l funcLogger) Writer(level Level) io.Writer {
	return funcLoggerWriter{l, level}
}

func (l funcLogger) SupportsColor() bool {
	return l.supportsColor
}
