package logger

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger with controls for levels and colors.
//
// Discrete messages (like Infof) append a newline before handing the bytes
// to the underlying writer. Write() and Writer() pass bytes through as-is.
type Logger interface {
	// log information that is likely to only be of interest to fopen developers,
	// like index sizes and search latency
	Debugf(format string, a ...interface{})

	// log information that a user might want when figuring out why a file
	// is missing from the menu
	Verbosef(format string, a ...interface{})

	// log information that we always want to show
	Infof(format string, a ...interface{})

	Warnf(format string, a ...interface{})

	Errorf(format string, a ...interface{})

	Write(level Level, bytes []byte)

	// gets an io.Writer that filters to the specified level
	Writer(level Level) io.Writer

	Level() Level

	SupportsColor() bool
}

type Level struct {
	name     string
	severity int32
}

// If l is the logger level, determine if we should display
// logs of the given severity.
func (l Level) ShouldDisplay(log Level) bool {
	return l.severity <= log.severity
}

func (l Level) AsSevereAs(log Level) bool {
	return l.severity >= log.severity
}

func (l Level) String() string {
	return l.name
}

var (
	NoneLvl    = Level{name: "none", severity: 0}
	DebugLvl   = Level{name: "debug", severity: 100}
	VerboseLvl = Level{name: "verbose", severity: 200}
	InfoLvl    = Level{name: "info", severity: 300}
	WarnLvl    = Level{name: "warn", severity: 400}
	ErrorLvl   = Level{name: "error", severity: 500}
)

type contextKey struct{}

var loggerContextKey = contextKey{}

func Get(ctx context.Context) Logger {
	val := ctx.Value(loggerContextKey)

	if val != nil {
		return val.(Logger)
	}

	// No logger found in context, something is wrong.
	panic("Called logger.Get(ctx) on a context with no logger attached!")
}

func NewLogger(minLevel Level, writer io.Writer) Logger {
	// adapted from fatih/color
	supportsColor := true
	if os.Getenv("TERM") == "dumb" {
		supportsColor = false
	} else {
		detect := writer
		if sw, ok := writer.(SharedWriter); ok {
			detect = sw.Underlying()
		}
		file, isFile := detect.(*os.File)
		if isFile {
			fd := file.Fd()
			supportsColor = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		} else {
			supportsColor = false
		}
	}
	return NewFuncLogger(supportsColor, minLevel, func(level Level, bytes []byte) error {
		_, err := writer.Write(bytes)
		return err
	})
}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func getColor(l Logger, c color.Attribute) *color.Color {
	color := color.New(c)
	if !l.SupportsColor() {
		color.DisableColor()
	}
	return color
}

func Blue(l Logger) *color.Color   { return getColor(l, color.FgBlue) }
func Yellow(l Logger) *color.Color { return getColor(l, color.FgYellow) }
func Green(l Logger) *color.Color  { return getColor(l, color.FgGreen) }
func Red(l Logger) *color.Color    { return getColor(l, color.FgRed) }

// Returns a context containing a logger that forks all of its output
// to both the parent context's logger and to the given `io.Writer`
func CtxWithForkedOutput(ctx context.Context, writer io.Writer) context.Context {
	l := Get(ctx)

	write := func(level Level, b []byte) error {
		l.Write(level, b)
		if l.Level().ShouldDisplay(level) {
			b = append([]byte{}, b...)
			_, err := writer.Write(b)
			if err != nil {
				return err
			}
		}
		return nil
	}

	forkedLogger := NewFuncLogger(l.SupportsColor(), l.Level(), write)
	return WithLogger(ctx, forkedLogger)
}
