package prompt

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jonboulle/clockwork"
	tty "github.com/mattn/go-tty"

	"github.com/tilt-dev/fopen/internal/editor"
	"github.com/tilt-dev/fopen/internal/folderfilter"
	"github.com/tilt-dev/fopen/internal/ospath"
	"github.com/tilt-dev/fopen/internal/sliceutils"
	"github.com/tilt-dev/fopen/pkg/logger"
)

type TerminalInput interface {
	ReadRune() (rune, error)
	Close() error
}

type OpenInput func() (TerminalInput, error)

func TTYOpen() (TerminalInput, error) {
	return tty.Open()
}

type TerminalPrompt struct {
	openInput OpenInput
	stdout    io.Writer
	app       *editor.Application
	roots     []string
	clock     clockwork.Clock

	term TerminalInput

	// Make sure that Close() completes both on exit and on cancellation.
	closeOnce sync.Once

	initLogger *logger.DeferredLogger
}

func NewTerminalPrompt(openInput OpenInput, stdout io.Writer, app *editor.Application,
	roots []string, clock clockwork.Clock) *TerminalPrompt {
	return &TerminalPrompt{
		openInput: openInput,
		stdout:    stdout,
		app:       app,
		roots:     roots,
		clock:     clock,
	}
}

// Logs written while the index was built are held back until the greeting
// has been printed, so they show up under it.
func (p *TerminalPrompt) SetInitLogger(l *logger.DeferredLogger) {
	p.initLogger = l
}

func (p *TerminalPrompt) TearDown() {
	if p.term != nil {
		p.closeOnce.Do(func() {
			_ = p.term.Close()
		})
	}
}

// Run reads keys until the application exits or ctx is canceled.
func (p *TerminalPrompt) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.printGreeting(ctx)

	t, err := p.openInput()
	if err != nil {
		return err
	}
	p.term = t
	defer p.TearDown()

	keyCh := make(chan runeMessage)
	errCh := make(chan error, 1)

	// One goroutine just pulls input from TTY. Processing happens below,
	// so that we can clean up the TTY even if it's still blocking on ReadRune.
	go func() {
		for ctx.Err() == nil {
			r, err := t.ReadRune()
			if err != nil {
				errCh <- err
				return
			}

			msg := runeMessage{
				rune:   r,
				stopCh: make(chan bool),
			}
			select {
			case keyCh <- msg:
			case <-ctx.Done():
				return
			}

			if stop := <-msg.stopCh; stop {
				return
			}
		}
	}()

	p.render(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			return err
		case msg := <-keyCh:
			start := p.clock.Now()
			p.app.HandleKey(ctx, msg.rune)
			exit := p.app.Mode == editor.ModeExit
			if !exit {
				p.render(ctx)
			}
			logger.Get(ctx).Debugf("key %q handled in %s", msg.rune, p.clock.Since(start))

			msg.stopCh <- exit
			if exit {
				return nil
			}
		}
	}
}

func (p *TerminalPrompt) printGreeting(ctx context.Context) {
	l := logger.Get(ctx)
	_, _ = fmt.Fprintf(p.stdout, "%s\n", logger.Green(l).Sprintf("fopen indexing %s", sliceutils.QuotedStringList(p.roots)))

	if p.initLogger != nil {
		p.initLogger.Flush()
	}

	_, _ = fmt.Fprintf(p.stdout, "(o) to open a file\n")
	_, _ = fmt.Fprintf(p.stdout, "(>dir) in the prompt to search under a folder\n")
	_, _ = fmt.Fprintf(p.stdout, "(tab) to move, (enter) to choose, (esc) to go back\n")
	_, _ = fmt.Fprintf(p.stdout, "(q) or (ctrl-c) to exit\n\n")
}

func (p *TerminalPrompt) render(ctx context.Context) {
	_, _ = io.WriteString(p.stdout, Render(logger.Get(ctx), p.app, p.roots))
}

// Render draws the mode line and, in open mode, the menu.
func Render(l logger.Logger, app *editor.Application, roots []string) string {
	if app.Mode != editor.ModeOpen {
		return fmt.Sprintf("-- %s --\n", app.Mode)
	}

	results := app.Open.Results()
	out := fmt.Sprintf("-- open -- %s\n", logger.Yellow(l).Sprintf("%s_", results.Input))
	if results.Err != nil {
		return out + logger.Red(l).Sprintf("  %v\n", results.Err)
	}
	if len(results.Rows) == 0 {
		return out + "  (no matches)\n"
	}

	for i, row := range results.Rows {
		name := ospath.FileDisplayName(roots, row)
		if folderfilter.IsTruncated(row) {
			name = logger.Blue(l).Sprint(name)
		}

		cursor := "  "
		if i == app.Cursor {
			cursor = logger.Green(l).Sprint("> ")
		}
		out += cursor + name + "\n"
	}
	return out
}

type runeMessage struct {
	rune rune

	// The receiver of this message should
	// ACK the channel when they're done.
	//
	// Sending 'true' indicates that we're exiting and the
	// input goroutine should stop reading TTY input.
	stopCh chan bool
}
