package editor

import (
	"context"

	"github.com/tilt-dev/fopen/internal/openmode"
	"github.com/tilt-dev/fopen/pkg/logger"
)

const (
	KeyCtrlC     = 3
	KeyBackspace = 127
	KeyCtrlH     = 8
	KeyEnter     = '\r'
	KeyNewline   = '\n'
	KeyEscape    = 27
	KeyTab       = '\t'
)

// A Command reacts to a key press in the current mode.
type Command func(ctx context.Context, app *Application, r rune)

// Application is the editor state that key commands act on.
type Application struct {
	Mode Mode
	Open *openmode.OpenMode

	// Highlighted row in the open menu.
	Cursor int

	// Files chosen from the open menu, most recent last.
	Selected []string

	newOpenMode func() *openmode.OpenMode
}

// NewApplication starts in normal mode. newOpenMode builds a fresh open
// mode each time the user switches to it.
func NewApplication(newOpenMode func() *openmode.OpenMode) *Application {
	return &Application{
		Mode:        ModeNormal,
		newOpenMode: newOpenMode,
	}
}

// HandleKey dispatches r to the command bound in the current mode.
func (app *Application) HandleKey(ctx context.Context, r rune) {
	if r == KeyCtrlC {
		Exit(ctx, app, r)
		return
	}

	keymap, ok := keymaps[app.Mode]
	if !ok {
		return
	}

	cmd, ok := keymap.bindings[r]
	if !ok {
		cmd = keymap.fallback
	}
	if cmd != nil {
		cmd(ctx, app, r)
	}
}

func (app *Application) setMode(ctx context.Context, m Mode) {
	if app.Mode != m {
		logger.Get(ctx).Debugf("mode: %s -> %s", app.Mode, m)
	}
	app.Mode = m
}

// Rows returns the open menu, or nothing outside of open mode.
func (app *Application) Rows() []string {
	if app.Mode != ModeOpen || app.Open == nil {
		return nil
	}
	return app.Open.Results().Rows
}

// LastSelected returns the most recently chosen file.
func (app *Application) LastSelected() (string, bool) {
	if len(app.Selected) == 0 {
		return "", false
	}
	return app.Selected[len(app.Selected)-1], true
}
