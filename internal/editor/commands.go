package editor

import (
	"context"
	"unicode"
)

type keymap struct {
	bindings map[rune]Command
	fallback Command
}

var keymaps = map[Mode]keymap{
	ModeNormal: {
		bindings: map[rune]Command{
			'i': SwitchToInsertMode,
			'f': SwitchToJumpMode,
			'o': SwitchToOpenMode,
			'q': Exit,
		},
	},
	ModeInsert: {
		bindings: map[rune]Command{
			KeyEscape: SwitchToNormalMode,
		},
	},
	ModeJump: {
		bindings: map[rune]Command{
			KeyEscape: SwitchToNormalMode,
		},
	},
	ModeOpen: {
		bindings: map[rune]Command{
			KeyEscape:    SwitchToNormalMode,
			KeyEnter:     OpenSelected,
			KeyNewline:   OpenSelected,
			KeyBackspace: OpenBackspace,
			KeyCtrlH:     OpenBackspace,
			KeyTab:       OpenNextRow,
		},
		fallback: OpenPush,
	},
}

func SwitchToNormalMode(ctx context.Context, app *Application, _ rune) {
	app.setMode(ctx, ModeNormal)
}

func SwitchToInsertMode(ctx context.Context, app *Application, _ rune) {
	app.setMode(ctx, ModeInsert)
}

func SwitchToJumpMode(ctx context.Context, app *Application, _ rune) {
	app.setMode(ctx, ModeJump)
}

// SwitchToOpenMode starts a fresh prompt with an empty query.
func SwitchToOpenMode(ctx context.Context, app *Application, _ rune) {
	app.Open = app.newOpenMode()
	app.Open.SetInput(ctx, "")
	app.Cursor = 0
	app.setMode(ctx, ModeOpen)
}

func Exit(ctx context.Context, app *Application, _ rune) {
	app.setMode(ctx, ModeExit)
}

func OpenPush(ctx context.Context, app *Application, r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	app.Open.Push(ctx, r)
	app.Cursor = 0
}

func OpenBackspace(ctx context.Context, app *Application, _ rune) {
	app.Open.Backspace(ctx)
	app.Cursor = 0
}

func OpenNextRow(ctx context.Context, app *Application, _ rune) {
	rows := app.Rows()
	if len(rows) == 0 {
		app.Cursor = 0
		return
	}
	app.Cursor = (app.Cursor + 1) % len(rows)
}

// OpenSelected chooses the highlighted row. Folders drill down and stay in
// open mode; files are recorded and return to normal mode.
func OpenSelected(ctx context.Context, app *Application, _ rune) {
	rows := app.Rows()
	if app.Cursor >= len(rows) {
		return
	}

	selected, ok := app.Open.Choose(ctx, rows[app.Cursor])
	app.Cursor = 0
	if !ok {
		return
	}

	app.Selected = append(app.Selected, selected)
	app.setMode(ctx, ModeNormal)
}
