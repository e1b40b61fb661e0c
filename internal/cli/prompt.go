package cli

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/tilt-dev/fopen/internal/editor"
	"github.com/tilt-dev/fopen/internal/hud/prompt"
	"github.com/tilt-dev/fopen/internal/openmode"
	"github.com/tilt-dev/fopen/pkg/logger"
)

type promptCmd struct {
	streams   ioStreams
	loader    indexLoader
	clock     clockwork.Clock
	openInput prompt.OpenInput
	flags     indexFlags
}

func newPromptCmd(streams ioStreams) *promptCmd {
	return &promptCmd{
		streams:   streams,
		loader:    newIndexLoader(),
		clock:     clockwork.NewRealClock(),
		openInput: prompt.TTYOpen,
	}
}

func (c *promptCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt [--root DIR]...",
		Short: "Pick files interactively",
		Long: `Starts an interactive prompt in open mode.

Type to search. Enter on a "folder/..." row searches under that folder,
and Enter on a file selects it. Selected files are printed on exit.
`,
		Args: cobra.NoArgs,
	}
	c.flags.register(cmd.Flags())
	return cmd
}

func (c *promptCmd) run(ctx context.Context, args []string) error {
	out := logger.NewSharedWriter(c.streams.Out)
	ctx = logger.WithLogger(ctx, logger.NewLogger(logger.Get(ctx).Level(), out))

	// Hold index logs until the prompt has printed its greeting.
	deferred := logger.NewDeferredLogger(ctx)
	idx, cfg, err := c.loader.load(logger.WithLogger(ctx, deferred), c.flags)
	if err != nil {
		return err
	}

	paths, err := idx.Paths(logger.WithLogger(ctx, deferred))
	if err != nil {
		return err
	}

	roots := idx.Roots()
	app := editor.NewApplication(func() *openmode.OpenMode {
		return openmode.New(c.clock, paths, roots, cfg.MaxResults)
	})
	editor.SwitchToOpenMode(ctx, app, 0)

	p := prompt.NewTerminalPrompt(c.openInput, out, app, roots, c.clock)
	p.SetInitLogger(deferred)
	err = p.Run(ctx)
	if err != nil {
		return err
	}

	for _, f := range app.Selected {
		_, _ = fmt.Fprintf(out, "%s\n", f)
	}
	return nil
}
