package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/tilt-dev/fopen/internal/folderfilter"
	"github.com/tilt-dev/fopen/internal/openmode"
	"github.com/tilt-dev/fopen/internal/ospath"
	"github.com/tilt-dev/fopen/pkg/logger"
)

type searchCmd struct {
	streams ioStreams
	loader  indexLoader
	clock   clockwork.Clock
	flags   indexFlags
	ranked  bool
}

func newSearchCmd(streams ioStreams) *searchCmd {
	return &searchCmd{
		streams: streams,
		loader:  newIndexLoader(),
		clock:   clockwork.NewRealClock(),
	}
}

func (c *searchCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [--root DIR]... [QUERY]...",
		Short: "Print the folder-collapsed matches for a query",
		Long: `Indexes the roots and prints one row per line.

Matches that share a folder below their common ancestor are collapsed into
a single "folder/..." row. Start the query with ">dir" to search only under
that folder, e.g.:

fopen search '>src main'
`,
		Args: cobra.ArbitraryArgs,
	}
	c.flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&c.ranked, "ranked", false, "Also print the fuzzy matches, best first, before the rows")
	return cmd
}

func (c *searchCmd) run(ctx context.Context, args []string) error {
	idx, cfg, err := c.loader.load(ctx, c.flags)
	if err != nil {
		return err
	}

	paths, err := idx.Paths(ctx)
	if err != nil {
		return err
	}

	m := openmode.New(c.clock, paths, idx.Roots(), cfg.MaxResults)
	results := m.SetInput(ctx, strings.Join(args, " "))
	if results.Err != nil {
		return results.Err
	}

	l := logger.Get(ctx)
	if c.ranked {
		for _, name := range ospath.FileListDisplayNames(idx.Roots(), results.Matches) {
			_, _ = fmt.Fprintf(c.streams.Out, "%s\n", name)
		}
		_, _ = fmt.Fprintln(c.streams.Out)
	}

	for _, row := range results.Rows {
		name := ospath.FileDisplayName(idx.Roots(), row)
		if folderfilter.IsTruncated(row) {
			name = logger.Blue(l).Sprint(name)
		}
		_, _ = fmt.Fprintf(c.streams.Out, "%s\n", name)
	}
	return nil
}
