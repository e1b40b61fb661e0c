package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilt-dev/fopen/internal/folderfilter"
)

type splitCmd struct {
	streams ioStreams
}

func newSplitCmd(streams ioStreams) *splitCmd {
	return &splitCmd{streams: streams}
}

func (c *splitCmd) register() *cobra.Command {
	return &cobra.Command{
		Use:   "split INPUT...",
		Short: "Print how a prompt input splits into query and root filter",
		Long: `Prints the query text and the root filter of a prompt input, tab-separated.

fopen split '>src main'
`,
		Args: cobra.MinimumNArgs(1),
	}
}

func (c *splitCmd) run(ctx context.Context, args []string) error {
	query, root := folderfilter.SplitQuery(strings.Join(args, " "))
	_, err := fmt.Fprintf(c.streams.Out, "%s\t%s\n", query, root)
	return err
}
