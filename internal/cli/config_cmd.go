package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilt-dev/fopen/internal/config"
)

type configCmd struct {
	streams ioStreams
	loader  indexLoader
	flags   indexFlags
	init    bool
}

func newConfigCmd(streams ioStreams) *configCmd {
	return &configCmd{
		streams: streams,
		loader:  newIndexLoader(),
	}
}

func (c *configCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config, after flags are applied",
		Args:  cobra.NoArgs,
	}
	c.flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&c.init, "init", false, "Write a default config file, if there isn't one yet, and print its path")
	return cmd
}

func (c *configCmd) run(ctx context.Context, args []string) error {
	if c.init {
		path, err := config.Init(c.loader.fs, c.loader.base)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.streams.Out, "%s\n", path)
		return err
	}

	cfg, err := c.loader.loadConfig(c.flags)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.streams.Out, cfg.String())
	return err
}
