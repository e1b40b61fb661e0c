package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/tilt-dev/fopen/pkg/logger"
)

var debug bool
var verbose bool
var configPath string

func logLevel() logger.Level {
	if debug {
		return logger.DebugLvl
	} else if verbose {
		return logger.VerboseLvl
	} else {
		return logger.InfoLvl
	}
}

type ioStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

func defaultStreams() ioStreams {
	return ioStreams{
		In:     os.Stdin,
		Out:    colorable.NewColorableStdout(),
		ErrOut: colorable.NewColorableStderr(),
	}
}

func Cmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fopen",
		Short: "fopen finds files by fuzzy search and folder drill-down",
		Long: `fopen indexes one or more directories and finds files by fuzzy search.

Matches that share a folder are collapsed into a single "folder/..." row.
Start a query with ">dir" to search only under that folder.`,
	}

	streams := defaultStreams()
	addCommand(rootCmd, newSearchCmd(streams))
	addCommand(rootCmd, newSplitCmd(streams))
	addCommand(rootCmd, newPromptCmd(streams))
	addCommand(rootCmd, newConfigCmd(streams))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: $XDG_CONFIG_HOME/fopen/config.yaml)")

	return rootCmd
}

func Execute() {
	cmd := Cmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type fopenCmd interface {
	register() *cobra.Command
	run(ctx context.Context, args []string) error
}

func preCommand() context.Context {
	l := logger.NewLogger(logLevel(), os.Stderr)
	return logger.WithLogger(context.Background(), l)
}

func addCommand(parent *cobra.Command, child fopenCmd) {
	cobraChild := child.register()
	cobraChild.Run = func(_ *cobra.Command, args []string) {
		ctx := preCommand()
		err := child.run(ctx, args)
		if err != nil {
			_, err := fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if err != nil {
				panic(err)
			}
			os.Exit(1)
		}
	}

	parent.AddCommand(cobraChild)
}
