package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type BuildInfo struct {
	Version string
	Date    string
}

func (b BuildInfo) String() string {
	version := b.Version
	date := b.Date
	if version == "" {
		version = "dev"
	}
	if date == "" {
		return fmt.Sprintf("v%s", version)
	}
	return fmt.Sprintf("v%s, built %s", version, date)
}

var buildInfo BuildInfo

func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Current fopen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(buildInfo.String())
		},
	}
}
