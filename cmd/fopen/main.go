package main

import (
	"github.com/tilt-dev/fopen/internal/cli"
)

// Magic variables set by goreleaser
var version string
var date string

func main() {
	cli.SetBuildInfo(cli.BuildInfo{
		Version: version,
		Date:    date,
	})
	cli.Execute()
}
