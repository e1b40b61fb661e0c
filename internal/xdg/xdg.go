package xdg

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "fopen"

// Base finds fopen's files under the XDG base directories.
type Base interface {
	// ConfigFile returns the path where a config file should be written,
	// creating parent directories as needed.
	ConfigFile(relPath string) (string, error)

	// SearchConfigFile returns the path of an existing config file,
	// or an error if none of the XDG config dirs has it.
	SearchConfigFile(relPath string) (string, error)
}

type fopenBase struct{}

func NewFopenBase() Base {
	return fopenBase{}
}

func (fopenBase) ConfigFile(relPath string) (string, error) {
	return xdg.ConfigFile(filepath.Join(appName, relPath))
}

func (fopenBase) SearchConfigFile(relPath string) (string, error) {
	return xdg.SearchConfigFile(filepath.Join(appName, relPath))
}
