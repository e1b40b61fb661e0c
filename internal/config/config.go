package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/tilt-dev/fopen/internal/sliceutils"
	"github.com/tilt-dev/fopen/internal/xdg"
)

const FileName = "config.yaml"

const DefaultMaxResults = 50

var DefaultIgnore = []string{".git"}

type Config struct {
	// Directories to index. Defaults to the working directory.
	Roots []string `yaml:"roots"`

	// Dockerignore-style patterns, relative to each root.
	Ignore []string `yaml:"ignore"`

	// How many fuzzy matches to hand to the folder filter.
	MaxResults int `yaml:"max_results"`
}

func Default() Config {
	return Config{
		Ignore:     append([]string{}, DefaultIgnore...),
		MaxResults: DefaultMaxResults,
	}
}

// Load reads the config at path. If path is empty, searches the XDG config
// dirs. A missing file is not an error; you get the defaults.
func Load(fs afero.Fs, base xdg.Base, path string) (Config, error) {
	if path == "" {
		found, err := base.SearchConfigFile(FileName)
		if err != nil {
			return Default(), nil
		}
		path = found
	}

	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}

	return Parse(contents, path)
}

func Parse(contents []byte, path string) (Config, error) {
	c := Default()
	err := yaml.UnmarshalStrict(contents, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}

	err = c.Validate()
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return c, nil
}

// Overrides are command-line values that take precedence over the file.
type Overrides struct {
	Roots      []string
	MaxResults int
}

func (c Config) Merge(o Overrides) Config {
	result := c
	if len(o.Roots) > 0 {
		result.Roots = append([]string{}, o.Roots...)
	}
	if o.MaxResults > 0 {
		result.MaxResults = o.MaxResults
	}
	return result
}

// ExpandRoots expands a leading ~ in each root.
func (c Config) ExpandRoots() (Config, error) {
	result := c
	result.Roots = make([]string, len(c.Roots))
	for i, r := range c.Roots {
		expanded, err := homedir.Expand(r)
		if err != nil {
			return Config{}, errors.Wrapf(err, "expanding root %s", r)
		}
		result.Roots[i] = expanded
	}
	return result, nil
}

func (c Config) Validate() error {
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}

	dupes := sliceutils.Duplicates(c.Roots)
	if len(dupes) > 0 {
		return fmt.Errorf("duplicate roots: %s", sliceutils.QuotedStringList(dupes))
	}
	return nil
}

func (c Config) String() string {
	// A struct of strings and ints always marshals.
	b, _ := yaml.Marshal(c)
	return string(b)
}

// Init writes the default config to the XDG config dir, unless a file is
// already there. Returns the path either way.
func Init(fs afero.Fs, base xdg.Base) (string, error) {
	path, err := base.ConfigFile(FileName)
	if err != nil {
		return "", errors.Wrap(err, "locating config dir")
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "checking config %s", path)
	}
	if exists {
		return path, nil
	}

	err = afero.WriteFile(fs, path, []byte(Default().String()), 0644)
	if err != nil {
		return "", errors.Wrapf(err, "writing config %s", path)
	}
	return path, nil
}
