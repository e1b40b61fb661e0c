package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/tilt-dev/fopen/internal/config"
	"github.com/tilt-dev/fopen/internal/fileindex"
	"github.com/tilt-dev/fopen/internal/ospath"
	"github.com/tilt-dev/fopen/internal/sliceutils"
	"github.com/tilt-dev/fopen/internal/xdg"
	"github.com/tilt-dev/fopen/pkg/logger"
)

// indexFlags are shared by every command that builds a file index.
type indexFlags struct {
	roots      []string
	maxResults int
}

func (f *indexFlags) register(flags *pflag.FlagSet) {
	flags.StringArrayVar(&f.roots, "root", nil, "Directory to index. May be repeated. Defaults to the config roots, then the working directory")
	flags.IntVar(&f.maxResults, "max-results", 0, "How many fuzzy matches to collapse into folders")
}

// indexLoader builds the index from the config file and flags.
type indexLoader struct {
	fs   afero.Fs
	base xdg.Base
}

func newIndexLoader() indexLoader {
	return indexLoader{
		fs:   afero.NewOsFs(),
		base: xdg.NewFopenBase(),
	}
}

func (l indexLoader) loadConfig(flags indexFlags) (config.Config, error) {
	cfg, err := config.Load(l.fs, l.base, configPath)
	if err != nil {
		return config.Config{}, err
	}

	cfg = cfg.Merge(config.Overrides{Roots: flags.roots, MaxResults: flags.maxResults})
	cfg, err = cfg.ExpandRoots()
	if err != nil {
		return config.Config{}, err
	}

	err = cfg.Validate()
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (l indexLoader) load(ctx context.Context, flags indexFlags) (*fileindex.Index, config.Config, error) {
	cfg, err := l.loadConfig(flags)
	if err != nil {
		return nil, config.Config{}, err
	}

	roots, err := resolveRoots(cfg.Roots)
	if err != nil {
		return nil, config.Config{}, err
	}

	logger.Get(ctx).Debugf("config: roots %s, ignore %s, max_results %d",
		sliceutils.QuotedStringList(roots), sliceutils.QuotedStringList(cfg.Ignore), cfg.MaxResults)
	return fileindex.New(l.fs, roots, cfg.Ignore), cfg, nil
}

func resolveRoots(roots []string) ([]string, error) {
	if len(roots) == 0 {
		wd, err := ospath.Realwd()
		if err != nil {
			return nil, errors.Wrap(err, "resolving working directory")
		}
		return []string{wd}, nil
	}

	result := make([]string, 0, len(roots))
	for _, root := range roots {
		abs, err := ospath.RealAbs(root)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving root %s", root)
		}
		result = append(result, abs)
	}
	return result, nil
}
