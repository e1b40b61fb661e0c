package fileindex

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/tilt-dev/fopen/internal/dockerignore"
	"github.com/tilt-dev/fopen/internal/ospath"
	"github.com/tilt-dev/fopen/internal/sliceutils"
	"github.com/tilt-dev/fopen/pkg/logger"
)

// Index lists the files under a set of root directories.
//
// Paths are absolute and cleaned, so they always share the filesystem root.
type Index struct {
	fs      afero.Fs
	roots   []string
	ignores []string
}

// New builds an index over roots. Roots must be absolute.
// A root nested inside another root is dropped, since the outer walk covers it.
func New(fs afero.Fs, roots []string, ignores []string) *Index {
	cleaned := make([]string, 0, len(roots))
	for _, r := range roots {
		cleaned = append(cleaned, filepath.Clean(r))
	}
	cleaned = sliceutils.DedupedAndSorted(cleaned)

	var outer []string
	for _, r := range cleaned {
		if ospath.IsChildOfOne(outer, r) {
			continue
		}
		outer = append(outer, r)
	}

	return &Index{
		fs:      fs,
		roots:   outer,
		ignores: append([]string{}, ignores...),
	}
}

func (i *Index) Roots() []string {
	return append([]string{}, i.roots...)
}

// Paths walks every root concurrently and returns the sorted regular files.
func (i *Index) Paths(ctx context.Context) ([]string, error) {
	results := make([][]string, len(i.roots))
	g, ctx := errgroup.WithContext(ctx)
	for idx, root := range i.roots {
		idx, root := idx, root
		g.Go(func() error {
			paths, err := i.walkRoot(ctx, root)
			if err != nil {
				return err
			}
			results[idx] = paths
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	var all []string
	for _, r := range results {
		all = append(all, r...)
	}
	sort.Strings(all)

	logger.Get(ctx).Debugf("indexed %d files under %d roots", len(all), len(i.roots))
	return all, nil
}

func (i *Index) walkRoot(ctx context.Context, root string) ([]string, error) {
	isDir, err := afero.IsDir(i.fs, root)
	if err != nil {
		return nil, errors.Wrapf(err, "indexing %s", root)
	}
	if !isDir {
		return nil, errors.Errorf("indexing %s: not a directory", root)
	}

	tester, err := dockerignore.NewIgnoreTester(i.fs, root, i.ignores)
	if err != nil {
		return nil, err
	}

	l := logger.Get(ctx)
	var paths []string
	err = afero.Walk(i.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries shouldn't sink the whole index.
			l.Verbosef("skipping %s: %v", path, err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if path == root {
			return nil
		}

		if info.IsDir() {
			skip, err := tester.MatchesEntireDir(path)
			if err != nil {
				return err
			}
			if skip {
				l.Verbosef("ignoring %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() || path == filepath.Join(root, dockerignore.IgnoreFileName) {
			return nil
		}

		ignored, err := tester.Matches(path)
		if err != nil {
			return err
		}
		if !ignored {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", root)
	}
	return paths, nil
}
