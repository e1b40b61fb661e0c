package dockerignore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	dockerbuilder "github.com/docker/docker/builder/dockerignore"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tilt-dev/dockerignore"

	"github.com/tilt-dev/fopen/internal/ospath"
)

// IgnoreFileName is read from the top of each indexed root.
const IgnoreFileName = ".fopenignore"

type dockerPathMatcher struct {
	repoRoot string
	matcher  *dockerignore.PatternMatcher
}

// Matches reports whether f is ignored. Relative paths are resolved against the root.
func (i dockerPathMatcher) Matches(f string) (bool, error) {
	if !filepath.IsAbs(f) {
		f = filepath.Join(i.repoRoot, f)
	}
	return i.matcher.Matches(f)
}

// MatchesEntireDir reports whether every file under the directory f is ignored,
// so the walk can skip it.
func (i dockerPathMatcher) MatchesEntireDir(f string) (bool, error) {
	matches, err := i.Matches(f)
	if !matches || err != nil {
		return matches, err
	}

	// We match the dir, but an exception might re-include something underneath it.
	if i.matcher.Exclusions() {
		for _, pattern := range i.matcher.Patterns() {
			if !pattern.Exclusion() {
				continue
			}
			if ospath.IsChild(f, pattern.String()) {
				return false, nil
			}
		}
	}
	return true, nil
}

// NewDockerPatternMatcher compiles patterns relative to repoRoot.
func NewDockerPatternMatcher(repoRoot string, patterns []string) (*dockerPathMatcher, error) {
	absRoot, err := filepath.Abs(repoRoot)
	if err != nil {
		return nil, err
	}

	// Docker's PatternMatcher cleans paths. Make sure to join with absRoot.
	absPatterns := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}

		if p[0] == '!' {
			absPatterns = append(absPatterns, fmt.Sprintf("!%s", filepath.Join(absRoot, filepath.Clean(p[1:]))))
		} else {
			absPatterns = append(absPatterns, filepath.Join(absRoot, filepath.Clean(p)))
		}
	}

	pm, err := dockerignore.NewPatternMatcher(absPatterns)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling ignore patterns for %s", repoRoot)
	}

	return &dockerPathMatcher{
		repoRoot: absRoot,
		matcher:  pm,
	}, nil
}

// ReadPatterns reads the ignore file at the top of repoRoot.
// A missing file yields no patterns.
func ReadPatterns(fs afero.Fs, repoRoot string) ([]string, error) {
	path := filepath.Join(repoRoot, IgnoreFileName)
	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	patterns, err := dockerbuilder.ReadAll(bytes.NewReader(contents))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return patterns, nil
}

// NewIgnoreTester combines the given patterns with the root's ignore file.
func NewIgnoreTester(fs afero.Fs, repoRoot string, patterns []string) (*dockerPathMatcher, error) {
	filePatterns, err := ReadPatterns(fs, repoRoot)
	if err != nil {
		return nil, err
	}

	all := append(append([]string{}, patterns...), filePatterns...)
	return NewDockerPatternMatcher(repoRoot, all)
}
