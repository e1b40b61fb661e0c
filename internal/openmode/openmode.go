package openmode

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/schollz/closestmatch"

	"github.com/tilt-dev/fopen/internal/folderfilter"
	"github.com/tilt-dev/fopen/internal/ospath"
	"github.com/tilt-dev/fopen/pkg/logger"
)

// Substring lengths that closestmatch indexes candidates by.
var bagSizes = []int{2, 3}

// Results is a snapshot of the menu for one value of the input.
type Results struct {
	Input string
	Query string

	// The root filter after ~ expansion and resolution against the index root.
	Root string

	// Candidates under Root, best fuzzy match first.
	Matches []string

	// Folder-shrunk menu rows, sorted.
	Rows []string

	Err error
}

// OpenMode is the state of the open-file prompt. It is not safe for
// concurrent use; the prompt drives it from a single goroutine.
type OpenMode struct {
	clock      clockwork.Clock
	candidates []string
	matcher    *closestmatch.ClosestMatch
	roots      []string
	maxResults int

	input   string
	results Results
}

// New creates an open mode over absolute candidate paths.
// Relative root filters resolve against the first of roots.
func New(clock clockwork.Clock, candidates []string, roots []string, maxResults int) *OpenMode {
	return &OpenMode{
		clock:      clock,
		candidates: append([]string{}, candidates...),
		matcher:    closestmatch.New(candidates, bagSizes),
		roots:      append([]string{}, roots...),
		maxResults: maxResults,
	}
}

func (m *OpenMode) Input() string {
	return m.input
}

func (m *OpenMode) Results() Results {
	return m.results
}

func (m *OpenMode) SetInput(ctx context.Context, input string) Results {
	m.input = input
	m.results = m.search(ctx)
	return m.results
}

func (m *OpenMode) Push(ctx context.Context, r rune) Results {
	return m.SetInput(ctx, m.input+string(r))
}

func (m *OpenMode) Backspace(ctx context.Context) Results {
	runes := []rune(m.input)
	if len(runes) == 0 {
		return m.SetInput(ctx, "")
	}
	return m.SetInput(ctx, string(runes[:len(runes)-1]))
}

// Choose acts on a menu row. A truncated row drills into its folder by
// rewriting the input as a root filter, and returns false. Any other row is
// a selection, returned with true.
func (m *OpenMode) Choose(ctx context.Context, row string) (string, bool) {
	folder, truncated := folderfilter.TrimEllipsis(row)
	if !truncated {
		return row, true
	}

	m.SetInput(ctx, string(folderfilter.RootMarker)+folder+" ")
	return "", false
}

func (m *OpenMode) search(ctx context.Context) Results {
	start := m.clock.Now()
	query, root := folderfilter.SplitQuery(m.input)
	result := Results{Input: m.input, Query: query}

	resolved, err := m.resolveRoot(root)
	if err != nil {
		result.Err = err
		return result
	}
	result.Root = resolved

	result.Matches = m.match(query, root, resolved)
	result.Rows, result.Err = folderfilter.SearchAsFolderStrings(result.Matches, resolved)

	logger.Get(ctx).Debugf("open: %d candidates, %d matches, %d rows for %q under %q in %s",
		len(m.candidates), len(result.Matches), len(result.Rows), query, resolved, m.clock.Since(start))
	return result
}

func (m *OpenMode) resolveRoot(root string) (string, error) {
	if root == "" {
		return "", nil
	}

	expanded, err := homedir.Expand(root)
	if err != nil {
		return "", errors.Wrapf(err, "expanding root filter %s", root)
	}

	if !filepath.IsAbs(expanded) && len(m.roots) > 0 {
		expanded = filepath.Join(m.roots[0], expanded)
	}
	return filepath.Clean(expanded), nil
}

// match ranks the candidates under root against query, keeping at most
// maxResults. A query with nothing besides the root token keeps every
// candidate under root, in index order and uncapped, so browsing by folder
// always sees the whole index.
func (m *OpenMode) match(query string, rootToken string, root string) []string {
	rootPath := ospath.NewPath(root)
	underRoot := func(c string) bool {
		return ospath.NewPath(c).HasPrefix(rootPath)
	}

	query = strings.TrimSpace(query)
	if strings.TrimSpace(strings.TrimPrefix(query, rootToken)) == "" {
		var result []string
		for _, c := range m.candidates {
			if underRoot(c) {
				result = append(result, c)
			}
		}
		return result
	}

	var ranked []string
	if len(query) < bagSizes[0] {
		// Too short for closestmatch to score.
		for _, c := range m.candidates {
			if strings.Contains(c, query) {
				ranked = append(ranked, c)
			}
		}
	} else if len(m.candidates) > 0 {
		ranked = m.matcher.ClosestN(query, len(m.candidates))
	}

	result := make([]string, 0, m.maxResults)
	for _, c := range ranked {
		if len(result) >= m.maxResults {
			break
		}
		// closestmatch pads its result with "" when nothing scores.
		if c != "" && underRoot(c) {
			result = append(result, c)
		}
	}
	return result
}
