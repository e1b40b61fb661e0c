package folderfilter

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilt-dev/fopen/internal/ospath"
)

var buddies = []string{
	"/hello/world/buddy",
	"/hello/venus/buddy",
	"/hello/buddy",
}

func TestSearchAsFoldersCollapsesUniqueChains(t *testing.T) {
	result, err := SearchAsFolderStrings(buddies, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/hello/buddy",
		"/hello/venus/...",
		"/hello/world/...",
	}, result)
}

func TestSearchAsFoldersWithRoot(t *testing.T) {
	candidates := append(append([]string{}, buddies...), "/group/buddy")
	result, err := SearchAsFolderStrings(candidates, "/group")
	require.NoError(t, err)
	assert.Equal(t, []string{"/group/buddy"}, result)
}

func TestSearchAsFoldersRootMatchesWholeComponents(t *testing.T) {
	result, err := SearchAsFolderStrings([]string{"/groupies/a", "/group/b"}, "/group")
	require.NoError(t, err)
	assert.Equal(t, []string{"/group/b"}, result)
}

func TestSearchAsFoldersEmpty(t *testing.T) {
	result, err := SearchAsFolderStrings(nil, "")
	require.NoError(t, err)
	assert.Empty(t, result)

	result, err = SearchAsFolderStrings(buddies, "/nowhere")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSearchAsFoldersSingleCandidate(t *testing.T) {
	result, err := SearchAsFolderStrings([]string{"/a/b/c"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/b/c"}, result)
}

func TestSearchAsFoldersRenormalizesEarlierEntries(t *testing.T) {
	// The first three agree on /a/b. The last one drags the ancestor up to /a,
	// so every entry registered under /a/b has to collapse into /a/b/...
	result, err := SearchAsFolderStrings([]string{
		"/a/b/c/x",
		"/a/b/d/y",
		"/a/b/e",
		"/a/z",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/b/...", "/a/z"}, result)
}

func TestSearchAsFoldersSkipsCandidateEqualToAncestor(t *testing.T) {
	result, err := SearchAsFolderStrings([]string{"/a/b", "/a", "/a/c/d"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/b", "/a/c/..."}, result)
}

func TestSearchAsFoldersKeepsFirstCandidateEqualToAncestor(t *testing.T) {
	result, err := SearchAsFolderStrings([]string{"/a", "/a/b/c"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/a/b/..."}, result)
}

func TestSearchAsFoldersRelative(t *testing.T) {
	result, err := SearchAsFolderStrings([]string{
		"src/main.go",
		"src/util/strings.go",
		"README.md",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src/..."}, result)

	result, err = SearchAsFolderStrings([]string{
		"src/main.go",
		"src/util/strings.go",
		"README.md",
	}, "src")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.go", "src/util/..."}, result)
}

func TestSearchAsFoldersNoCommonAncestor(t *testing.T) {
	for _, candidates := range [][]string{
		{"/a/b", "c/d"},
		{"c/d", "/a/b"},
		{"c", "/a/b"},
		{"c/d", "e/f", "/a"},
	} {
		result, err := SearchAsFolderStrings(candidates, "")
		if assert.Error(t, err, "candidates %v", candidates) {
			assert.True(t, errors.Is(err, ErrNoCommonAncestor))
			assert.Contains(t, err.Error(), "no common ancestor")
		}
		assert.Nil(t, result)
	}
}

func TestSearchAsFoldersOrderIsByComponent(t *testing.T) {
	result, err := SearchAsFolderStrings([]string{"/x/a-b/f", "/x/a/g/h"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/x/a/...", "/x/a-b/..."}, result)
}

func TestSearchAsFoldersOrderIndependent(t *testing.T) {
	candidates := fixtureTree()
	expected, err := SearchAsFolderStrings(candidates, "")
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]string{}, candidates...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		actual, err := SearchAsFolderStrings(shuffled, "")
		require.NoError(t, err)
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("order %v changed the result (-want +got):\n%s", shuffled, diff)
		}
	}
}

func TestSearchAsFoldersPrefixLaw(t *testing.T) {
	for _, root := range []string{"", "/src", "/src/pkg", "/docs"} {
		candidates := ospath.NewPaths(fixtureTree())
		result, err := SearchAsFolders(candidates, root)
		require.NoError(t, err)

		for _, display := range result {
			stripped := ospath.NewPath(mustTrim(display.String()))
			assert.Truef(t, hasDescendant(stripped, candidates),
				"%s (root %q) is not an ancestor of any candidate", display, root)
		}
	}
}

func TestSearchAsFoldersUniquenessLaw(t *testing.T) {
	result, err := SearchAsFolderStrings(fixtureTree(), "")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range result {
		assert.Falsef(t, seen[r], "duplicate entry %s", r)
		seen[r] = true
	}
	assert.True(t, sort.SliceIsSorted(result, func(i, j int) bool {
		return ospath.NewPath(result[i]).Compare(ospath.NewPath(result[j])) < 0
	}))
}

func TestSearchAsFoldersIdempotent(t *testing.T) {
	for _, root := range []string{"", "/src", "/src/pkg"} {
		first, err := SearchAsFolderStrings(fixtureTree(), root)
		require.NoError(t, err)

		stripped := trimAll(first)
		second, err := SearchAsFolderStrings(stripped, root)
		require.NoError(t, err)

		if diff := cmp.Diff(stripped, trimAll(second)); diff != "" {
			t.Errorf("root %q: feeding results back changed them (-want +got):\n%s", root, diff)
		}
	}
}

func fixtureTree() []string {
	return []string{
		"/src/main.go",
		"/src/pkg/model/path.go",
		"/src/pkg/model/path_test.go",
		"/src/pkg/logger/logger.go",
		"/src/pkg/README.md",
		"/src/internal/cli/cli.go",
		"/src/internal/cli/search.go",
		"/docs/index.md",
		"/go.mod",
	}
}

func mustTrim(display string) string {
	p, _ := TrimEllipsis(display)
	return p
}

func trimAll(displays []string) []string {
	result := make([]string, len(displays))
	for i, d := range displays {
		result[i] = mustTrim(d)
	}
	return result
}

func hasDescendant(ancestor ospath.Path, candidates []ospath.Path) bool {
	for _, c := range candidates {
		if c.HasPrefix(ancestor) {
			return true
		}
	}
	return false
}
