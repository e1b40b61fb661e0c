package fileindex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilt-dev/fopen/internal/testutils"
	"github.com/tilt-dev/fopen/internal/testutils/tempdir"
)

type fixture struct {
	t   *testing.T
	ctx context.Context
	fs  afero.Fs
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		t:   t,
		ctx: testutils.CtxForTest(),
		fs:  afero.NewMemMapFs(),
	}
}

func (f *fixture) touch(paths ...string) {
	for _, p := range paths {
		require.NoError(f.t, afero.WriteFile(f.fs, p, []byte(""), 0644))
	}
}

func (f *fixture) paths(roots []string, ignores ...string) []string {
	paths, err := New(f.fs, roots, ignores).Paths(f.ctx)
	require.NoError(f.t, err)
	return paths
}

func TestPathsSorted(t *testing.T) {
	f := newFixture(t)
	f.touch("/src/b.go", "/src/a.go", "/src/pkg/c.go")

	assert.Equal(t, []string{"/src/a.go", "/src/b.go", "/src/pkg/c.go"}, f.paths([]string{"/src"}))
}

func TestPathsIgnoresPatterns(t *testing.T) {
	f := newFixture(t)
	f.touch("/src/main.go", "/src/.git/HEAD", "/src/node_modules/lib/index.js")

	assert.Equal(t, []string{"/src/main.go"}, f.paths([]string{"/src"}, ".git", "node_modules"))
}

func TestPathsReadsIgnoreFile(t *testing.T) {
	f := newFixture(t)
	f.touch("/src/main.go", "/src/debug.log", "/src/docs/README.md", "/src/docs/notes.md")
	require.NoError(t, afero.WriteFile(f.fs, "/src/.fopenignore", []byte("*.log\ndocs\n!docs/README.md\n"), 0644))

	assert.Equal(t, []string{"/src/docs/README.md", "/src/main.go"}, f.paths([]string{"/src"}))
}

func TestPathsMultipleRoots(t *testing.T) {
	f := newFixture(t)
	f.touch("/src/main.go", "/docs/index.md", "/other/x")

	assert.Equal(t, []string{"/docs/index.md", "/src/main.go"}, f.paths([]string{"/src", "/docs"}))
}

func TestNestedRootsAreDropped(t *testing.T) {
	f := newFixture(t)
	f.touch("/src/main.go", "/src/pkg/util.go")

	idx := New(f.fs, []string{"/src/pkg", "/src/", "/src"}, nil)
	assert.Equal(t, []string{"/src"}, idx.Roots())

	paths, err := idx.Paths(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/main.go", "/src/pkg/util.go"}, paths)
}

func TestRootIsNotADirectory(t *testing.T) {
	f := newFixture(t)
	f.touch("/src/main.go")

	_, err := New(f.fs, []string{"/src/main.go"}, nil).Paths(f.ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indexing /src/main.go: not a directory")
}

func TestCanceledContext(t *testing.T) {
	f := newFixture(t)
	f.touch("/src/main.go")

	ctx, cancel := context.WithCancel(f.ctx)
	cancel()

	_, err := New(f.fs, []string{"/src"}, nil).Paths(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPathsOnDisk(t *testing.T) {
	tf := tempdir.NewTempDirFixture(t)
	defer tf.TearDown()

	tf.TouchFiles([]string{
		filepath.Join("hello", "world", "buddy"),
		filepath.Join("hello", "buddy"),
	})

	paths, err := New(afero.NewOsFs(), []string{tf.Path()}, nil).Paths(testutils.CtxForTest())
	require.NoError(t, err)
	assert.Equal(t, []string{
		tf.JoinPath("hello", "buddy"),
		tf.JoinPath("hello", "world", "buddy"),
	}, paths)
}

func TestMissingRootOnDisk(t *testing.T) {
	tf := tempdir.NewTempDirFixture(t)
	defer tf.TearDown()

	_, err := New(afero.NewOsFs(), []string{tf.JoinPath("nope")}, nil).Paths(testutils.CtxForTest())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
