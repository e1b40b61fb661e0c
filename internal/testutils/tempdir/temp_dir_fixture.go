package tempdir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tilt-dev/wmclient/pkg/os/temp"
)

// TempDirFixture is a real directory on disk, for the few tests that
// can't run against an in-memory filesystem (symlinks, the OS-backed index).
type TempDirFixture struct {
	t   testing.TB
	dir *temp.TempDir
}

func NewTempDirFixture(t testing.TB) *TempDirFixture {
	dir, err := temp.NewDir(strings.ReplaceAll(t.Name(), "/", "_"))
	if err != nil {
		t.Fatalf("Error making temp dir: %v", err)
	}

	return &TempDirFixture{
		t:   t,
		dir: dir,
	}
}

func (f *TempDirFixture) Path() string {
	return f.dir.Path()
}

func (f *TempDirFixture) JoinPath(path ...string) string {
	p := []string{f.Path()}
	p = append(p, path...)
	return filepath.Join(p...)
}

func (f *TempDirFixture) WriteFile(path string, contents string) {
	fullPath := filepath.Join(f.Path(), path)
	err := os.MkdirAll(filepath.Dir(fullPath), os.FileMode(0777))
	if err != nil {
		f.t.Fatal(err)
	}
	err = os.WriteFile(fullPath, []byte(contents), os.FileMode(0644))
	if err != nil {
		f.t.Fatal(err)
	}
}

func (f *TempDirFixture) TouchFiles(paths []string) {
	for _, p := range paths {
		f.WriteFile(p, "")
	}
}

func (f *TempDirFixture) TearDown() {
	err := f.dir.TearDown()
	if err != nil {
		f.t.Fatal(err)
	}
}
