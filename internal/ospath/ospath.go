package ospath

import (
	"os"
	"path/filepath"
)

// Child returns file relative to dir, or "." if they're the same path.
// Returns false if file isn't under dir. Matching is by whole component.
func Child(dir string, file string) (string, bool) {
	if dir == "" {
		return "", false
	}

	d := NewPath(filepath.Clean(dir))
	f := NewPath(filepath.Clean(file))
	if !f.HasPrefix(d) {
		return "", false
	}
	if f.Len() == d.Len() {
		return ".", true
	}
	return Path{parts: f.parts[d.Len():]}.String(), true
}

// IsChild returns true if the given file is a child of the given directory
func IsChild(dir string, file string) bool {
	_, ret := Child(dir, file)
	return ret
}

// IsChildOfOne returns true if the given file is a child of (at least) one of
// the given directories.
func IsChildOfOne(dirs []string, file string) bool {
	for _, dir := range dirs {
		if IsChild(dir, file) {
			return true
		}
	}
	return false
}

// Returns the absolute version of this path, resolving all symlinks.
func RealAbs(path string) (string, error) {
	// Make the path absolute first, so that we find any symlink parents.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	// Resolve the symlinks.
	realPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", err
	}

	// Double-check we're still absolute.
	return filepath.Abs(realPath)
}

// Like os.Getwd, but with all symlinks resolved.
func Realwd() (string, error) {
	path, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return RealAbs(path)
}
