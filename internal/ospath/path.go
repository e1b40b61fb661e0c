package ospath

import (
	"os"
	"strings"
)

const rootComponent = string(os.PathSeparator)

// Path is an immutable sequence of path components.
//
// An absolute path's first component is the root separator. The zero value is
// the empty path, which is a prefix of every other path.
type Path struct {
	parts []string
}

func NewPath(s string) Path {
	if s == "" {
		return Path{}
	}

	var parts []string
	if isSeparator(rune(s[0])) {
		parts = append(parts, rootComponent)
	}

	for _, p := range strings.FieldsFunc(s, isSeparator) {
		if p == "." && len(parts) > 0 {
			continue
		}
		parts = append(parts, p)
	}
	return Path{parts: parts}
}

func NewPaths(s []string) []Path {
	result := make([]Path, len(s))
	for i, p := range s {
		result[i] = NewPath(p)
	}
	return result
}

func isSeparator(r rune) bool {
	return r == '/' || r == os.PathSeparator
}

func (p Path) Len() int {
	return len(p.parts)
}

func (p Path) IsAbs() bool {
	return len(p.parts) > 0 && p.parts[0] == rootComponent
}

// Base returns the last component, or the empty string for the empty path.
func (p Path) Base() string {
	if len(p.parts) == 0 {
		return ""
	}
	return p.parts[len(p.parts)-1]
}

// Parent returns the path with its last component removed.
//
// Returns false when there is no parent: for the root and for the empty path.
// A single relative component has the empty path as its parent.
func (p Path) Parent() (Path, bool) {
	if len(p.parts) == 0 || (len(p.parts) == 1 && p.IsAbs()) {
		return Path{}, false
	}
	return Path{parts: p.parts[:len(p.parts)-1]}, true
}

// Join returns a new path with the given components appended.
func (p Path) Join(elem ...string) Path {
	parts := make([]string, 0, len(p.parts)+len(elem))
	parts = append(parts, p.parts...)
	for _, e := range elem {
		parts = append(parts, NewPath(e).relativeParts()...)
	}
	return Path{parts: parts}
}

func (p Path) relativeParts() []string {
	if p.IsAbs() {
		return p.parts[1:]
	}
	return p.parts
}

// HasPrefix reports whether prefix matches the leading components of p.
// Matching is by whole component, so /a/bc does not start with /a/b.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.parts) > len(p.parts) {
		return false
	}
	for i, part := range prefix.parts {
		if p.parts[i] != part {
			return false
		}
	}
	return true
}

func (p Path) Equal(other Path) bool {
	return len(p.parts) == len(other.parts) && p.HasPrefix(other)
}

// Compare orders paths lexicographically by component. A path sorts before
// any longer path that it prefixes.
func (p Path) Compare(other Path) int {
	for i := 0; i < len(p.parts) && i < len(other.parts); i++ {
		if c := strings.Compare(p.parts[i], other.parts[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.parts) < len(other.parts):
		return -1
	case len(p.parts) > len(other.parts):
		return 1
	}
	return 0
}

func (p Path) String() string {
	if p.IsAbs() {
		return rootComponent + strings.Join(p.parts[1:], rootComponent)
	}
	return strings.Join(p.parts, rootComponent)
}
