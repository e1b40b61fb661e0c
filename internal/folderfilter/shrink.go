package folderfilter

import (
	"github.com/tilt-dev/fopen/internal/ospath"
)

// Ellipsis is appended as a path component when intermediate directories were collapsed.
const Ellipsis = "..."

// shrinkPath is a path that may have been walked up toward the root.
// shrunk is true iff path is a strict ancestor of the original candidate.
type shrinkPath struct {
	path   ospath.Path
	shrunk bool
}

func newShrinkPath(p ospath.Path) shrinkPath {
	return shrinkPath{path: p}
}

// The path's parent, or the path itself at a root.
func (s shrinkPath) parent() ospath.Path {
	p, ok := s.path.Parent()
	if !ok {
		return s.path
	}
	return p
}

func (s *shrinkPath) ascend() {
	s.path = s.parent()
	s.shrunk = true
}

// ascendToChildOf walks up until the path is a direct child of ancestor.
// Stops early if the path is no longer than ancestor, so it always terminates.
func (s *shrinkPath) ascendToChildOf(ancestor ospath.Path) {
	for s.path.Len() > ancestor.Len()+1 && !s.parent().Equal(ancestor) {
		s.ascend()
	}
}

func (s shrinkPath) materialize() ospath.Path {
	if s.shrunk {
		return s.path.Join(Ellipsis)
	}
	return s.path
}

// TrimEllipsis strips a trailing ellipsis component from a display path.
// Reports whether the path was truncated.
func TrimEllipsis(display string) (string, bool) {
	p := ospath.NewPath(display)
	if p.Base() != Ellipsis {
		return display, false
	}
	parent, _ := p.Parent()
	return parent.String(), true
}

// IsTruncated reports whether a display path ends in an ellipsis.
func IsTruncated(display string) bool {
	return ospath.NewPath(display).Base() == Ellipsis
}
