// Package folderfilter shrinks a set of candidate paths for the open-file menu.
//
// Paths that share the deepest common ancestor are reduced to that ancestor's
// direct children. A child that had deeper levels collapsed shows up as
// "child/...", which tells the user to drill further to disambiguate.
package folderfilter

import (
	"github.com/google/btree"
	"github.com/pkg/errors"

	"github.com/tilt-dev/fopen/internal/ospath"
)

// ErrNoCommonAncestor means the candidates share no root at all, e.g. a mix of
// absolute and relative paths. Callers should test for it with errors.Is.
var ErrNoCommonAncestor = errors.New("no common ancestor")

const btreeDegree = 8

// displayItem orders materialized display paths in the output tree.
type displayItem struct {
	path ospath.Path
}

func (i displayItem) Less(than btree.Item) bool {
	return i.path.Compare(than.(displayItem).path) < 0
}

// SearchAsFolders computes the deepest common ancestor of the candidates
// under root and returns the sorted, de-duplicated display paths below it.
//
// An empty root accepts every candidate. If no candidate is accepted, the
// result is empty and the error is nil.
func SearchAsFolders(candidates []ospath.Path, root string) ([]ospath.Path, error) {
	rootPath := ospath.NewPath(root)

	var common ospath.Path
	found := false

	// Entries are registered against the ancestor as it was when they arrived.
	// They're re-walked once the ancestor stops moving.
	deeper := make(map[string]shrinkPath)
	register := func(s shrinkPath) {
		deeper[s.materialize().String()] = s
	}

	for _, c := range candidates {
		if !c.HasPrefix(rootPath) {
			continue
		}

		if !found {
			common = c
			found = true
			register(newShrinkPath(c))
			continue
		}

		// Climbing never changes absoluteness, and the empty path prefixes
		// everything, so a mix has to be caught before the climb.
		if c.IsAbs() != common.IsAbs() {
			return nil, errors.Wrapf(ErrNoCommonAncestor, "comparing %q to %q", common.String(), c.String())
		}

		for !c.HasPrefix(common) {
			parent, ok := common.Parent()
			if !ok {
				return nil, errors.Wrapf(ErrNoCommonAncestor, "comparing %q to %q", common.String(), c.String())
			}
			common = parent
		}

		if c.Equal(common) {
			continue
		}

		s := newShrinkPath(c)
		s.ascendToChildOf(common)
		register(s)
	}

	if !found {
		return []ospath.Path{}, nil
	}

	tree := btree.New(btreeDegree)
	for _, s := range deeper {
		if !s.path.Equal(common) {
			s.ascendToChildOf(common)
		}
		tree.ReplaceOrInsert(displayItem{path: s.materialize()})
	}

	result := make([]ospath.Path, 0, tree.Len())
	tree.Ascend(func(i btree.Item) bool {
		result = append(result, i.(displayItem).path)
		return true
	})
	return result, nil
}

// SearchAsFolderStrings is SearchAsFolders over plain strings.
func SearchAsFolderStrings(candidates []string, root string) ([]string, error) {
	paths, err := SearchAsFolders(ospath.NewPaths(candidates), root)
	if err != nil {
		return nil, err
	}

	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = p.String()
	}
	return result, nil
}
