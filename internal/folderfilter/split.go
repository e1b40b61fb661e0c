package folderfilter

import (
	"strings"
	"unicode"
)

// RootMarker at the start of the input turns its first token into a root filter.
const RootMarker = '>'

// SplitQuery splits raw prompt input into the text to fuzzy-match and a root filter.
//
//   "hello goodbye"  -> ("hello goodbye", "")
//   ">src/pkg util"  -> ("src/pkg util", "src/pkg")
//
// The query keeps the root token, so it still contributes to the fuzzy match.
func SplitQuery(s string) (query string, root string) {
	if s == "" || s[0] != RootMarker {
		return s, ""
	}

	marker := string(RootMarker)
	token := s
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		token = s[:i]
	}
	return strings.Trim(s, marker), strings.Trim(token, marker)
}
