package sliceutils

import (
	"fmt"
	"sort"
	"strings"
)

// De-duplicate strings, maintaining order.
func Dedupe(ids []string) []string {
	seen := map[string]bool{}
	result := make([]string, 0, len(ids))
	for _, s := range ids {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}

// Deduplicate and sort a slice of strings.
func DedupedAndSorted(slice []string) []string {
	result := Dedupe(slice)
	sort.Strings(result)
	return result
}

// Duplicates returns each string that appears more than once, in order of first repeat.
func Duplicates(slice []string) []string {
	seen := map[string]int{}
	var result []string
	for _, s := range slice {
		seen[s]++
		if seen[s] == 2 {
			result = append(result, s)
		}
	}
	return result
}

// Quote each string in the list and separate them by commas.
func QuotedStringList(list []string) string {
	result := make([]string, len(list))
	for i, s := range list {
		result[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(result, ", ")
}
