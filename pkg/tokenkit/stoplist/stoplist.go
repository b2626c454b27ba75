// Package stoplist provides the curated English stopword list and expands
// stopwords so that every apostrophe variant of a contraction is matched.
package stoplist

import (
	"strings"
	"sync"

	"github.com/cognicore/tokenkit/pkg/tokenkit/filters"
)

// English returns a copy of the curated base list, in curated order.
func English() []string {
	out := make([]string, len(english))
	copy(out, english[:])
	return out
}

var englishExpanded = sync.OnceValue(func() []string {
	return Expand(english[:])
})

// EnglishExpanded returns Expand(English()). The expansion is computed once
// per process; callers receive their own copy.
func EnglishExpanded() []string {
	cached := englishExpanded()
	out := make([]string, len(cached))
	copy(out, cached)
	return out
}

// Expand replaces every word containing an apostrophe variant with one entry
// per variant, in apostrophe table order, substituting every apostrophe in
// the word. Words without apostrophes pass through unchanged. Relative order
// of the base list is preserved.
func Expand(base []string) []string {
	variants := filters.Apostrophes()
	out := make([]string, 0, len(base))
	for _, word := range base {
		if !strings.ContainsFunc(word, filters.IsApostrophe) {
			out = append(out, word)
			continue
		}
		for _, v := range variants {
			out = append(out, strings.Map(func(r rune) rune {
				if filters.IsApostrophe(r) {
					return v
				}
				return r
			}, word))
		}
	}
	return out
}

// Merge concatenates lists, dropping empty words and later duplicates.
func Merge(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, w := range list {
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
