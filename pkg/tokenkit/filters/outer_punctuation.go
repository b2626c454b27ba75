package filters

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/tokenkit/pkg/tokenkit/analysis"
)

// OuterPunctuationFilter strips leading and trailing punctuation from tokens.
//
// If the first character of a token is one of the exception characters it is
// kept and leading stripping resumes after it, so "#tag" and "@user" survive.
// Trailing punctuation is always removed, exception or not. Punctuation inside
// a token is never touched, and a token that strips down to nothing is still
// emitted with empty text.
type OuterPunctuationFilter struct {
	exceptions map[rune]struct{}
}

// NewOuterPunctuationFilter creates a filter that preserves the given leading
// marker characters.
func NewOuterPunctuationFilter(exceptions ...rune) *OuterPunctuationFilter {
	set := make(map[rune]struct{}, len(exceptions))
	for _, r := range exceptions {
		set[r] = struct{}{}
	}
	return &OuterPunctuationFilter{exceptions: set}
}

// IsException reports whether r is preserved when it leads a token.
func (f *OuterPunctuationFilter) IsException(r rune) bool {
	_, ok := f.exceptions[r]
	return ok
}

// Strip applies the filter to a single token's text.
func (f *OuterPunctuationFilter) Strip(text string) string {
	if text == "" {
		return text
	}

	var kept int
	if first, size := utf8.DecodeRuneInString(text); f.IsException(first) {
		kept = size
	}

	rest := strings.TrimLeftFunc(text[kept:], unicode.IsPunct)
	switch {
	case kept == 0:
		text = rest
	case len(rest) < len(text)-kept:
		text = text[:kept] + rest
	}

	return strings.TrimRightFunc(text, unicode.IsPunct)
}

// Filter implements analysis.TokenFilter.
func (f *OuterPunctuationFilter) Filter(in analysis.TokenStream) analysis.TokenStream {
	return analysis.TextFunc(f.Strip).Filter(in)
}
