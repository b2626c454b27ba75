package filters

import (
	"unicode/utf8"

	"github.com/cognicore/tokenkit/pkg/tokenkit/analysis"
)

// PossessiveContractionFilter strips a trailing possessive suffix from tokens:
// an apostrophe followed by 's' or 'S' ("John's" becomes "John"), or a bare
// trailing apostrophe ("Jones'" becomes "Jones"). Any apostrophe variant
// matches. Apostrophes elsewhere in the token are left alone, so "can't" is
// unchanged.
type PossessiveContractionFilter struct{}

// NewPossessiveContractionFilter creates a PossessiveContractionFilter.
func NewPossessiveContractionFilter() *PossessiveContractionFilter {
	return &PossessiveContractionFilter{}
}

// Strip applies the filter to a single token's text.
func (PossessiveContractionFilter) Strip(text string) string {
	last, lastSize := utf8.DecodeLastRuneInString(text)
	switch {
	case lastSize == 0:
		return text
	case IsApostrophe(last):
		return text[:len(text)-lastSize]
	case last == 's' || last == 'S':
		prev, prevSize := utf8.DecodeLastRuneInString(text[:len(text)-lastSize])
		if prevSize > 0 && IsApostrophe(prev) {
			return text[:len(text)-lastSize-prevSize]
		}
	}
	return text
}

// Filter implements analysis.TokenFilter.
func (f PossessiveContractionFilter) Filter(in analysis.TokenStream) analysis.TokenStream {
	return analysis.TextFunc(f.Strip).Filter(in)
}
