// Package analyzers provides the ready-made tokenkit pipelines and a registry
// for looking them up by name.
package analyzers

import (
	"sync"

	"github.com/cognicore/tokenkit/pkg/tokenkit/analysis"
	"github.com/cognicore/tokenkit/pkg/tokenkit/filters"
	"github.com/cognicore/tokenkit/pkg/tokenkit/stoplist"
)

// DefaultMarkers are the leading characters kept by the outer punctuation filter.
var DefaultMarkers = []rune{'#', '@'}

// KapicheAnalyzer tokenizes on whitespace, strips outer punctuation (keeping
// a leading '#' or '@') and removes possessive suffixes. Case is preserved.
func KapicheAnalyzer() *analysis.Analyzer {
	return analysis.NewBuilder(analysis.NewWhitespaceTokenizer()).
		Filter(filters.NewOuterPunctuationFilter(DefaultMarkers...)).
		Filter(filters.NewPossessiveContractionFilter()).
		Build()
}

// KapicheAnalyzerLower is KapicheAnalyzer with case folding right after
// tokenization. Stopwords are kept, which suits search indexing.
func KapicheAnalyzerLower() *analysis.Analyzer {
	return analysis.NewBuilder(analysis.NewWhitespaceTokenizer()).
		Filter(analysis.NewLowerCaser()).
		Filter(filters.NewOuterPunctuationFilter(DefaultMarkers...)).
		Filter(filters.NewPossessiveContractionFilter()).
		Build()
}

// KapicheAnalyzerLowerWithStopwords is KapicheAnalyzerLower with the expanded
// English stoplist applied. Used for token counting and topic modeling.
//
// Stopwords are compared against folded text before punctuation stripping,
// and possessive stripping runs last so that it cannot turn a removed word
// back into a live one.
func KapicheAnalyzerLowerWithStopwords() *analysis.Analyzer {
	return analysis.NewBuilder(analysis.NewWhitespaceTokenizer()).
		Filter(analysis.NewLowerCaser()).
		Filter(englishStopFilter()).
		Filter(filters.NewOuterPunctuationFilter(DefaultMarkers...)).
		Filter(filters.NewPossessiveContractionFilter()).
		Build()
}

// englishStopFilter is immutable, so every pipeline shares one instance.
var englishStopFilter = sync.OnceValue(func() *analysis.StopWordFilter {
	return analysis.NewStopWordFilter(stoplist.EnglishExpanded())
})
