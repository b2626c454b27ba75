package analysis

// StopWordFilter marks tokens whose text exactly matches a word in its list
// as Removed. Matching is case-sensitive; fold case earlier in the chain.
type StopWordFilter struct {
	words map[string]struct{}
}

// NewStopWordFilter creates a StopWordFilter over words.
func NewStopWordFilter(words []string) *StopWordFilter {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &StopWordFilter{words: set}
}

// IsStop reports whether word is in the filter's list.
func (f *StopWordFilter) IsStop(word string) bool {
	_, ok := f.words[word]
	return ok
}

// Len returns the number of distinct stopwords.
func (f *StopWordFilter) Len() int {
	return len(f.words)
}

// Filter implements TokenFilter.
func (f *StopWordFilter) Filter(in TokenStream) TokenStream {
	return &stopWordStream{in: in, filter: f}
}

type stopWordStream struct {
	in     TokenStream
	filter *StopWordFilter
}

func (s *stopWordStream) Advance() bool {
	if !s.in.Advance() {
		return false
	}
	tok := s.in.Token()
	if !tok.Removed() && s.filter.IsStop(tok.Text) {
		tok.Remove()
	}
	return true
}

func (s *stopWordStream) Token() *Token {
	return s.in.Token()
}
