// Package analysis defines the token stream model shared by every tokenkit
// pipeline: tokenizers produce a stream, filters wrap it, and an Analyzer
// owns the resulting chain.
package analysis

// TokenStream yields tokens in document order.
//
// Streams reuse a single token buffer: the pointer returned by Token is only
// valid until the next call to Advance.
type TokenStream interface {
	Advance() bool
	Token() *Token
}

// Tokenizer splits raw text into a token stream.
type Tokenizer interface {
	TokenStream(text string) TokenStream
}

// TokenFilter transforms a token stream into another token stream.
// Filters may rewrite token text or mark tokens Removed; they never reorder.
type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

// TextFunc adapts a pure per-token text transform into a TokenFilter.
// Removed tokens are passed through untouched.
type TextFunc func(text string) string

// Filter implements TokenFilter.
func (f TextFunc) Filter(in TokenStream) TokenStream {
	return &textStream{in: in, fn: f}
}

type textStream struct {
	in TokenStream
	fn TextFunc
}

func (s *textStream) Advance() bool {
	if !s.in.Advance() {
		return false
	}
	tok := s.in.Token()
	if !tok.Removed() {
		tok.Text = s.fn(tok.Text)
	}
	return true
}

func (s *textStream) Token() *Token {
	return s.in.Token()
}

// Analyzer is an ordered, immutable chain of a tokenizer and its filters.
// An Analyzer may be reused sequentially across documents; it is not meant
// to be shared between goroutines running concurrently.
type Analyzer struct {
	tokenizer Tokenizer
	filters   []TokenFilter
}

// TokenStream runs text through the tokenizer and every filter lazily.
func (a *Analyzer) TokenStream(text string) TokenStream {
	stream := a.tokenizer.TokenStream(text)
	for _, f := range a.filters {
		stream = f.Filter(stream)
	}
	return stream
}

// Analyze materializes the live tokens produced for text.
func (a *Analyzer) Analyze(text string) []Token {
	var tokens []Token
	stream := a.TokenStream(text)
	for stream.Advance() {
		tok := stream.Token()
		if tok.Removed() {
			continue
		}
		tokens = append(tokens, *tok)
	}
	return tokens
}

// Terms returns the text of every live token produced for text.
func (a *Analyzer) Terms(text string) []string {
	var terms []string
	stream := a.TokenStream(text)
	for stream.Advance() {
		tok := stream.Token()
		if !tok.Removed() {
			terms = append(terms, tok.Text)
		}
	}
	return terms
}

// Builder assembles an Analyzer.
type Builder struct {
	tokenizer Tokenizer
	filters   []TokenFilter
}

// NewBuilder starts a pipeline from the given tokenizer.
func NewBuilder(tokenizer Tokenizer) *Builder {
	return &Builder{tokenizer: tokenizer}
}

// Filter appends f to the chain. Filters run in the order they are added.
func (b *Builder) Filter(f TokenFilter) *Builder {
	b.filters = append(b.filters, f)
	return b
}

// Build returns the finished Analyzer. The builder may be discarded afterwards.
func (b *Builder) Build() *Analyzer {
	filters := make([]TokenFilter, len(b.filters))
	copy(filters, b.filters)
	return &Analyzer{tokenizer: b.tokenizer, filters: filters}
}
