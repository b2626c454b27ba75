package analysis

import (
	"unicode"
	"unicode/utf8"
)

// WhitespaceTokenizer splits text on Unicode whitespace without any normalization.
type WhitespaceTokenizer struct{}

// NewWhitespaceTokenizer creates a new WhitespaceTokenizer.
func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

// TokenStream implements Tokenizer.
func (t *WhitespaceTokenizer) TokenStream(text string) TokenStream {
	return &whitespaceStream{text: text}
}

type whitespaceStream struct {
	text   string
	offset int
	pos    int
	token  Token
}

func (s *whitespaceStream) Advance() bool {
	// Skip whitespace.
	for s.offset < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.offset:])
		if !unicode.IsSpace(r) {
			break
		}
		s.offset += size
	}
	if s.offset >= len(s.text) {
		return false
	}

	start := s.offset
	for s.offset < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.offset:])
		if unicode.IsSpace(r) {
			break
		}
		s.offset += size
	}

	s.token.reset()
	s.token.Text = s.text[start:s.offset]
	s.token.StartByte = start
	s.token.EndByte = s.offset
	s.token.Position = s.pos
	s.pos++
	return true
}

func (s *whitespaceStream) Token() *Token {
	return &s.token
}
