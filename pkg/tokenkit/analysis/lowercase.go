package analysis

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LowerCaser folds token text to lower case.
// It holds a cases.Caser, so a LowerCaser must not be used from several
// goroutines at once.
type LowerCaser struct {
	caser cases.Caser
}

// NewLowerCaser creates a language-neutral LowerCaser.
func NewLowerCaser() *LowerCaser {
	return &LowerCaser{caser: cases.Lower(language.Und)}
}

// Lower returns text folded to lower case.
func (l *LowerCaser) Lower(text string) string {
	if isLowerASCII(text) {
		return text
	}
	return l.caser.String(text)
}

// Filter implements TokenFilter.
func (l *LowerCaser) Filter(in TokenStream) TokenStream {
	return TextFunc(l.Lower).Filter(in)
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || unicode.IsUpper(rune(c)) {
			return false
		}
	}
	return true
}
