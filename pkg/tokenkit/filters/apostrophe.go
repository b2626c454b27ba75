// Package filters holds the tokenkit token filters: outer punctuation
// stripping and possessive contraction removal, both apostrophe-variant aware.
package filters

// Apostrophe code points treated as interchangeable. Order is fixed and
// determines the order of expanded stopword variants.
const (
	Apostrophe                = '\''     // '
	RightSingleQuotationMark  = '\u2019' // ’
	ModifierLetterApostrophe  = '\u02BC' // ʼ
	ModifierLetterTurnedComma = '\u02BB' // ʻ
	ArmenianApostrophe        = '\u055A' // ՚
	LatinCapitalSaltillo      = '\uA78B' // Ꞌ
	LatinSmallSaltillo        = '\uA78C' // ꞌ
	FullwidthApostrophe       = '\uFF07' // ＇
)

var apostrophes = [...]rune{
	Apostrophe,
	RightSingleQuotationMark,
	ModifierLetterApostrophe,
	ModifierLetterTurnedComma,
	ArmenianApostrophe,
	LatinCapitalSaltillo,
	LatinSmallSaltillo,
	FullwidthApostrophe,
}

// Apostrophes returns the apostrophe variants in table order.
func Apostrophes() []rune {
	out := make([]rune, len(apostrophes))
	copy(out, apostrophes[:])
	return out
}

// IsApostrophe reports whether r is one of the apostrophe variants.
func IsApostrophe(r rune) bool {
	switch r {
	case Apostrophe,
		RightSingleQuotationMark,
		ModifierLetterApostrophe,
		ModifierLetterTurnedComma,
		ArmenianApostrophe,
		LatinCapitalSaltillo,
		LatinSmallSaltillo,
		FullwidthApostrophe:
		return true
	}
	return false
}
