package analysis

// State records whether a token is still part of the output.
type State uint8

const (
	// Live tokens are emitted to consumers.
	Live State = iota
	// Removed tokens stay in the stream but must be treated as absent.
	Removed
)

func (s State) String() string {
	if s == Removed {
		return "removed"
	}
	return "live"
}

// Token represents a single token produced by a tokenizer and rewritten by filters.
type Token struct {
	Text      string
	StartByte int
	EndByte   int
	// Position is the token's index in document order. Only meaningful when State is Live.
	Position int
	State    State
}

// Remove marks the token as filtered out.
func (t *Token) Remove() {
	t.State = Removed
}

// Removed reports whether the token was filtered out.
func (t *Token) Removed() bool {
	return t.State == Removed
}

// reset prepares a reusable token buffer for the next token.
func (t *Token) reset() {
	*t = Token{}
}
