package analysis

// CountTokens returns the number of live tokens a produces for text.
// The stream is consumed once and no tokens are collected.
func CountTokens(a *Analyzer, text string) int {
	stream := a.TokenStream(text)
	count := 0
	for stream.Advance() {
		if !stream.Token().Removed() {
			count++
		}
	}
	return count
}
