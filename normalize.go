package textkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Normalize returns text case-folded with every rune that is not a letter or
// digit replaced by a space. Folding is idempotent, so normalizing
// already-normalized text is a no-op. Word boundaries are preserved; runs of
// separators collapse at tokenization time.
func Normalize(text string) string {
	// Casers are stateful, so build one per call.
	folded := cases.Fold().String(text)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// Tokenize normalizes text and splits it on whitespace. The result is the
// ordered token sequence with no empty tokens.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
