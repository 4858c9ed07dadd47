package textkit

import "fmt"

// Pair is an ordered co-occurrence of two tokens: Left appears before Right
// in the token sequence, within the requested window.
type Pair struct {
	Left  string
	Right string
}

// DefaultWindow is the co-occurrence window used when callers have no
// configured preference.
const DefaultWindow = 2

// CoOccurrencePairs emits every ordered pair of tokens whose positions are at
// most window apart, over the whole-text token sequence of the input (literal
// text or file path, resolved via Detect). For the token at position i, each
// position j with i < j <= i+window contributes the pair (token[i],
// token[j]); pairs are appended i-ascending then j-ascending and duplicates
// are retained. A window below 1 fails with ErrInvalidParameter before any
// input is read. Fewer than two tokens yield no pairs.
func CoOccurrencePairs(textOrFile string, window int) ([]Pair, error) {
	return Detect(textOrFile).CoOccurrencePairs(window)
}

// CoOccurrencePairs emits ordered in-window token pairs for the source.
func (s Source) CoOccurrencePairs(window int) ([]Pair, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: window must be a positive integer, got %d", ErrInvalidParameter, window)
	}

	var tokens []string
	err := s.forEachToken(func(token string) {
		tokens = append(tokens, token)
	})
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0)
	for i := range tokens {
		for j := i + 1; j <= i+window && j < len(tokens); j++ {
			pairs = append(pairs, Pair{Left: tokens[i], Right: tokens[j]})
		}
	}
	return pairs, nil
}
