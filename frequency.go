package textkit

// Filter decides whether a token participates in an aggregation. A nil
// Filter includes every token.
type Filter func(token string) bool

// WordFrequency counts how often each normalized token occurs in the input,
// which may be literal text or a file path (resolved via Detect). When filter
// is non-nil only tokens it accepts are counted. Empty input yields an empty
// map.
func WordFrequency(textOrFile string, filter Filter) (map[string]int, error) {
	return Detect(textOrFile).WordFrequency(filter)
}

// WordFrequency counts token occurrences in the source.
func (s Source) WordFrequency(filter Filter) (map[string]int, error) {
	freq := make(map[string]int)
	err := s.forEachToken(func(token string) {
		if filter != nil && !filter(token) {
			return
		}
		freq[token]++
	})
	if err != nil {
		return nil, err
	}
	return freq, nil
}
