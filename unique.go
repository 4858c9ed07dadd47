package textkit

// UniqueWords returns the set of distinct normalized tokens in the input,
// which may be literal text or a file path (resolved via Detect).
func UniqueWords(textOrFile string) (map[string]struct{}, error) {
	return Detect(textOrFile).UniqueWords()
}

// UniqueWords returns the distinct tokens of the source.
func (s Source) UniqueWords() (map[string]struct{}, error) {
	seen := make(map[string]struct{})
	err := s.forEachToken(func(token string) {
		seen[token] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}
