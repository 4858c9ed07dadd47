package textkit_test

import (
	"reflect"
	"testing"

	"textkit"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation", "don't stop!", "don t stop "},
		{"keeps digits", "room 101", "room 101"},
		{"underscore is a separator", "snake_case", "snake case"},
		{"newline is a separator", "one\ntwo", "one two"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textkit.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"This is a test text. This test is only a test.",
		"MIXED case, punct; and 42 numbers",
		"already normalized text",
	}
	for _, in := range inputs {
		once := textkit.Normalize(in)
		twice := textkit.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := textkit.Tokenize("This is; a TEST!  ")
	want := []string{"this", "is", "a", "test"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}

	if toks := textkit.Tokenize("...!!!"); len(toks) != 0 {
		t.Fatalf("expected no tokens from pure punctuation, got %v", toks)
	}
}
