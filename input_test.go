package textkit_test

import (
	"errors"
	"path/filepath"
	"testing"

	"textkit"
)

func TestDetectExistingFile(t *testing.T) {
	path := writeFixture(t, "file content\n")

	src := textkit.Detect(path)
	if src.Kind() != textkit.SourceFile {
		t.Fatalf("Detect(%q).Kind() = %v, want SourceFile", path, src.Kind())
	}
}

func TestDetectTreatsMissingPathAsLiteral(t *testing.T) {
	value := filepath.Join(t.TempDir(), "not-there.txt")

	src := textkit.Detect(value)
	if src.Kind() != textkit.SourceLiteral {
		t.Fatalf("Detect(missing path).Kind() = %v, want SourceLiteral", src.Kind())
	}
}

func TestDetectDirectoryIsLiteral(t *testing.T) {
	dir := t.TempDir()
	src := textkit.Detect(dir)
	if src.Kind() != textkit.SourceLiteral {
		t.Fatalf("Detect(directory).Kind() = %v, want SourceLiteral", src.Kind())
	}
}

func TestExplicitFileMissingFailsBeforeOutput(t *testing.T) {
	src := textkit.File(filepath.Join(t.TempDir(), "gone.txt"))

	if _, err := src.UniqueWords(); !errors.Is(err, textkit.ErrFileAccess) {
		t.Errorf("UniqueWords: expected ErrFileAccess, got %v", err)
	}
	if _, err := src.CoOccurrencePairs(2); !errors.Is(err, textkit.ErrFileAccess) {
		t.Errorf("CoOccurrencePairs: expected ErrFileAccess, got %v", err)
	}
	if _, err := src.Lines(); !errors.Is(err, textkit.ErrFileAccess) {
		t.Errorf("Lines: expected ErrFileAccess, got %v", err)
	}
}

func TestZeroSourceIsInvalid(t *testing.T) {
	var src textkit.Source
	if _, err := src.Lines(); !errors.Is(err, textkit.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTextSourceNamedLikeAFileStaysLiteral(t *testing.T) {
	path := writeFixture(t, "on disk\n")

	// Explicit Text must not fall back to the path heuristic.
	freq, err := textkit.Text(path).WordFrequency(nil)
	if err != nil {
		t.Fatalf("WordFrequency: %v", err)
	}
	if _, ok := freq["disk"]; ok {
		t.Fatal("literal source read the file behind its value")
	}
}
