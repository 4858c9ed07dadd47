package textkit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// SourceKind discriminates the two input forms a Source can carry.
type SourceKind int

const (
	// SourceLiteral treats the value as the text content itself.
	SourceLiteral SourceKind = iota + 1
	// SourceFile treats the value as a path to a text file.
	SourceFile
)

// Source is a resolved text input. The zero value is invalid; construct one
// with Text, File, or Detect. Resolution happens exactly once, so operations
// never re-apply path heuristics.
type Source struct {
	kind  SourceKind
	value string
}

// Text returns a Source over literal text content.
func Text(s string) Source {
	return Source{kind: SourceLiteral, value: s}
}

// File returns a Source over the file at path. The path is not checked until
// the Source is consumed; an unreadable file surfaces as ErrFileAccess.
func File(path string) Source {
	return Source{kind: SourceFile, value: path}
}

// Detect resolves a dual-typed value: if it names an existing regular file
// the Source reads that file, otherwise the value itself is the text.
func Detect(textOrFile string) Source {
	if info, err := os.Stat(textOrFile); err == nil && info.Mode().IsRegular() {
		return File(textOrFile)
	}
	return Text(textOrFile)
}

// Kind reports how the Source was resolved.
func (s Source) Kind() SourceKind { return s.kind }

// lineSource reads raw lines one at a time. For file sources it owns the
// file handle; Close is idempotent and safe on literal sources.
type lineSource struct {
	reader *bufio.Reader
	closer io.Closer
}

// openLines opens the source for sequential line reads.
func (s Source) openLines() (*lineSource, error) {
	switch s.kind {
	case SourceLiteral:
		return &lineSource{reader: bufio.NewReader(strings.NewReader(s.value))}, nil
	case SourceFile:
		f, err := os.Open(s.value)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %w", ErrFileAccess, s.value, err)
		}
		return &lineSource{reader: bufio.NewReader(f), closer: f}, nil
	default:
		return nil, fmt.Errorf("%w: source must be literal text or a file path", ErrInvalidInput)
	}
}

// next returns the next raw line without its trailing newline. It reports
// io.EOF when the source is exhausted and ErrFileAccess on read faults.
func (l *lineSource) next() (string, error) {
	raw, err := l.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: read line: %w", ErrFileAccess, err)
	}
	if raw == "" && err == io.EOF {
		return "", io.EOF
	}
	return strings.TrimRight(raw, "\r\n"), nil
}

// Close releases the underlying file handle, if any.
func (l *lineSource) Close() error {
	if l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	if err := c.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrFileAccess, err)
	}
	return nil
}

// forEachToken feeds every normalized token of the source, in order, to fn.
// Lines are read and tokenized one at a time so file content is never
// buffered whole. Newlines are token separators, so per-line tokenization
// yields the same sequence as tokenizing the full text.
func (s Source) forEachToken(fn func(token string)) error {
	lines, err := s.openLines()
	if err != nil {
		return err
	}
	defer lines.Close()

	for {
		line, err := lines.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		for _, token := range Tokenize(line) {
			fn(token)
		}
	}
}
