package textkit

import "io"

// LineStream yields normalized lines one at a time, in the bufio.Scanner
// idiom:
//
//	stream, err := textkit.Lines(input)
//	if err != nil { ... }
//	defer stream.Close()
//	for stream.Next() {
//		use(stream.Line())
//	}
//	if err := stream.Err(); err != nil { ... }
//
// A stream is single-pass and forward-only; restart by re-invoking Lines.
// Each Next reads exactly one raw line from the source and normalizes it, so
// at most one line is resident regardless of input size. Any underlying file
// handle closes when the stream is exhausted, when a read fault surfaces, or
// when Close is called on early abandonment. Lines yielded before a mid-file
// fault remain valid; the fault is reported by Err after Next returns false.
type LineStream struct {
	src  *lineSource
	line string
	err  error
	done bool
}

// Lines streams normalized lines from the input, which may be literal text
// or a file path (resolved via Detect).
func Lines(textOrFile string) (*LineStream, error) {
	return Detect(textOrFile).Lines()
}

// Lines streams normalized lines from the source.
func (s Source) Lines() (*LineStream, error) {
	src, err := s.openLines()
	if err != nil {
		return nil, err
	}
	return &LineStream{src: src}, nil
}

// Next advances to the next line. It returns false when the stream is
// exhausted or a read fault occurred; check Err to distinguish.
func (ls *LineStream) Next() bool {
	if ls.done {
		return false
	}
	raw, err := ls.src.next()
	if err == io.EOF {
		ls.finish()
		return false
	}
	if err != nil {
		ls.err = err
		ls.finish()
		return false
	}
	ls.line = Normalize(raw)
	return true
}

// Line returns the line read by the last successful Next.
func (ls *LineStream) Line() string { return ls.line }

// Err returns the first fault encountered by Next, if any. Exhaustion is not
// an error.
func (ls *LineStream) Err() error { return ls.err }

// Close releases the stream early. It is idempotent and unnecessary after
// Next has returned false, but harmless.
func (ls *LineStream) Close() error {
	if ls.done {
		return nil
	}
	ls.done = true
	return ls.src.Close()
}

// finish marks the stream exhausted and releases the source, keeping the
// first error observed.
func (ls *LineStream) finish() {
	ls.done = true
	if cerr := ls.src.Close(); cerr != nil && ls.err == nil {
		ls.err = cerr
	}
}
