// Package textkit provides corpus-level text analysis primitives: word
// frequency counting, unique vocabulary extraction, adjacent-word
// co-occurrence pairing, and line-by-line streaming.
//
// Every operation accepts either literal text or a path to a text file. The
// dual-typed input is resolved once at the boundary into a Source; the
// convenience functions use Detect, while Text and File construct a Source
// with an explicit kind. All operations share the same pipeline: resolve the
// input, normalize (case-fold, strip non-alphanumerics), tokenize on
// whitespace, aggregate. Files are consumed one line at a time and are never
// buffered whole.
//
// No state outlives a call. Failures surface as typed sentinel errors
// (ErrInvalidInput, ErrFileAccess, ErrInvalidParameter) suitable for
// errors.Is.
package textkit
