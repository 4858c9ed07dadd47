// Command textkit is a thin CLI over the textkit analysis library.
//
// Each subcommand maps to one library operation: freq (word frequency),
// unique (vocabulary), pairs (co-occurrence), lines (normalized line stream).
// Inputs may be literal text or file paths; --file and --text force the
// interpretation. Results render as tables on terminals, plain columns
// otherwise, or JSON with --json.
package main
