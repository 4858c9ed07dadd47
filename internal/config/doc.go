// Package config loads and validates textkit's TOML configuration.
//
// Configuration is optional: when no file exists the defaults apply. The CLI
// reads analysis defaults (co-occurrence window, minimum token length),
// output format, and logging settings from here so invocations stay
// flag-light. All lookups resolve through Load, which expands the path,
// parses the file if present, and validates the result.
package config
