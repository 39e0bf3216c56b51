// Package mapping parses the animation mapping rule table and expands rules
// into binding records for the project writer.
//
// A rule is one line of text: a comma-separated group of source key
// fragments, whitespace, then a comma-separated group holding the output base
// name and one or more animation type codes. Expansion joins each fragment
// with the shared asset prefix. Parsing is per-line and non-fatal: malformed
// lines land in a Report so an interactive caller can highlight them without
// losing valid work.
//
// The package also owns the built-in default rule table and load/save of the
// rules file; treat it as the single source of truth for rule semantics.
package mapping
