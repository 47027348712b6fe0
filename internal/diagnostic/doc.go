// Package diagnostic provides the located warnings and errors produced while
// converting declarations into schema code.
//
// Key capabilities:
//   - Ordered, append-only diagnostics list
//   - Class/field location attached after type mapping
//   - "did you mean" suggestions for unresolved type names
//   - Pretty, JSON and YAML rendering for the CLI
package diagnostic
