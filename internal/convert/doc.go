// Package convert is the entry point of the converter: it turns DTO source
// text into zod schema code plus diagnostics.
//
// The pipeline runs in two passes. The first pass normalizes the text,
// selects a dialect and extracts every class and enum into a symbol table.
// The second pass maps field types against that table and renders the
// schemas, which is what lets forward and mutual references resolve.
package convert
