// Package extract recognizes class and enum declarations in normalized
// source text.
//
// There is one Extractor per dialect. Both work on balanced text rather
// than line patterns: a class body is read up to its matching brace, and
// method bodies, initializer blocks and nested type bodies are skipped as a
// whole. Extraction never fails; text that does not look like a declaration
// is ignored.
package extract
