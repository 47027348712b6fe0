// Package scan holds the text-level helpers shared by the extractors and the
// type mapper: comment stripping, terminator normalization and
// delimiter-aware splitting that respects nested brackets and quoted text.
package scan
