package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a type name for fuzzy matching.
// The normalization pipeline:
// 1. Drop any package or outer-class qualifier.
// 2. Tokenize CamelCase.
// 3. Case-fold to lower and strip separators (_, -, $, spaces).
func NormalizeIdent(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}

	tokens := tokenizeCamelCase(s)

	joined := strings.ToLower(strings.Join(tokens, ""))

	return stripSeparators(joined)
}

// NormalizeIdentWithSuffixStrip normalizes and strips one trailing token
// that DTO naming conventions commonly add: dto, entity, model, vo.
// The suffix is only stripped when something remains.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	// longest first so "dto" does not shadow a longer match
	suffixes := []string{"entity", "model", "dto", "vo"}
	for _, suffix := range suffixes {
		if strings.HasSuffix(normalized, suffix) && len(normalized) > len(suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "UserDTO" -> ["User", "DTO"]
//   - "orderLine" -> ["order", "Line"]
//   - "XMLPayload" -> ["XML", "Payload"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator returns true if the rune separates words in an identifier.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '$'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// lower to upper: "orderLine" splits before 'L'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// end of acronym: "XMLPayload" splits before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

// stripSeparators removes separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
