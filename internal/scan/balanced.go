package scan

import "strings"

// SplitTopLevel splits s on sep wherever sep sits outside any <([{ nesting
// and outside quoted text. A trailing empty segment is dropped.
func SplitTopLevel(s string, sep byte) []string {
	var (
		out   []string
		depth int
		quote byte
		start int
	)

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}

			continue
		}

		switch {
		case ch == '"' || ch == '\'':
			quote = ch
		case strings.IndexByte("<([{", ch) >= 0:
			depth++
		case strings.IndexByte(">)]}", ch) >= 0:
			depth = max(0, depth-1)
		case ch == sep && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}

	if start < len(s) {
		out = append(out, s[start:])
	}

	return out
}

// ReadBalanced reads the block opened by s[start] == open up to its matching
// close, skipping quoted text. It returns the content between the delimiters
// and the index of the closing delimiter. ok is false when s[start] is not
// open or the block never closes.
func ReadBalanced(s string, start int, open, closer byte) (content string, end int, ok bool) {
	if start < 0 || start >= len(s) || s[start] != open {
		return "", -1, false
	}

	depth := 0

	var quote byte

	for i := start; i < len(s); i++ {
		ch := s[i]

		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}

			continue
		}

		switch ch {
		case '"', '\'':
			quote = ch
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return s[start+1 : i], i, true
			}
		}
	}

	return "", -1, false
}

// TopLevelSemicolon returns the index of the first ';' outside parentheses
// and braces, or -1.
func TopLevelSemicolon(s string) int {
	parens, braces := 0, 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			parens++
		case ')':
			parens = max(0, parens-1)
		case '{':
			braces++
		case '}':
			braces = max(0, braces-1)
		case ';':
			if parens == 0 && braces == 0 {
				return i
			}
		}
	}

	return -1
}

// TopLevelIndex returns the index of the first target byte outside ([{
// nesting and quoted text, or -1.
func TopLevelIndex(s string, target byte) int {
	depth := 0

	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}

			continue
		}

		switch {
		case ch == '"' || ch == '\'':
			quote = ch
		case strings.IndexByte("([{", ch) >= 0:
			depth++
		case strings.IndexByte(")]}", ch) >= 0:
			depth = max(0, depth-1)
		case ch == target && depth == 0:
			return i
		}
	}

	return -1
}

// BlankNested returns s with the content of every brace block replaced by
// spaces, keeping the braces and newlines. Offsets are preserved, which lets
// callers run declaration patterns over the top level only.
func BlankNested(s string) string {
	b := []byte(s)
	depth := 0

	var quote byte

	for i := 0; i < len(b); i++ {
		ch := b[i]

		if quote != 0 {
			if ch == '\\' && i+1 < len(b) {
				blank(b, i, depth)
				i++
			} else if ch == quote {
				quote = 0
			}

			blank(b, i, depth)

			continue
		}

		switch ch {
		case '"', '\'':
			quote = ch
			blank(b, i, depth)
		case '{':
			if depth > 0 {
				b[i] = ' '
			}
			depth++
		case '}':
			depth = max(0, depth-1)
			if depth > 0 {
				b[i] = ' '
			}
		default:
			blank(b, i, depth)
		}
	}

	return string(b)
}

func blank(b []byte, i, depth int) {
	if depth > 0 && b[i] != '\n' {
		b[i] = ' '
	}
}

// SkipSpaces returns the first index at or after i that is not whitespace.
func SkipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

// IsIdentStart reports whether ch can start an identifier.
func IsIdentStart(ch byte) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// IsIdentPart reports whether ch can continue an identifier.
func IsIdentPart(ch byte) bool {
	return IsIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// LeadingIdent returns the identifier at the start of s (after spaces), or "".
func LeadingIdent(s string) string {
	i := SkipSpaces(s, 0)
	if i >= len(s) || !IsIdentStart(s[i]) {
		return ""
	}

	j := i + 1
	for j < len(s) && IsIdentPart(s[j]) {
		j++
	}

	return s[i:j]
}
