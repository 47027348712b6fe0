package scan

import (
	"regexp"
	"strings"
)

// StripComments removes line and block comments. Comment markers inside
// string or char literals are kept, so annotation values such as
// "https?://.*" survive.
func StripComments(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if quote != 0 {
			b.WriteByte(ch)

			if ch == '\\' && i+1 < len(s) {
				i++
				b.WriteByte(s[i])

				continue
			}

			if ch == quote || ch == '\n' {
				quote = 0
			}

			continue
		}

		switch {
		case ch == '"' || ch == '\'':
			quote = ch
			b.WriteByte(ch)
		case ch == '/' && i+1 < len(s) && s[i+1] == '/':
			nl := strings.IndexByte(s[i:], '\n')
			if nl < 0 {
				i = len(s)

				continue
			}
			// Land on the newline so it is kept.
			i += nl - 1
		case ch == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)

				continue
			}

			i += 2 + end + 1
		default:
			b.WriteByte(ch)
		}
	}

	return b.String()
}

var reUnterminatedHeader = regexp.MustCompile(`(?m)^([ \t]*(?:import|package)[ \t]+[^;\n]*[^;\s])[ \t]*$`)

// LooseNormalize unifies line endings and appends the missing ';' to import
// and package lines, so both dialects reach the extractors in one shape.
func LooseNormalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return reUnterminatedHeader.ReplaceAllString(s, "${1};")
}

// Normalize runs StripComments followed by LooseNormalize.
func Normalize(s string) string {
	return LooseNormalize(StripComments(s))
}
