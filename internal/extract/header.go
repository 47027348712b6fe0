package extract

import (
	"regexp"
	"strings"

	"dto2zod/internal/annotation"
	"dto2zod/internal/model"
	"dto2zod/internal/scan"
)

// Words that start a new declaration. Seeing one between a header and a
// brace means the brace belongs to something else.
var declarationWords = map[string]struct{}{
	"class":      {},
	"interface":  {},
	"object":     {},
	"enum":       {},
	"record":     {},
	"fun":        {},
	"val":        {},
	"var":        {},
	"typealias":  {},
	"annotation": {},
	"data":       {},
	"package":    {},
	"import":     {},
}

// bodyStart returns the index of the '{' opening the body of a declaration
// whose header ends at i, or -1 when the header has no body. Parenthesized
// and angle-bracketed parts of the header are skipped.
func bodyStart(src string, i int) int {
	for i < len(src) {
		ch := src[i]

		switch {
		case ch == '{':
			return i
		case ch == '(' || ch == '<':
			closer := byte(')')
			if ch == '<' {
				closer = '>'
			}

			_, end, ok := scan.ReadBalanced(src, i, ch, closer)
			if !ok {
				return -1
			}

			i = end + 1
		case ch == ';' || ch == '}' || ch == '=' || ch == ')':
			return -1
		case scan.IsIdentStart(ch):
			word := scan.LeadingIdent(src[i:])
			if _, stop := declarationWords[word]; stop {
				return -1
			}

			i += len(word)
		default:
			i++
		}
	}

	return -1
}

// readBody returns the content of the body following a header ending at i.
func readBody(src string, i int) (string, int, bool) {
	brace := bodyStart(src, i)
	if brace < 0 {
		return "", i, false
	}

	content, end, ok := scan.ReadBalanced(src, brace, '{', '}')
	if !ok {
		return "", i, false
	}

	return content, end, true
}

// wordBefore returns the identifier immediately preceding index i, skipping
// whitespace.
func wordBefore(src string, i int) string {
	j := i
	for j > 0 && (src[j-1] == ' ' || src[j-1] == '\t' || src[j-1] == '\n' || src[j-1] == '\r') {
		j--
	}

	k := j
	for k > 0 && scan.IsIdentPart(src[k-1]) {
		k--
	}

	return src[k:j]
}

// isMemberAccess reports whether the keyword at i is used as Foo.class or
// Foo::class rather than as a declaration.
func isMemberAccess(src string, i int) bool {
	j := i
	for j > 0 && (src[j-1] == ' ' || src[j-1] == '\t') {
		j--
	}

	return j > 0 && (src[j-1] == '.' || src[j-1] == ':')
}

// extractEnums reads every enum whose header matches re. Group 1 of re must
// capture the enum name.
func extractEnums(src string, re *regexp.Regexp) []model.Enum {
	var enums []model.Enum

	for _, m := range re.FindAllStringSubmatchIndex(src, -1) {
		name := src[m[2]:m[3]]
		if _, keyword := declarationWords[name]; keyword {
			continue
		}

		body, _, ok := readBody(src, m[1])
		if !ok {
			continue
		}

		if values := enumValues(body); len(values) > 0 {
			enums = append(enums, model.Enum{Name: name, Values: values})
		}
	}

	return enums
}

// enumValues returns the constant names of an enum body. Members after the
// first top-level ';' are ignored, as are constructor arguments, constant
// bodies and annotations on constants.
func enumValues(body string) []string {
	if semi := scan.TopLevelSemicolon(body); semi >= 0 {
		body = body[:semi]
	}

	var values []string

	for _, item := range scan.SplitTopLevel(body, ',') {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		item = item[annotation.LeadingEnd(item):]

		if name := scan.LeadingIdent(item); name != "" {
			values = append(values, name)
		}
	}

	return values
}
