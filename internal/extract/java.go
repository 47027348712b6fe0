package extract

import (
	"regexp"
	"strings"

	"dto2zod/internal/annotation"
	"dto2zod/internal/common"
	"dto2zod/internal/model"
	"dto2zod/internal/scan"
)

var (
	javaEnumHeader  = regexp.MustCompile(`\benum\s+([A-Za-z_$][\w$]*)`)
	javaClassHeader = regexp.MustCompile(`\bclass\s+([A-Za-z_$][\w$]*)`)
	javaMethodShape = regexp.MustCompile(`[A-Za-z_$][\w$]*\s*\(`)
	javaOptional    = regexp.MustCompile(`^(?:java\.util\.)?Optional\s*<`)
)

var javaModifiers = map[string]struct{}{
	"public":       {},
	"private":      {},
	"protected":    {},
	"static":       {},
	"final":        {},
	"transient":    {},
	"volatile":     {},
	"abstract":     {},
	"synchronized": {},
	"native":       {},
	"default":      {},
}

var javaTypeKeywords = map[string]struct{}{
	"class":     {},
	"interface": {},
	"enum":      {},
	"record":    {},
}

// Java extracts declarations written in the Java-like dialect.
type Java struct{}

// Enums returns every `enum Name { ... }` declaration in source order.
func (Java) Enums(src string) []model.Enum {
	return extractEnums(src, javaEnumHeader)
}

// Classes returns every `class Name { ... }` declaration in source order.
// Nested classes are reported as separate top-level classes.
func (Java) Classes(src string) []model.Class {
	var classes []model.Class

	for _, m := range javaClassHeader.FindAllStringSubmatchIndex(src, -1) {
		if isMemberAccess(src, m[0]) || wordBefore(src, m[0]) == "enum" {
			continue
		}

		body, _, ok := readBody(src, m[1])
		if !ok {
			continue
		}

		classes = append(classes, model.Class{
			Name:   src[m[2]:m[3]],
			Fields: model.DedupFields(javaFields(body)),
		})
	}

	return model.Coalesce(classes)
}

// javaFields scans a class body statement by statement. A ';' at depth 0
// ends a statement. A brace block at depth 0 belongs to the statement only
// when it follows an '=' (array initializer, anonymous class); otherwise it
// is a method, initializer or nested type body and the statement is dropped.
func javaFields(body string) []model.Field {
	var fields []model.Field

	start := 0

	for i := 0; i < len(body); i++ {
		switch ch := body[i]; ch {
		case '"', '\'':
			i = skipQuoted(body, i)
		case '(':
			if _, end, ok := scan.ReadBalanced(body, i, '(', ')'); ok {
				i = end
			}
		case '{':
			_, end, ok := scan.ReadBalanced(body, i, '{', '}')
			if !ok {
				return fields
			}

			if scan.TopLevelIndex(body[start:i], '=') < 0 {
				start = end + 1
			}

			i = end
		case ';':
			fields = append(fields, javaStatement(body[start:i])...)
			start = i + 1
		}
	}

	return fields
}

// javaStatement turns one field statement into its declarators.
func javaStatement(stmt string) []model.Field {
	var blob strings.Builder

	rest := stmt

	for {
		rest = strings.TrimSpace(rest)

		if strings.HasPrefix(rest, "@") {
			_, end, ok := annotation.ReadFragment(rest, 0)
			if !ok {
				return nil
			}

			blob.WriteString(rest[:end])
			blob.WriteByte(' ')

			rest = rest[end:]

			continue
		}

		word := scan.LeadingIdent(rest)
		if _, mod := javaModifiers[word]; !mod {
			break
		}

		rest = rest[len(word):]
	}

	if rest == "" {
		return nil
	}

	if _, nested := javaTypeKeywords[scan.LeadingIdent(rest)]; nested {
		return nil
	}

	decl := rest
	if eq := scan.TopLevelIndex(rest, '='); eq >= 0 {
		decl = rest[:eq]
	}

	if javaMethodShape.MatchString(decl) {
		return nil
	}

	parts := scan.SplitTopLevel(rest, ',')

	first, ok := common.First(parts)
	if !ok {
		return nil
	}

	baseType, firstName, firstDims, ok := splitTypeAndName(stripInitializer(first))
	if !ok {
		return nil
	}

	anns := annotation.ParseJava(blob.String())
	optional := anns.Nullable || javaOptional.MatchString(baseType)

	fields := []model.Field{javaField(firstName, baseType, firstDims, optional, anns)}

	for _, p := range parts[1:] {
		name, dims, ok := splitNameAndDims(stripInitializer(p))
		if !ok {
			continue
		}

		fields = append(fields, javaField(name, baseType, dims, optional, anns))
	}

	return fields
}

func javaField(name, baseType string, dims int, optional bool, anns annotation.Set) model.Field {
	emit := name
	if anns.Rename != "" {
		emit = anns.Rename
	}

	return model.Field{
		Name:        name,
		EmitName:    emit,
		Type:        baseType + strings.Repeat("[]", dims),
		Optional:    optional,
		Annotations: anns,
	}
}

func stripInitializer(s string) string {
	if eq := scan.TopLevelIndex(s, '='); eq >= 0 {
		s = s[:eq]
	}

	return strings.TrimSpace(s)
}

// splitTypeAndName splits "Type name[][]" into its type, name and the
// number of [] pairs following the name.
func splitTypeAndName(s string) (string, string, int, bool) {
	s, dims := trimDims(s)

	end := len(s)
	begin := end

	for begin > 0 && scan.IsIdentPart(s[begin-1]) {
		begin--
	}

	if begin == end || !scan.IsIdentStart(s[begin]) {
		return "", "", 0, false
	}

	typ := strings.TrimSpace(s[:begin])
	if typ == "" {
		return "", "", 0, false
	}

	return typ, s[begin:end], dims, true
}

// splitNameAndDims parses a follow-up declarator "name[][]".
func splitNameAndDims(s string) (string, int, bool) {
	s, dims := trimDims(s)

	name := scan.LeadingIdent(s)
	if name == "" || name != s {
		return "", 0, false
	}

	return name, dims, true
}

func trimDims(s string) (string, int) {
	dims := 0

	for {
		s = strings.TrimSpace(s)
		if !strings.HasSuffix(s, "]") {
			return s, dims
		}

		inner := strings.TrimSpace(strings.TrimSuffix(s, "]"))
		if !strings.HasSuffix(inner, "[") {
			return s, dims
		}

		s = strings.TrimSuffix(inner, "[")
		dims++
	}
}

// skipQuoted returns the index of the closing quote of the literal opening
// at i, or the last index when it is unterminated.
func skipQuoted(s string, i int) int {
	quote := s[i]

	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}

	return len(s) - 1
}
