package extract

import (
	"regexp"
	"strings"

	"dto2zod/internal/annotation"
	"dto2zod/internal/model"
	"dto2zod/internal/scan"
)

var (
	kotlinEnumHeader  = regexp.MustCompile(`\benum\s+class\s+([A-Za-z_]\w*)`)
	kotlinClassHeader = regexp.MustCompile(`\bclass\s+([A-Za-z_]\w*)`)
)

var kotlinModifiers = map[string]struct{}{
	"public":    {},
	"private":   {},
	"protected": {},
	"internal":  {},
	"override":  {},
	"open":      {},
	"final":     {},
	"abstract":  {},
	"lateinit":  {},
	"const":     {},
	"vararg":    {},
}

// Kotlin extracts declarations written in the Kotlin-like dialect.
type Kotlin struct{}

// Enums returns every `enum class Name { ... }` declaration in source order.
func (Kotlin) Enums(src string) []model.Enum {
	return extractEnums(src, kotlinEnumHeader)
}

// Classes returns every class in source order. Fields come from val/var
// primary constructor parameters followed by properties declared at the top
// level of the class body. Classes sharing a name are merged.
func (Kotlin) Classes(src string) []model.Class {
	var classes []model.Class

	for _, m := range kotlinClassHeader.FindAllStringSubmatchIndex(src, -1) {
		if isMemberAccess(src, m[0]) {
			continue
		}

		switch wordBefore(src, m[0]) {
		case "enum", "annotation":
			continue
		}

		var fields []model.Field

		i := m[1]
		if params, end, ok := primaryConstructor(src, i); ok {
			fields = append(fields, kotlinParams(params)...)
			i = end + 1
		}

		if body, _, ok := readBody(src, i); ok {
			fields = append(fields, kotlinBodyProps(body)...)
		}

		classes = append(classes, model.Class{
			Name:   src[m[2]:m[3]],
			Fields: model.DedupFields(fields),
		})
	}

	return model.Coalesce(classes)
}

// primaryConstructor finds the parameter list following a class name,
// skipping type parameters, visibility modifiers, annotations and the
// constructor keyword.
func primaryConstructor(src string, i int) (string, int, bool) {
	i = scan.SkipSpaces(src, i)

	if i < len(src) && src[i] == '<' {
		_, end, ok := scan.ReadBalanced(src, i, '<', '>')
		if !ok {
			return "", i, false
		}

		i = scan.SkipSpaces(src, end+1)
	}

	for i < len(src) {
		if src[i] == '@' {
			_, end, ok := annotation.ReadFragment(src, i)
			if !ok {
				break
			}

			i = scan.SkipSpaces(src, end)

			continue
		}

		word := scan.LeadingIdent(src[i:])
		if _, mod := kotlinModifiers[word]; !mod && word != "constructor" {
			break
		}

		i = scan.SkipSpaces(src, i+len(word))
	}

	if i >= len(src) || src[i] != '(' {
		return "", i, false
	}

	return scan.ReadBalanced(src, i, '(', ')')
}

// kotlinParams turns val/var constructor parameters into fields. Plain
// parameters are not properties and are skipped.
func kotlinParams(params string) []model.Field {
	var fields []model.Field

	for _, p := range scan.SplitTopLevel(params, ',') {
		if f, ok := kotlinProperty(p); ok {
			fields = append(fields, f)
		}
	}

	return fields
}

// kotlinBodyProps returns the properties declared at the top level of a
// class body. Nested blocks are blanked first, so locals in functions,
// initializers and nested classes are not picked up. A statement ends at a
// newline or ';' outside parentheses; annotation-only lines carry over to
// the next statement.
func kotlinBodyProps(body string) []model.Field {
	var (
		fields  []model.Field
		pending strings.Builder
	)

	for _, stmt := range kotlinStatements(scan.BlankNested(body)) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if annotation.LeadingEnd(stmt) == len(stmt) {
			pending.WriteString(stmt)
			pending.WriteByte(' ')

			continue
		}

		if f, ok := kotlinProperty(pending.String() + stmt); ok {
			fields = append(fields, f)
		}

		pending.Reset()
	}

	return fields
}

// kotlinProperty parses `[annotations] [modifiers] val|var name: Type [= default]`.
func kotlinProperty(decl string) (model.Field, bool) {
	var blob strings.Builder

	rest := strings.TrimSpace(decl)

	for {
		if strings.HasPrefix(rest, "@") {
			_, end, ok := annotation.ReadFragment(rest, 0)
			if !ok {
				return model.Field{}, false
			}

			blob.WriteString(rest[:end])
			blob.WriteByte(' ')

			rest = strings.TrimSpace(rest[end:])

			continue
		}

		word := scan.LeadingIdent(rest)
		if _, mod := kotlinModifiers[word]; !mod {
			break
		}

		rest = strings.TrimSpace(rest[len(word):])
	}

	keyword := scan.LeadingIdent(rest)
	if keyword != "val" && keyword != "var" {
		return model.Field{}, false
	}

	rest = strings.TrimSpace(rest[len(keyword):])

	name := scan.LeadingIdent(rest)
	if name == "" {
		return model.Field{}, false
	}

	rest = strings.TrimSpace(rest[len(name):])
	if !strings.HasPrefix(rest, ":") {
		return model.Field{}, false
	}

	typ := kotlinTypeText(rest[1:])
	if typ == "" {
		return model.Field{}, false
	}

	anns := annotation.ParseKotlin(blob.String())

	optional := anns.Nullable
	if strings.HasSuffix(typ, "?") {
		optional = true
		typ = strings.TrimSpace(strings.TrimSuffix(typ, "?"))
	}

	emit := name
	if anns.Rename != "" {
		emit = anns.Rename
	}

	return model.Field{
		Name:        name,
		EmitName:    emit,
		Type:        typ,
		Optional:    optional,
		Annotations: anns,
	}, true
}

var kotlinTypeEnd = regexp.MustCompile(`\s+by\s|\{|\bget\s*\(|\bset\s*\(`)

// kotlinTypeText cuts the declared type off any default value, delegate or
// accessor that follows it.
func kotlinTypeText(s string) string {
	if eq := scan.TopLevelIndex(s, '='); eq >= 0 {
		s = s[:eq]
	}

	if loc := kotlinTypeEnd.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}

	return strings.TrimSpace(s)
}

// kotlinStatements splits text at newlines and ';' that are outside quotes,
// parentheses and brackets.
func kotlinStatements(s string) []string {
	var out []string

	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"', '\'':
			i = skipQuoted(s, i)
		case '(', '[':
			depth++
		case ')', ']':
			depth = max(0, depth-1)
		case '\n', ';':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}

	if start < len(s) {
		out = append(out, s[start:])
	}

	return out
}
