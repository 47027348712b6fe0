package gen

import (
	"regexp"
	"strconv"
	"strings"

	"dto2zod/internal/annotation"
	"dto2zod/internal/typemap"
)

// Refine appends the refinements an annotation set implies for an
// expression of the given head kind. Refinements that do not apply to the
// head are ignored.
func Refine(expr typemap.Expr, a annotation.Set) string {
	var b strings.Builder

	b.WriteString(expr.Text)

	switch expr.Kind {
	case typemap.KindString:
		if a.Pattern != "" {
			b.WriteString(".regex(" + RegexLiteral(a.Pattern) + ")")
		}

		writeSize(&b, a.Size)

		if a.Email {
			b.WriteString(".email()")
		}

		if a.NotBlank {
			b.WriteString(".min(1)")
		}
	case typemap.KindArray:
		writeSize(&b, a.Size)
	case typemap.KindNumber:
		if a.Min != nil {
			b.WriteString(".min(" + strconv.FormatInt(*a.Min, 10) + ")")
		}

		if a.Max != nil {
			b.WriteString(".max(" + strconv.FormatInt(*a.Max, 10) + ")")
		}

		if a.Positive {
			b.WriteString(".positive()")
		}

		if a.Negative {
			b.WriteString(".negative()")
		}

		writeDecimal(&b, "min", a.DecimalMin)
		writeDecimal(&b, "max", a.DecimalMax)
	}

	return b.String()
}

func writeSize(b *strings.Builder, size *annotation.Bounds) {
	if size == nil {
		return
	}

	if size.Min != nil {
		b.WriteString(".min(" + strconv.Itoa(*size.Min) + ")")
	}

	if size.Max != nil {
		b.WriteString(".max(" + strconv.Itoa(*size.Max) + ")")
	}
}

// writeDecimal renders a decimal bound with its literal text unchanged.
func writeDecimal(b *strings.Builder, method string, d *annotation.Decimal) {
	if d == nil {
		return
	}

	b.WriteString("." + method + "(" + d.Text)

	if !d.Inclusive {
		b.WriteString(", { inclusive: false }")
	}

	b.WriteString(")")
}

const optionalSuffix = ".optional()"

var repeatedOptional = regexp.MustCompile(`(?:\.optional\(\)){2,}`)

// MakeOptional ensures expr ends with exactly one .optional().
func MakeOptional(expr string) string {
	if !strings.HasSuffix(expr, optionalSuffix) {
		expr += optionalSuffix
	}

	return repeatedOptional.ReplaceAllString(expr, optionalSuffix)
}

var bareKey = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// QuoteKey returns k as an object key, single-quoted when it is not a bare
// identifier.
func QuoteKey(k string) string {
	if bareKey.MatchString(k) {
		return k
	}

	return quoteString(k)
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteString(s string) string {
	return "'" + stringEscaper.Replace(s) + "'"
}

// RegexLiteral converts pattern text as written in a source string literal
// into a JavaScript regex literal. Doubled backslashes are collapsed (three
// passes), raw control characters become escapes, and '/' is escaped.
func RegexLiteral(pattern string) string {
	s := pattern

	for range 3 {
		s = strings.ReplaceAll(s, `\\`, `\`)
	}

	s = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`, "/", `\/`).Replace(s)

	return "/" + s + "/"
}
