package typemap

import (
	"regexp"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the head of a schema expression. Refinements are gated on it.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindUnknown // unknown
	KindString  // string
	KindNumber  // number
	KindBoolean // boolean
	KindArray   // array
	KindRecord  // record
	KindEnum    // enum
	KindLazy    // lazy
	KindCustom  // custom
)

// IsStringBacked reports whether values of this kind serialize as strings,
// which makes them usable as record keys.
func (k Kind) IsStringBacked() bool {
	switch k {
	default:
		return false
	case KindString, KindEnum:
		return true
	}
}

var enumSchemaRef = regexp.MustCompile(`^[A-Za-z_]\w*Schema$`)

// KindOf derives the head kind of an arbitrary expression text, as used for
// configured overrides.
func KindOf(expr string) Kind {
	switch {
	case strings.HasPrefix(expr, "z.string()"):
		return KindString
	case strings.HasPrefix(expr, "z.number()"):
		return KindNumber
	case strings.HasPrefix(expr, "z.boolean()"):
		return KindBoolean
	case strings.HasPrefix(expr, "z.array("):
		return KindArray
	case strings.HasPrefix(expr, "z.record("):
		return KindRecord
	case strings.HasPrefix(expr, "z.lazy("):
		return KindLazy
	case strings.HasPrefix(expr, "z.unknown()"):
		return KindUnknown
	case enumSchemaRef.MatchString(expr):
		return KindEnum
	default:
		return KindCustom
	}
}

// Expr is a schema expression together with its head kind.
type Expr struct {
	Text string
	Kind Kind
}

func (e Expr) String() string {
	return e.Text
}

func exprOf(text string, kind Kind) Expr {
	return Expr{Text: text, Kind: kind}
}

var unknownExpr = exprOf("z.unknown()", KindUnknown)

func arrayOf(elem Expr) Expr {
	return exprOf("z.array("+elem.Text+")", KindArray)
}

func recordOf(value Expr) Expr {
	return exprOf("z.record(z.string(), "+value.Text+")", KindRecord)
}
