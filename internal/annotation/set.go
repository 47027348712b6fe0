package annotation

import (
	"strconv"
	"strings"
)

// Bounds holds optional lower and upper limits.
type Bounds struct {
	Min *int
	Max *int
}

// Decimal is a DecimalMin/DecimalMax bound. Text is the literal exactly as
// written between the quotes.
type Decimal struct {
	Text      string
	Inclusive bool
}

// Set is the parsed form of a field's annotations.
type Set struct {
	Nullable bool
	NotNull  bool
	Size     *Bounds
	Min      *int64
	Max      *int64
	// Pattern is the raw regular expression text; empty means none.
	Pattern string
	// Rename is the serialized property name; empty means none.
	Rename     string
	Email      bool
	NotBlank   bool
	Positive   bool
	Negative   bool
	DecimalMin *Decimal
	DecimalMax *Decimal
	// Raw lists every fragment found, recognized or not.
	Raw []string
}

// IsZero reports whether no annotation effect was recognized.
func (s Set) IsZero() bool {
	return !s.Nullable && !s.NotNull && s.Size == nil && s.Min == nil && s.Max == nil &&
		s.Pattern == "" && s.Rename == "" && !s.Email && !s.NotBlank &&
		!s.Positive && !s.Negative && s.DecimalMin == nil && s.DecimalMax == nil
}

// ParseJava parses an annotation blob written in the Java-like dialect.
// For repeated annotations the first occurrence wins.
func ParseJava(blob string) Set {
	var s Set

	for _, f := range Fragments(blob) {
		s.Raw = append(s.Raw, f.Text)

		if f.Target != "" {
			continue
		}

		s.apply(f)
	}

	return s
}

// ParseKotlin parses an annotation blob written in the Kotlin-like dialect.
// The field: and get: use-site targets are honored; Moshi's @Json(name = ...)
// overrides any other rename.
func ParseKotlin(blob string) Set {
	normalized := strings.NewReplacer("@field:", "@", "@get:", "@").Replace(blob)
	s := ParseJava(normalized)

	for _, f := range Fragments(normalized) {
		if f.Target != "" || f.SimpleName() != "Json" {
			continue
		}

		if v, ok := f.Named("name"); ok {
			if name, ok := stringLiteral(v); ok && name != "" {
				s.Rename = name

				break
			}
		}
	}

	return s
}

func (s *Set) apply(f Fragment) {
	switch f.SimpleName() {
	case "Nullable":
		s.Nullable = true
	case "NotNull", "Nonnull":
		s.NotNull = true
	case "Size":
		if s.Size == nil {
			s.Size = parseSize(f)
		}
	case "Min":
		if s.Min == nil {
			s.Min = valueInt(f)
		}
	case "Max":
		if s.Max == nil {
			s.Max = valueInt(f)
		}
	case "Pattern":
		if s.Pattern == "" {
			if v, ok := f.Named("regexp"); ok {
				s.Pattern, _ = stringLiteral(v)
			}
		}
	case "JsonProperty":
		if s.Rename == "" {
			if v, ok := valueArg(f); ok {
				if name, ok := stringLiteral(v); ok {
					s.Rename = name
				}
			}
		}
	case "Email":
		s.Email = true
	case "NotBlank", "NotEmpty":
		s.NotBlank = true
	case "Positive":
		s.Positive = true
	case "Negative":
		s.Negative = true
	case "DecimalMin":
		if s.DecimalMin == nil {
			s.DecimalMin = parseDecimal(f)
		}
	case "DecimalMax":
		if s.DecimalMax == nil {
			s.DecimalMax = parseDecimal(f)
		}
	}
}

func parseSize(f Fragment) *Bounds {
	if !f.HasBody {
		return nil
	}

	b := &Bounds{}

	if v, ok := f.Named("min"); ok {
		if n, ok := parseInt(v); ok {
			m := int(n)
			b.Min = &m
		}
	}

	if v, ok := f.Named("max"); ok {
		if n, ok := parseInt(v); ok {
			m := int(n)
			b.Max = &m
		}
	}

	return b
}

func valueInt(f Fragment) *int64 {
	v, ok := valueArg(f)
	if !ok {
		return nil
	}

	n, ok := parseInt(v)
	if !ok {
		return nil
	}

	return &n
}

func parseDecimal(f Fragment) *Decimal {
	v, ok := valueArg(f)
	if !ok {
		return nil
	}

	text, ok := stringLiteral(v)
	if !ok || text == "" {
		return nil
	}

	d := &Decimal{Text: text, Inclusive: true}

	if inc, ok := f.Named("inclusive"); ok && strings.TrimSpace(inc) == "false" {
		d.Inclusive = false
	}

	return d
}

// valueArg returns the named "value" argument or the first positional one.
func valueArg(f Fragment) (string, bool) {
	if v, ok := f.Named("value"); ok {
		return v, true
	}

	return f.Positional(0)
}

func parseInt(v string) (int64, bool) {
	v = strings.TrimSpace(v)
	v = strings.TrimRight(v, "lL")

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// stringLiteral returns the raw text between the quotes of a "..." literal.
// Escapes are left as written.
func stringLiteral(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return "", false
	}

	return v[1 : len(v)-1], true
}
