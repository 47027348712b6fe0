package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"dto2zod/internal/common"
)

// Stable diagnostic codes.
const (
	CodeUnknownType         = "unknown_type"
	CodeUnsupportedMapKey   = "unsupported_map_key"
	CodeTypeNestedTooDeeply = "type_nested_too_deeply"
)

// Level represents the severity level of a diagnostic.
type Level int

const (
	LevelWarn Level = iota
	LevelError
)

// String returns the wire name of the level.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// ParseLevel parses a wire name back into a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelWarn, fmt.Errorf("unknown diagnostic level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}

// Location identifies the class and field a diagnostic relates to.
type Location struct {
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Level of the diagnostic.
	Level Level `json:"level" yaml:"level"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
	// Message is the human-readable description. It quotes the offending
	// type text verbatim.
	Message string `json:"message" yaml:"message"`
	// Where locates the diagnostic; nil until the emitter attaches it.
	Where *Location `json:"where,omitempty" yaml:"where,omitempty"`
	// Suggestions are known names close to an unresolved one.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Warn builds an unlocated warn-level diagnostic.
func Warn(code, message string) Diagnostic {
	return Diagnostic{Level: LevelWarn, Code: code, Message: message}
}

// Error builds an unlocated error-level diagnostic.
func Error(code, message string) Diagnostic {
	return Diagnostic{Level: LevelError, Code: code, Message: message}
}

// At returns a copy of d located at the given class and field.
func (d Diagnostic) At(class, field string) Diagnostic {
	d.Where = &Location{Class: class, Field: field}
	return d
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Where != nil && d.Where.Class != "" {
		prefix = append(prefix, "["+d.Where.Class+"]")
	}

	if d.Where != nil && d.Where.Field != "" {
		prefix = append(prefix, d.Where.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + quoteAll(d.Suggestions) + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}

	return strings.Join(quoted, ", ")
}

// List is an ordered list of diagnostics. The zero value is ready to use.
type List []Diagnostic

// Add appends a diagnostic.
func (l *List) Add(d Diagnostic) {
	*l = append(*l, d)
}

// AddWarn appends an unlocated warn-level diagnostic.
func (l *List) AddWarn(code, message string) {
	l.Add(Warn(code, message))
}

// AddError appends an unlocated error-level diagnostic.
func (l *List) AddError(code, message string) {
	l.Add(Error(code, message))
}

// Merge appends all diagnostics of other, keeping their order.
func (l *List) Merge(other List) {
	*l = append(*l, other...)
}

// Located returns a copy of the list with every entry located at class/field.
func (l List) Located(class, field string) List {
	if len(l) == 0 {
		return nil
	}

	out := make(List, len(l))
	for i, d := range l {
		out[i] = d.At(class, field)
	}

	return out
}

// HasErrors returns true if there are any error diagnostics.
func (l List) HasErrors() bool {
	return l.Count(LevelError) > 0
}

// HasWarnings returns true if there are any warn diagnostics.
func (l List) HasWarnings() bool {
	return l.Count(LevelWarn) > 0
}

// Count returns the number of diagnostics with the given level.
func (l List) Count(level Level) int {
	n := 0

	for _, d := range l {
		if d.Level == level {
			n++
		}
	}

	return n
}

// Err returns a combined error from all error diagnostics, or nil.
func (l List) Err() error {
	if !l.HasErrors() {
		return nil
	}

	var parts []string

	for _, d := range l {
		if d.Level == LevelError {
			parts = append(parts, d.String())
		}
	}

	return errors.New(strings.Join(parts, "; "))
}
