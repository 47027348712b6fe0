package model

import (
	"dto2zod/internal/annotation"
)

// Field is one serializable property of a class.
type Field struct {
	// Name is the declared identifier.
	Name string
	// EmitName is the key used in the schema: the rename target if any,
	// else Name.
	EmitName string
	// Type is the declared type text. A Kotlin '?' suffix is removed;
	// Java Optional<T> is kept and unwrapped by the type mapper.
	Type string
	// Optional is set by Optional<T>, @Nullable or a trailing '?'.
	Optional    bool
	Annotations annotation.Set
}

// Key returns the emission key of the field.
func (f Field) Key() string {
	if f.EmitName != "" {
		return f.EmitName
	}

	return f.Name
}

// Class is a named record-like declaration.
type Class struct {
	Name   string
	Fields []Field
}

// Enum is a named enumeration with its values in declaration order.
type Enum struct {
	Name   string
	Values []string
}

// Known is the table of class and enum names declared in the input.
type Known struct {
	classes map[string]struct{}
	enums   map[string]struct{}
}

// NewKnown builds the symbol table from extracted declarations.
func NewKnown(classes []Class, enums []Enum) Known {
	k := Known{
		classes: make(map[string]struct{}, len(classes)),
		enums:   make(map[string]struct{}, len(enums)),
	}

	for _, c := range classes {
		k.classes[c.Name] = struct{}{}
	}

	for _, e := range enums {
		k.enums[e.Name] = struct{}{}
	}

	return k
}

// HasClass reports whether name is a declared class.
func (k Known) HasClass(name string) bool {
	_, ok := k.classes[name]
	return ok
}

// HasEnum reports whether name is a declared enum.
func (k Known) HasEnum(name string) bool {
	_, ok := k.enums[name]
	return ok
}

// Names returns every known class and enum name in unspecified order.
func (k Known) Names() []string {
	out := make([]string, 0, len(k.classes)+len(k.enums))

	for n := range k.classes {
		out = append(out, n)
	}

	for n := range k.enums {
		out = append(out, n)
	}

	return out
}
