package typemap

import (
	"slices"
	"strings"
)

// scalars maps simple type names of both dialects to their schema.
var scalars = map[string]Expr{
	"String": exprOf("z.string()", KindString),

	"byte":    exprOf("z.number().int()", KindNumber),
	"Byte":    exprOf("z.number().int()", KindNumber),
	"short":   exprOf("z.number().int()", KindNumber),
	"Short":   exprOf("z.number().int()", KindNumber),
	"int":     exprOf("z.number().int()", KindNumber),
	"Int":     exprOf("z.number().int()", KindNumber),
	"Integer": exprOf("z.number().int()", KindNumber),

	"long":   exprOf("z.number()", KindNumber),
	"Long":   exprOf("z.number()", KindNumber),
	"float":  exprOf("z.number()", KindNumber),
	"Float":  exprOf("z.number()", KindNumber),
	"double": exprOf("z.number()", KindNumber),
	"Double": exprOf("z.number()", KindNumber),

	"boolean": exprOf("z.boolean()", KindBoolean),
	"Boolean": exprOf("z.boolean()", KindBoolean),

	"char":      exprOf("z.string().length(1)", KindString),
	"Character": exprOf("z.string().length(1)", KindString),
	"Char":      exprOf("z.string().length(1)", KindString),

	"ByteArray":    exprOf("z.array(z.number().int())", KindArray),
	"ShortArray":   exprOf("z.array(z.number().int())", KindArray),
	"IntArray":     exprOf("z.array(z.number().int())", KindArray),
	"LongArray":    exprOf("z.array(z.number())", KindArray),
	"FloatArray":   exprOf("z.array(z.number())", KindArray),
	"DoubleArray":  exprOf("z.array(z.number())", KindArray),
	"BooleanArray": exprOf("z.array(z.boolean())", KindArray),
	"CharArray":    exprOf("z.array(z.string().length(1))", KindArray),
}

var dateNames = []string{
	"Instant",
	"LocalDate",
	"LocalTime",
	"LocalDateTime",
	"OffsetDateTime",
	"ZonedDateTime",
}

// isDate reports whether a leaf names a date/time type, which serializes as
// text.
func isDate(name, simple string) bool {
	return name == "java.util.Date" ||
		strings.HasPrefix(name, "java.time.") ||
		slices.Contains(dateNames, simple)
}

// Collection names with their optional package qualifiers removed.
var (
	listNames = []string{
		"List", "Set", "Collection", "Iterable",
		"ArrayList", "LinkedList", "HashSet", "LinkedHashSet", "TreeSet", "SortedSet",
	}
	mapNames = []string{
		"Map", "HashMap", "LinkedHashMap", "TreeMap", "SortedMap", "ConcurrentHashMap",
	}
	collectionQualifiers = []string{
		"java.util.concurrent.",
		"java.util.",
		"kotlin.collections.",
	}
)

// collectionName strips a well-known collection package from a generic name.
// Other qualifiers are kept, so com.acme.List is not a collection.
func collectionName(name string) string {
	for _, q := range collectionQualifiers {
		if rest, ok := strings.CutPrefix(name, q); ok {
			return rest
		}
	}

	return name
}
