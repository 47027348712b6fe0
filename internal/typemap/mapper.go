package typemap

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"dto2zod/internal/common"
	"dto2zod/internal/diagnostic"
	"dto2zod/internal/match"
	"dto2zod/internal/model"
	"dto2zod/internal/scan"
)

// DefaultMaxDepth bounds recursion through nested generic arguments.
const DefaultMaxDepth = 64

var (
	reGenericArray  = regexp.MustCompile(`^Array\s*<(.+)>$`)
	reMutable       = regexp.MustCompile(`^Mutable(List|Set|Map)\s*<`)
	reOptional      = regexp.MustCompile(`^(?:java\.util\.)?Optional\s*<(.+)>$`)
	reArraySuffix   = regexp.MustCompile(`\[\s*\]$`)
	reGeneric       = regexp.MustCompile(`^([A-Za-z_$][\w$.]*)\s*<(.+)>$`)
	reQualification = regexp.MustCompile(`^(?:[A-Za-z_$][\w$]*\.)+`)
)

// Result is the outcome of mapping one declared type.
type Result struct {
	Expr        Expr
	Diagnostics diagnostic.List
}

// Mapper resolves declared type text against the known symbols.
type Mapper struct {
	Known model.Known
	// Overrides maps a type name (qualified or simple) to a verbatim schema
	// expression. Known enums take precedence over overrides.
	Overrides map[string]string
	// MaxDepth bounds generic nesting; zero means DefaultMaxDepth.
	MaxDepth int
}

// New creates a Mapper with the default depth limit and no overrides.
func New(known model.Known) *Mapper {
	return &Mapper{Known: known, MaxDepth: DefaultMaxDepth}
}

// Map resolves typeText into a schema expression. It never fails: anything
// it cannot resolve becomes z.unknown() with a diagnostic.
func (m *Mapper) Map(typeText string) Result {
	limit := m.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}

	st := &mapping{Mapper: m, root: common.CollapseSpaces(typeText), limit: limit}
	expr := st.mapType(typeText, 0)

	return Result{Expr: expr, Diagnostics: st.diags}
}

// mapping is the per-call state of one Map invocation.
type mapping struct {
	*Mapper

	root   string
	limit  int
	diags  diagnostic.List
	halted bool
}

func (st *mapping) mapType(typeText string, depth int) Expr {
	if st.halted {
		return unknownExpr
	}

	if depth > st.limit {
		st.halted = true
		st.diags.AddError(diagnostic.CodeTypeNestedTooDeeply,
			fmt.Sprintf("Type nested too deeply: '%s'", st.root))

		return unknownExpr
	}

	t := common.CollapseSpaces(typeText)
	t = strings.TrimPrefix(t, "final ")

	if m := reGenericArray.FindStringSubmatch(t); m != nil {
		t = strings.TrimSpace(m[1]) + "[]"
	}

	t = reMutable.ReplaceAllString(t, "$1<")

	// optionality itself is decided by the extractor
	if m := reOptional.FindStringSubmatch(t); m != nil {
		t = strings.TrimSpace(m[1])
	}

	dims := 0
	for reArraySuffix.MatchString(t) {
		dims++
		t = strings.TrimSpace(reArraySuffix.ReplaceAllString(t, ""))
	}

	expr := st.mapBase(t, depth)
	for range dims {
		expr = arrayOf(expr)
	}

	return expr
}

func (st *mapping) mapBase(t string, depth int) Expr {
	m := reGeneric.FindStringSubmatch(t)
	if m == nil {
		return st.leaf(t)
	}

	name, inner := collectionName(m[1]), strings.TrimSpace(m[2])

	switch {
	case slices.Contains(listNames, name):
		return arrayOf(st.mapType(inner, depth+1))
	case slices.Contains(mapNames, name):
		args := scan.SplitTopLevel(inner, ',')
		if len(args) == 2 {
			return st.mapRecord(strings.TrimSpace(args[0]), strings.TrimSpace(args[1]), depth)
		}
	}

	return st.leaf(t)
}

func (st *mapping) mapRecord(keyText, valueText string, depth int) Expr {
	mark := len(st.diags)

	key := st.mapType(keyText, depth+1)
	if !key.Kind.IsStringBacked() && !st.halted {
		// the key is replaced by string keys; only the key warning below is reported
		st.diags = st.diags[:mark]
	}

	value := st.mapType(valueText, depth+1)

	if key.Kind.IsStringBacked() {
		return recordOf(value)
	}

	if st.halted {
		return recordOf(unknownExpr)
	}

	st.diags.AddWarn(diagnostic.CodeUnsupportedMapKey,
		fmt.Sprintf("Map key '%s' not supported → string keys used", keyText))

	return recordOf(unknownExpr)
}

func (st *mapping) leaf(name string) Expr {
	simple := reQualification.ReplaceAllString(name, "")

	if st.Known.HasEnum(simple) {
		return exprOf(simple+"Schema", KindEnum)
	}

	if text, ok := st.override(name, simple); ok {
		return exprOf(text, KindOf(text))
	}

	if e, ok := scalars[simple]; ok {
		return e
	}

	if isDate(name, simple) {
		return exprOf("z.string()", KindString)
	}

	if st.Known.HasClass(simple) {
		return exprOf("z.lazy(() => "+simple+"Schema)", KindLazy)
	}

	d := diagnostic.Warn(diagnostic.CodeUnknownType, fmt.Sprintf("Unknown type '%s' → z.unknown()", name))
	d.Suggestions = match.Suggest(simple, st.Known.Names())
	st.diags.Add(d)

	return unknownExpr
}

func (st *mapping) override(name, simple string) (string, bool) {
	if text, ok := st.Overrides[name]; ok {
		return text, true
	}

	text, ok := st.Overrides[simple]

	return text, ok
}
