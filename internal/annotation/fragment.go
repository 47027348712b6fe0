package annotation

import (
	"strings"

	"dto2zod/internal/common"
	"dto2zod/internal/scan"
)

// Fragment is a single annotation occurrence: @Name or @Name(args).
type Fragment struct {
	// Target is a use-site target such as "field" in @field:Size, if any.
	Target string
	// Name is the annotation name as written, possibly dotted.
	Name string
	// Body is the text between the parentheses.
	Body    string
	HasBody bool
	// Text is the full fragment as it appears in the source.
	Text string
}

// SimpleName returns the last segment of a dotted annotation name.
func (f Fragment) SimpleName() string {
	name, _ := common.Last(strings.Split(f.Name, "."))

	return name
}

// Arg is one annotation argument. Name is empty for positional arguments.
type Arg struct {
	Name  string
	Value string
}

// Args splits the fragment body into named and positional arguments.
func (f Fragment) Args() []Arg {
	if !f.HasBody {
		return nil
	}

	var out []Arg

	for _, part := range scan.SplitTopLevel(f.Body, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if eq := scan.TopLevelIndex(part, '='); eq > 0 {
			key := strings.TrimSpace(part[:eq])
			if isIdent(key) {
				out = append(out, Arg{Name: key, Value: strings.TrimSpace(part[eq+1:])})

				continue
			}
		}

		out = append(out, Arg{Value: part})
	}

	return out
}

// Named returns the value of the named argument.
func (f Fragment) Named(name string) (string, bool) {
	for _, a := range f.Args() {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Positional returns the i-th positional argument.
func (f Fragment) Positional(i int) (string, bool) {
	n := 0

	for _, a := range f.Args() {
		if a.Name != "" {
			continue
		}

		if n == i {
			return a.Value, true
		}

		n++
	}

	return "", false
}

// ReadFragment parses the fragment starting at s[start], which must be '@'.
// It returns the fragment and the offset just past it.
func ReadFragment(s string, start int) (Fragment, int, bool) {
	if start >= len(s) || s[start] != '@' {
		return Fragment{}, start, false
	}

	i := start + 1

	name, i := readName(s, i)
	if name == "" {
		return Fragment{}, start, false
	}

	f := Fragment{Name: name}

	if i+1 < len(s) && s[i] == ':' && scan.IsIdentStart(s[i+1]) {
		f.Target = name
		f.Name, i = readName(s, i+1)
	}

	j := scan.SkipSpaces(s, i)
	if j < len(s) && s[j] == '(' {
		if body, end, ok := scan.ReadBalanced(s, j, '(', ')'); ok {
			f.Body = body
			f.HasBody = true
			i = end + 1
		}
	}

	f.Text = s[start:i]

	return f, i, true
}

// Fragments returns every annotation fragment found in blob, in order.
func Fragments(blob string) []Fragment {
	var out []Fragment

	for i := 0; i < len(blob); {
		if blob[i] != '@' {
			i++

			continue
		}

		f, end, ok := ReadFragment(blob, i)
		if !ok {
			i++

			continue
		}

		out = append(out, f)
		i = end
	}

	return out
}

// LeadingEnd returns the offset just past the run of annotation fragments
// (and surrounding whitespace) at the start of s.
func LeadingEnd(s string) int {
	i := scan.SkipSpaces(s, 0)

	for i < len(s) && s[i] == '@' {
		_, end, ok := ReadFragment(s, i)
		if !ok {
			break
		}

		i = scan.SkipSpaces(s, end)
	}

	return i
}

func readName(s string, i int) (string, int) {
	start := i

	for i < len(s) && (scan.IsIdentPart(s[i]) || (s[i] == '.' && i+1 < len(s) && scan.IsIdentStart(s[i+1]))) {
		i++
	}

	return s[start:i], i
}

func isIdent(s string) bool {
	if s == "" || !scan.IsIdentStart(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !scan.IsIdentPart(s[i]) {
			return false
		}
	}

	return true
}
