package dialect

import "regexp"

type patternSignal struct {
	re     *regexp.Regexp
	kind   Kind
	score  int
	reason string
}

// Kotlin-only constructs. Java has neither keyword pair nor the
// "val name :" declaration shape.
var patternSignals = []patternSignal{
	{regexp.MustCompile(`\benum\s+class\b`), Kotlin, 5, "kotlin keyword pair `enum class`"},
	{regexp.MustCompile(`\bdata\s+class\b`), Kotlin, 5, "kotlin keyword pair `data class`"},
	{regexp.MustCompile(`\b(?:val|var)\s+\w+\s*:`), Kotlin, 3, "kotlin declaration `val|var name :`"},
}

// Observe records every pattern signal found in text.
func Observe(e *Evidence, text string) {
	if e == nil {
		return
	}

	for _, sig := range patternSignals {
		loc := sig.re.FindStringIndex(text)
		if loc == nil {
			continue
		}

		e.Add(Hint{
			Dialect: sig.kind,
			Score:   sig.score,
			Reason:  sig.reason,
			Offset:  loc[0],
		})
	}
}
