package dialect

// Classification is the result of scoring evidence for a text.
type Classification struct {
	Kind  Kind
	Score int
	Hints []Hint
}

// Classifier chooses a dialect from evidence. Any positive Kotlin evidence
// selects Kotlin; everything else is Java.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	c := Classification{Kind: Java, Hints: e.Hints()}

	for _, h := range c.Hints {
		if h.Dialect != Kotlin || h.Score <= 0 {
			continue
		}

		c.Kind = Kotlin
		c.Score += h.Score
	}

	return c
}

// Detect collects evidence from normalized text and classifies it.
func Detect(text string) Classification {
	e := NewEvidence()
	Observe(e, text)

	return Classifier{}.Classify(e)
}
