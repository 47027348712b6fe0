package dialect

import (
	"fmt"
	"strings"
)

// Kind is one of the supported source dialects.
type Kind uint8

const (
	// Java is the Java-like dialect (dialect A).
	Java Kind = iota
	// Kotlin is the Kotlin-like dialect (dialect B).
	Kotlin
)

func (k Kind) String() string {
	switch k {
	case Java:
		return "java"
	case Kotlin:
		return "kotlin"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// Choice is a dialect selection that may defer to detection.
type Choice string

const (
	ChoiceAuto   Choice = "auto"
	ChoiceJava   Choice = "java"
	ChoiceKotlin Choice = "kotlin"
)

// ParseChoice validates a user-provided dialect name. Empty means auto.
func ParseChoice(s string) (Choice, error) {
	switch c := Choice(strings.ToLower(strings.TrimSpace(s))); c {
	case "", ChoiceAuto:
		return ChoiceAuto, nil
	case ChoiceJava, ChoiceKotlin:
		return c, nil
	default:
		return "", fmt.Errorf("unknown dialect %q (auto|java|kotlin)", s)
	}
}

// Forced reports the dialect a non-auto choice pins, and whether it pins one.
func (c Choice) Forced() (Kind, bool) {
	switch c {
	case ChoiceJava:
		return Java, true
	case ChoiceKotlin:
		return Kotlin, true
	default:
		return Java, false
	}
}
