package extract

import (
	"dto2zod/internal/dialect"
	"dto2zod/internal/model"
)

// Extractor finds the classes and enums declared in normalized source text.
type Extractor interface {
	Classes(src string) []model.Class
	Enums(src string) []model.Enum
}

// For returns the extractor for a dialect.
func For(kind dialect.Kind) Extractor {
	if kind == dialect.Kotlin {
		return Kotlin{}
	}

	return Java{}
}
