package common

import "strings"

// UnknownStr is the fallback name printed for unrecognized enum values.
const UnknownStr = "unknown"

// CollapseSpaces trims s and replaces every whitespace run with one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
