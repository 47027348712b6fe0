package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))

	first, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", first)

	last, ok := Last([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", last)

	_, ok = Last([]string(nil))
	assert.False(t, ok)
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "Map<String, List<Integer>>", CollapseSpaces("  Map<String,\n\t List<Integer>>  "))
}
