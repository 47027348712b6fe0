package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Kind
	}{
		{"java class", "public class A { public String name; }", Java},
		{"java enum", "public enum Role { USER, ADMIN }", Java},
		{"kotlin enum class", "enum class Status { NEW, DONE }", Kotlin},
		{"kotlin data class", "data class A(x: Int)", Kotlin},
		{"kotlin property", "class P { val age: Int? }", Kotlin},
		{"kotlin var with spaces", "class P { var  nick :String }", Kotlin},
		{"empty", "", Java},
		{"java field named val", "class A { int val; }", Java},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.input).Kind)
		})
	}
}

func TestDetect_ReportsHints(t *testing.T) {
	c := Detect("enum class S { A }\ndata class D(val x: S)")

	require.Len(t, c.Hints, 3)
	assert.Equal(t, 13, c.Score)
	assert.Equal(t, "kotlin keyword pair `enum class`", c.Hints[0].Reason)
	assert.Equal(t, 0, c.Hints[0].Offset)
}

func TestClassifier_NilEvidence(t *testing.T) {
	c := Classifier{}.Classify(nil)
	assert.Equal(t, Java, c.Kind)
	assert.Empty(t, c.Hints)
}

func TestParseChoice(t *testing.T) {
	c, err := ParseChoice("")
	require.NoError(t, err)
	assert.Equal(t, ChoiceAuto, c)

	c, err = ParseChoice(" Kotlin ")
	require.NoError(t, err)
	k, forced := c.Forced()
	assert.True(t, forced)
	assert.Equal(t, Kotlin, k)

	_, forced = ChoiceAuto.Forced()
	assert.False(t, forced)

	_, err = ParseChoice("scala")
	require.Error(t, err)
}
