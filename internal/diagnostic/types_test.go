package diagnostic

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "unlocated",
			diag:     Warn(CodeUnknownType, "Unknown type 'Foo' → z.unknown()"),
			expected: "[unknown_type] Unknown type 'Foo' → z.unknown()",
		},
		{
			name:     "located",
			diag:     Warn(CodeUnknownType, "Unknown type 'Foo' → z.unknown()").At("User", "foo"),
			expected: "[User] foo: [unknown_type] Unknown type 'Foo' → z.unknown()",
		},
		{
			name: "with suggestions",
			diag: Diagnostic{
				Level:       LevelWarn,
				Message:     "Unknown type 'Adress' → z.unknown()",
				Suggestions: []string{"Address"},
			},
			expected: "Unknown type 'Adress' → z.unknown() (did you mean 'Address'?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestList_Counting(t *testing.T) {
	var l List

	assert.False(t, l.HasErrors())
	assert.False(t, l.HasWarnings())
	require.NoError(t, l.Err())

	l.AddWarn(CodeUnknownType, "w")
	l.AddError(CodeTypeNestedTooDeeply, "e")

	assert.True(t, l.HasErrors())
	assert.True(t, l.HasWarnings())
	assert.Equal(t, 1, l.Count(LevelWarn))
	assert.Equal(t, 1, l.Count(LevelError))
	require.EqualError(t, l.Err(), "[type_nested_too_deeply] e")
}

func TestList_LocatedDoesNotMutate(t *testing.T) {
	l := List{Warn(CodeUnknownType, "x")}

	located := l.Located("C", "f")

	require.Len(t, located, 1)
	assert.Nil(t, l[0].Where)
	assert.Equal(t, &Location{Class: "C", Field: "f"}, located[0].Where)
	assert.Nil(t, List(nil).Located("C", "f"))
}

func TestWriteJSON_Shape(t *testing.T) {
	l := List{Warn(CodeUnsupportedMapKey, "Map key 'Integer' not supported → string keys used").At("M", "weird")}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, l))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "warn", decoded[0]["level"])
	assert.Equal(t, map[string]any{"class": "M", "field": "weird"}, decoded[0]["where"])
	assert.NotContains(t, decoded[0], "suggestions")
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteYAML_LevelAsText(t *testing.T) {
	l := List{Error(CodeTypeNestedTooDeeply, "Type nested too deeply: 'List<...>'")}

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, l))
	assert.Contains(t, buf.String(), "level: error")

	var back List
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, LevelError, back[0].Level)
}

func TestWritePretty_NoColor(t *testing.T) {
	l := List{Warn(CodeUnknownType, "Unknown type 'Foo' → z.unknown()").At("X", "foo")}

	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, "in.java", l, false))
	assert.Equal(t, "in.java: warn: [X] foo: [unknown_type] Unknown type 'Foo' → z.unknown()\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("sarif")
	require.Error(t, err)
}
