package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputName(t *testing.T) {
	assert.Equal(t, "User.ts", OutputName("dto/User.java"))
	assert.Equal(t, "Order.ts", OutputName("/abs/Order.kt"))
	assert.Equal(t, "plain.ts", OutputName("plain"))
	assert.Equal(t, "schemas.ts", OutputName("-"))
	assert.Equal(t, "schemas.ts", OutputName(""))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	files := []GeneratedFile{
		{Filename: "A.ts", Content: []byte("a\n")},
		{Filename: "B.ts", Content: []byte("b\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}
}
