package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dto2zod/internal/diagnostic"
	"dto2zod/internal/dialect"
	"dto2zod/internal/gen"
	"dto2zod/internal/typemap"
)

const yamlConfig = `
dialect: kotlin
diagnostics: json
jobs: 4
max_depth: 32
type_overrides:
  UUID: z.string().uuid()
  java.math.BigDecimal: z.string()
output:
  header: ""
  comments: false
  indent: "    "
`

const tomlConfig = `
dialect = "kotlin"
diagnostics = "json"
jobs = 4
max_depth = 32

[type_overrides]
UUID = "z.string().uuid()"
"java.math.BigDecimal" = "z.string()"

[output]
header = ""
comments = false
indent = "    "
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_FormatsAgree(t *testing.T) {
	fromYAML, err := Load(writeConfig(t, "dto2zod.yaml", yamlConfig))
	require.NoError(t, err)

	fromTOML, err := Load(writeConfig(t, "dto2zod.toml", tomlConfig))
	require.NoError(t, err)

	if diff := cmp.Diff(fromYAML, fromTOML); diff != "" {
		t.Errorf("YAML and TOML configs differ (-yaml +toml):\n%s", diff)
	}

	opts := fromYAML.Options()
	assert.Equal(t, dialect.ChoiceKotlin, opts.Dialect)
	assert.Equal(t, 32, opts.MaxDepth)
	assert.Equal(t, "z.string().uuid()", opts.TypeOverrides["UUID"])
	assert.Empty(t, opts.Generator.Header)
	assert.False(t, opts.Generator.Comments)
	assert.True(t, opts.Generator.TypeAliases, "unset keys keep their defaults")
	assert.Equal(t, "    ", opts.Generator.Indent)
	assert.Equal(t, diagnostic.FormatJSON, fromYAML.Format())
	assert.Equal(t, 4, fromYAML.Jobs)
}

func TestLoad_YMLExtension(t *testing.T) {
	f, err := Load(writeConfig(t, "c.yml", "dialect: java\n"))
	require.NoError(t, err)
	assert.Equal(t, "java", f.Dialect)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errPart string
	}{
		{"unsupported extension", "c.json", "{}", "unsupported config file extension"},
		{"invalid yaml", "c.yaml", "dialect: [", "failed to parse config YAML"},
		{"invalid toml", "c.toml", "dialect = ", "failed to parse config TOML"},
		{"unknown toml key", "c.toml", "dialcet = \"java\"\n", "unknown config key"},
		{"bad dialect", "c.yaml", "dialect: swift\n", "unknown dialect"},
		{"bad diagnostics format", "c.toml", "diagnostics = \"sarif\"\n", "unknown diagnostics format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestDefault(t *testing.T) {
	f := Default()

	assert.Equal(t, "auto", f.Dialect)
	assert.Equal(t, diagnostic.FormatPretty, f.Format())
	assert.Equal(t, 1, f.Jobs)
	assert.Equal(t, typemap.DefaultMaxDepth, f.MaxDepth)

	opts := f.Options()
	assert.Equal(t, dialect.ChoiceAuto, opts.Dialect)
	assert.Equal(t, gen.DefaultConfig(), opts.Generator)
}
