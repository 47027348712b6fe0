package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dto2zod/internal/convert"
	"dto2zod/internal/diagnostic"
	"dto2zod/internal/dialect"
	"dto2zod/internal/gen"
	"dto2zod/internal/typemap"
)

// File is the on-disk configuration. The same keys are used in YAML and
// TOML files.
type File struct {
	// Dialect is auto, java or kotlin.
	Dialect string `yaml:"dialect" toml:"dialect"`
	// Diagnostics is the diagnostics format: pretty, json, yaml or none.
	Diagnostics string `yaml:"diagnostics" toml:"diagnostics"`
	// Jobs bounds concurrent conversions in batch mode.
	Jobs int `yaml:"jobs" toml:"jobs"`
	// MaxDepth bounds generic nesting during type mapping.
	MaxDepth int `yaml:"max_depth" toml:"max_depth"`
	// TypeOverrides maps type names to verbatim schema expressions.
	TypeOverrides map[string]string `yaml:"type_overrides" toml:"type_overrides"`
	Output        Output            `yaml:"output" toml:"output"`
}

// Output controls the generated code layout. Pointer fields distinguish
// "unset" from an explicit false or empty value.
type Output struct {
	Header      *string `yaml:"header" toml:"header"`
	Comments    *bool   `yaml:"comments" toml:"comments"`
	TypeAliases *bool   `yaml:"type_aliases" toml:"type_aliases"`
	Indent      string  `yaml:"indent" toml:"indent"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// Load reads a configuration file, picking the format from its extension
// (.yaml/.yml or .toml).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (.yaml, .yml, .toml)", ext)
	}
}

// ParseYAML parses YAML data into a File.
func ParseYAML(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return finish(&f)
}

// ParseTOML parses TOML data into a File.
func ParseTOML(data []byte) (*File, error) {
	var f File

	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	return finish(&f)
}

func finish(f *File) (*File, error) {
	applyDefaults(f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(f *File) {
	if f.Dialect == "" {
		f.Dialect = string(dialect.ChoiceAuto)
	}

	if f.Diagnostics == "" {
		f.Diagnostics = string(diagnostic.FormatPretty)
	}

	if f.Jobs <= 0 {
		f.Jobs = 1
	}

	if f.MaxDepth <= 0 {
		f.MaxDepth = typemap.DefaultMaxDepth
	}

	defaults := gen.DefaultConfig()

	if f.Output.Header == nil {
		f.Output.Header = &defaults.Header
	}

	if f.Output.Comments == nil {
		f.Output.Comments = &defaults.Comments
	}

	if f.Output.TypeAliases == nil {
		f.Output.TypeAliases = &defaults.TypeAliases
	}

	if f.Output.Indent == "" {
		f.Output.Indent = defaults.Indent
	}
}

// Validate checks the enumerated settings.
func (f *File) Validate() error {
	if _, err := dialect.ParseChoice(f.Dialect); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if _, err := diagnostic.ParseFormat(f.Diagnostics); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Options converts the configuration into conversion options. The file
// must have been validated.
func (f *File) Options() convert.Options {
	choice, _ := dialect.ParseChoice(f.Dialect)

	opts := convert.DefaultOptions()
	opts.Dialect = choice
	opts.MaxDepth = f.MaxDepth
	opts.TypeOverrides = f.TypeOverrides
	opts.Generator.Indent = f.Output.Indent

	if f.Output.Header != nil {
		opts.Generator.Header = *f.Output.Header
	}

	if f.Output.Comments != nil {
		opts.Generator.Comments = *f.Output.Comments
	}

	if f.Output.TypeAliases != nil {
		opts.Generator.TypeAliases = *f.Output.TypeAliases
	}

	return opts
}

// Format returns the configured diagnostics format.
func (f *File) Format() diagnostic.Format {
	format, err := diagnostic.ParseFormat(f.Diagnostics)
	if err != nil {
		return diagnostic.FormatPretty
	}

	return format
}
