package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects how diagnostics are rendered.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatNone   Format = "none"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPretty, FormatJSON, FormatYAML, FormatNone:
		return f, nil
	default:
		return "", fmt.Errorf("unknown diagnostics format %q (pretty|json|yaml|none)", s)
	}
}

// Write renders diagnostics in the given format. origin names the input
// (a file path or "<stdin>") and is only used by the pretty format.
func Write(w io.Writer, f Format, origin string, diags List, useColor bool) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, diags)
	case FormatYAML:
		return WriteYAML(w, diags)
	case FormatNone:
		return nil
	default:
		return WritePretty(w, origin, diags, useColor)
	}
}

// WritePretty prints one line per diagnostic:
//
//	<origin>: <level>: [Class] field: [code] message
func WritePretty(w io.Writer, origin string, diags List, useColor bool) error {
	warnLabel := color.New(color.FgYellow, color.Bold)
	errLabel := color.New(color.FgRed, color.Bold)
	where := color.New(color.Faint)

	for _, c := range []*color.Color{warnLabel, errLabel, where} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, d := range diags {
		label := warnLabel
		if d.Level == LevelError {
			label = errLabel
		}

		_, err := fmt.Fprintf(w, "%s: %s: %s\n",
			where.Sprint(origin), label.Sprint(d.Level.String()), d.String())
		if err != nil {
			return fmt.Errorf("writing diagnostic: %w", err)
		}
	}

	return nil
}

// WriteJSON writes the diagnostics as an indented JSON array.
func WriteJSON(w io.Writer, diags List) error {
	if diags == nil {
		diags = List{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(diags); err != nil {
		return fmt.Errorf("encoding diagnostics as JSON: %w", err)
	}

	return nil
}

// WriteYAML writes the diagnostics as a YAML sequence.
func WriteYAML(w io.Writer, diags List) error {
	if diags == nil {
		diags = List{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(diags); err != nil {
		return fmt.Errorf("encoding diagnostics as YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing YAML encoder: %w", err)
	}

	return nil
}
