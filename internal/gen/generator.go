package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"dto2zod/internal/common"
	"dto2zod/internal/diagnostic"
	"dto2zod/internal/model"
	"dto2zod/internal/typemap"
)

// DefaultHeader is the import line placed at the top of generated code.
const DefaultHeader = "import { z } from 'zod'"

// Config holds configuration for schema generation.
type Config struct {
	// Header is the first line of the output; empty disables it.
	Header string
	// Comments enables a "// Name" line before every schema.
	Comments bool
	// TypeAliases enables "export type Name = z.infer<...>" after every schema.
	TypeAliases bool
	// Indent is the prefix of every object property line.
	Indent string
	// TypeOverrides maps type names to verbatim schema expressions.
	TypeOverrides map[string]string
	// MaxDepth bounds generic nesting during type mapping; zero means
	// typemap.DefaultMaxDepth.
	MaxDepth int
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Header:      DefaultHeader,
		Comments:    true,
		TypeAliases: true,
		Indent:      "  ",
		MaxDepth:    typemap.DefaultMaxDepth,
	}
}

// Generator renders schemas for one conversion.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// schemaData is one rendered schema.
type schemaData struct {
	Name string
	Body string
}

type templateData struct {
	Header      string
	Comments    bool
	TypeAliases bool
	Schemas     []schemaData
}

var schemasTemplate = template.Must(template.New("schemas").Parse(
	`{{if .Header}}{{.Header}}
{{end}}{{range $i, $s := .Schemas}}{{if or $i $.Header}}
{{end}}{{if $.Comments}}// {{$s.Name}}
{{end}}export const {{$s.Name}}Schema = {{$s.Body}}
{{if $.TypeAliases}}export type {{$s.Name}} = z.infer<typeof {{$s.Name}}Schema>
{{end}}{{end}}`))

// Generate renders all enums followed by all classes. Type mapping
// diagnostics are returned located at the class and declared field name,
// in emission order.
func (g *Generator) Generate(enums []model.Enum, classes []model.Class, known model.Known) (string, diagnostic.List) {
	mapper := typemap.New(known)
	mapper.Overrides = g.config.TypeOverrides
	mapper.MaxDepth = g.config.MaxDepth

	data := templateData{
		Header:      g.config.Header,
		Comments:    g.config.Comments,
		TypeAliases: g.config.TypeAliases,
		Schemas:     make([]schemaData, 0, len(enums)+len(classes)),
	}

	for _, e := range enums {
		data.Schemas = append(data.Schemas, schemaData{Name: e.Name, Body: enumBody(e)})
	}

	var diags diagnostic.List

	for _, c := range classes {
		lines := make([]string, 0, len(c.Fields))

		for _, f := range c.Fields {
			res := mapper.Map(f.Type)
			diags.Merge(res.Diagnostics.Located(c.Name, f.Name))

			lines = append(lines, g.config.Indent+QuoteKey(f.Key())+": "+fieldExpr(res.Expr, f))
		}

		data.Schemas = append(data.Schemas, schemaData{Name: c.Name, Body: objectBody(lines)})
	}

	var buf bytes.Buffer
	if err := schemasTemplate.Execute(&buf, data); err != nil {
		// unreachable: data holds only strings and bools
		panic(fmt.Sprintf("executing schemas template: %v", err))
	}

	return buf.String(), diags
}

func enumBody(e model.Enum) string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = quoteString(v)
	}

	return "z.enum([" + strings.Join(quoted, ", ") + "])"
}

func objectBody(lines []string) string {
	if common.IsEmpty(lines) {
		return "z.object({})"
	}

	return "z.object({\n" + strings.Join(lines, ",\n") + "\n})"
}

// fieldExpr applies annotation refinements and optionality to a mapped
// field type.
func fieldExpr(expr typemap.Expr, f model.Field) string {
	text := Refine(expr, f.Annotations)

	if f.Optional || f.Annotations.Nullable {
		text = MakeOptional(text)
	}

	return text
}
