package convert

import (
	"go.uber.org/zap"

	"dto2zod/internal/diagnostic"
	"dto2zod/internal/dialect"
	"dto2zod/internal/extract"
	"dto2zod/internal/gen"
	"dto2zod/internal/model"
	"dto2zod/internal/scan"
)

// Options configures a conversion.
type Options struct {
	// Dialect pins the source dialect; auto detects it per call.
	Dialect dialect.Choice
	// Generator controls the output layout.
	Generator gen.Config
	// TypeOverrides, when set, replaces Generator.TypeOverrides.
	TypeOverrides map[string]string
	// MaxDepth, when positive, replaces Generator.MaxDepth.
	MaxDepth int
	// Logger receives debug events; nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns options with dialect detection and the default
// output layout.
func DefaultOptions() Options {
	return Options{
		Dialect:   dialect.ChoiceAuto,
		Generator: gen.DefaultConfig(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

func (o Options) generatorConfig() gen.Config {
	cfg := o.Generator
	if o.TypeOverrides != nil {
		cfg.TypeOverrides = o.TypeOverrides
	}

	if o.MaxDepth > 0 {
		cfg.MaxDepth = o.MaxDepth
	}

	return cfg
}

// Result is the outcome of one conversion.
type Result struct {
	Code        string          `json:"code" yaml:"code"`
	Diagnostics diagnostic.List `json:"diagnostics" yaml:"diagnostics"`
}

// Analysis is everything the first pass learned about the input.
type Analysis struct {
	Dialect dialect.Kind
	// Forced is true when the dialect came from the options instead of
	// detection. Hints is empty in that case.
	Forced  bool
	Hints   []dialect.Hint
	Classes []model.Class
	Enums   []model.Enum
	Known   model.Known
}

// Convert converts source with the default options.
func Convert(source string) Result {
	return ConvertWithOptions(source, DefaultOptions())
}

// ConvertWithOptions converts source. It never fails: problems are
// reported as diagnostics next to the best-effort code.
func ConvertWithOptions(source string, opts Options) Result {
	log := opts.logger()
	a := Analyze(source, opts)

	code, diags := gen.NewGenerator(opts.generatorConfig()).Generate(a.Enums, a.Classes, a.Known)

	log.Debug("schemas generated",
		zap.Int("bytes", len(code)),
		zap.Int("warnings", diags.Count(diagnostic.LevelWarn)),
		zap.Int("errors", diags.Count(diagnostic.LevelError)),
	)

	return Result{Code: code, Diagnostics: diags}
}

// Analyze runs the first pass only: normalization, dialect selection and
// extraction.
func Analyze(source string, opts Options) *Analysis {
	log := opts.logger()
	text := scan.Normalize(source)

	a := &Analysis{}

	if kind, ok := opts.Dialect.Forced(); ok {
		a.Dialect, a.Forced = kind, true
	} else {
		c := dialect.Detect(text)
		a.Dialect, a.Hints = c.Kind, c.Hints
	}

	log.Debug("dialect selected",
		zap.Stringer("dialect", a.Dialect),
		zap.Bool("forced", a.Forced),
		zap.Int("hints", len(a.Hints)),
	)

	for _, h := range a.Hints {
		log.Debug("dialect hint",
			zap.Stringer("dialect", h.Dialect),
			zap.Int("score", h.Score),
			zap.String("reason", h.Reason),
			zap.Int("offset", h.Offset),
		)
	}

	ex := extract.For(a.Dialect)
	a.Enums = ex.Enums(text)
	a.Classes = ex.Classes(text)
	a.Known = model.NewKnown(a.Classes, a.Enums)

	log.Debug("declarations extracted",
		zap.Int("classes", len(a.Classes)),
		zap.Int("enums", len(a.Enums)),
	)

	return a
}
