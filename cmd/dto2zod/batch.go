package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dto2zod/internal/convert"
	"dto2zod/internal/diagnostic"
	"dto2zod/internal/dialect"
)

const stdinPath = "-"

// runFlags are the conversion flags shared by convert, check and watch.
// Unset flags fall back to the config file.
type runFlags struct {
	dialect     string
	diagnostics string
	jobs        int
	dumpModel   bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dialect, "dialect", "auto", "source dialect (auto|java|kotlin)")
	cmd.Flags().StringVar(&f.diagnostics, "diagnostics", "pretty", "diagnostics format (pretty|json|yaml|none)")
	cmd.Flags().IntVar(&f.jobs, "jobs", 1, "number of inputs converted concurrently")
	cmd.Flags().BoolVar(&f.dumpModel, "dump-model", false, "dump the extracted model to stderr")
}

// settings merges the config file with the flags that were set explicitly.
type settings struct {
	options convert.Options
	format  diagnostic.Format
	jobs    int
	dump    bool
}

func (a *app) settings(cmd *cobra.Command, f *runFlags) (settings, error) {
	s := settings{
		options: a.config.Options(),
		format:  a.config.Format(),
		jobs:    a.config.Jobs,
		dump:    f.dumpModel,
	}

	if cmd.Flags().Changed("dialect") {
		choice, err := dialect.ParseChoice(f.dialect)
		if err != nil {
			return settings{}, err
		}

		s.options.Dialect = choice
	}

	if cmd.Flags().Changed("diagnostics") {
		format, err := diagnostic.ParseFormat(f.diagnostics)
		if err != nil {
			return settings{}, err
		}

		s.format = format
	}

	if cmd.Flags().Changed("jobs") {
		if f.jobs < 1 {
			return settings{}, fmt.Errorf("--jobs must be at least 1, got %d", f.jobs)
		}

		s.jobs = f.jobs
	}

	s.options.Logger = a.logger

	return s, nil
}

// job is one converted input.
type job struct {
	path     string
	result   convert.Result
	analysis *convert.Analysis
}

// origin names the input in diagnostics.
func (j job) origin() string {
	if j.path == stdinPath {
		return "<stdin>"
	}

	return j.path
}

// inputPaths returns the paths to convert; no arguments means stdin.
func inputPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{stdinPath}, nil
	}

	stdin := 0

	for _, p := range args {
		if p == stdinPath {
			stdin++
		}
	}

	if stdin > 1 {
		return nil, fmt.Errorf("stdin (%q) can be read only once", stdinPath)
	}

	return args, nil
}

// runBatch converts every input with at most s.jobs conversions in flight.
// Results keep the order of paths.
func runBatch(ctx context.Context, paths []string, stdin io.Reader, s settings, logger *zap.Logger) ([]job, error) {
	jobs := make([]job, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.jobs))

	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			source, err := readSource(p, stdin)
			if err != nil {
				return err
			}

			logger.Debug("converting", zap.String("input", p), zap.Int("bytes", len(source)))

			jobs[i] = job{path: p, result: convert.ConvertWithOptions(source, s.options)}
			if s.dump {
				jobs[i].analysis = convert.Analyze(source, s.options)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return string(data), nil
}

// report prints the diagnostics of every job, and the model dumps when
// requested. It returns the total diagnostics.
func (a *app) report(w io.Writer, jobs []job, s settings) (diagnostic.List, error) {
	useColor, err := a.useColor(os.Stderr)
	if err != nil {
		return nil, err
	}

	var all diagnostic.List

	for _, j := range jobs {
		if j.analysis != nil {
			spew.Fdump(w, j.analysis)
		}

		all.Merge(j.result.Diagnostics)

		if len(j.result.Diagnostics) == 0 && s.format == diagnostic.FormatPretty {
			continue
		}

		if err := diagnostic.Write(w, s.format, j.origin(), j.result.Diagnostics, useColor); err != nil {
			return nil, err
		}
	}

	return all, nil
}
