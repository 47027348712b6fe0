package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dto2zod/internal/gen"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		flags runFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "convert [files...]",
		Short: "Convert DTO sources into zod schemas",
		Long: `Convert reads each file (or stdin when no file or "-" is given) and
prints the generated schemas. With --out, one <name>.ts file per input is
written to the directory instead.

Diagnostics go to stderr. The exit status is 1 when any input produced an
error-level diagnostic.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(cmd, &flags)
			if err != nil {
				return err
			}

			paths, err := inputPaths(args)
			if err != nil {
				return err
			}

			jobs, err := runBatch(cmd.Context(), paths, cmd.InOrStdin(), s, a.logger)
			if err != nil {
				return err
			}

			if out != "" {
				err = writeOutputs(jobs, out, a.logger)
			} else {
				err = printOutputs(cmd.OutOrStdout(), jobs)
			}

			if err != nil {
				return err
			}

			diags, err := a.report(cmd.ErrOrStderr(), jobs, s)
			if err != nil {
				return err
			}

			if diags.HasErrors() {
				return errFailed
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default: stdout)")

	return cmd
}

func writeOutputs(jobs []job, dir string, logger *zap.Logger) error {
	files := make([]gen.GeneratedFile, 0, len(jobs))
	seen := make(map[string]string, len(jobs))

	for _, j := range jobs {
		name := gen.OutputName(j.path)
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("inputs %s and %s both map to %s", prev, j.path, name)
		}

		seen[name] = j.path
		files = append(files, gen.GeneratedFile{Filename: name, Content: []byte(j.result.Code)})
	}

	if err := gen.WriteFiles(files, dir); err != nil {
		return err
	}

	for _, f := range files {
		logger.Debug("schema file written", zap.String("dir", dir), zap.String("file", f.Filename))
	}

	return nil
}

func printOutputs(w io.Writer, jobs []job) error {
	for i, j := range jobs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}

		if _, err := io.WriteString(w, j.result.Code); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}
