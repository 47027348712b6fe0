package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dto2zod/internal/diagnostic"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		flags  runFlags
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report conversion diagnostics without writing schemas",
		Long: `Check converts every input and prints only the diagnostics. The exit
status is 1 when any error-level diagnostic was reported, or any
diagnostic at all with --strict.`,
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

			diags, err := a.report(cmd.ErrOrStderr(), jobs, s)
			if err != nil {
				return err
			}

			if diags.HasErrors() || (strict && len(diags) > 0) {
				return errFailed
			}

			if s.format == diagnostic.FormatPretty {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d input(s) OK, %d warning(s)\n",
					len(jobs), diags.Count(diagnostic.LevelWarn))
			}

			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")

	return cmd
}
