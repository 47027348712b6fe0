// Package main provides the CLI entrypoint for dto2zod.
//
// dto2zod converts Java-like and Kotlin-like DTO declarations into zod
// schemas:
//   - convert: print or write schema files for the given sources
//   - check: report diagnostics only
//   - watch: reconvert sources whenever they change
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"dto2zod/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// errFailed reports a run whose diagnostics were already printed.
var errFailed = errors.New("conversion reported errors")

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	color      string

	logger *zap.Logger
	config *config.File
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dto2zod",
		Short: "Convert Java/Kotlin DTO declarations into zod schemas",
		Long: `dto2zod reads Java-like or Kotlin-like class and enum declarations and
prints the equivalent zod schemas with inferred TypeScript types.

The dialect is detected per input unless --dialect pins it. Unsupported
types degrade to z.unknown() and are reported as diagnostics.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "auto", "colorize diagnostics (auto|on|off)")

	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	zcfg := zap.NewProductionConfig()
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger = logger

	if a.configPath == "" {
		a.config = config.Default()
		return nil
	}

	a.config, err = config.Load(a.configPath)
	if err != nil {
		return err
	}

	a.logger.Debug("config loaded", zap.String("path", a.configPath))

	return nil
}

// useColor resolves the --color flag for output written to f.
func (a *app) useColor(f *os.File) (bool, error) {
	switch a.color {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return !color.NoColor && isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (auto|on|off)", a.color)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "dto2zod:", err)
		}

		os.Exit(1)
	}
}
