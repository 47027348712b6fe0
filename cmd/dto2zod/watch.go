package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchDebounce is how long a file must stay quiet before it is reconverted.
const watchDebounce = 200 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var (
		flags runFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "watch <files...> -o <dir>",
		Short: "Reconvert sources whenever they change",
		Long: `Watch converts every file once, then rewrites its <name>.ts in the output
directory each time the file changes. It stops on SIGINT or SIGTERM.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("watch requires --out")
			}

			for _, p := range args {
				if p == stdinPath {
					return errors.New("watch cannot read stdin")
				}
			}

			s, err := a.settings(cmd, &flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := &watcher{
				app:      a,
				settings: s,
				out:      out,
				diagOut:  cmd.ErrOrStderr(),
				debounce: watchDebounce,
			}

			return w.run(ctx, args)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory")

	return cmd
}

// watcher reconverts a fixed set of files on change.
type watcher struct {
	app      *app
	settings settings
	out      string
	diagOut  io.Writer
	debounce time.Duration
}

// run converts every path once and then watches until ctx is done.
// Parent directories are watched so that editors replacing a file on save
// are still seen.
func (w *watcher) run(ctx context.Context, paths []string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}

		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	for p := range targets {
		w.convert(ctx, p)
	}

	w.app.logger.Info("watching for changes", zap.Int("files", len(targets)), zap.String("out", w.out))

	return w.loop(ctx, fsw, targets)
}

func (w *watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, targets map[string]struct{}) error {
	pending := make(map[string]time.Time)

	ticker := time.NewTicker(max(w.debounce/4, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			name := filepath.Clean(event.Name)
			if _, watched := targets[name]; !watched {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending[name] = time.Now()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			w.app.logger.Warn("file watcher error", zap.Error(err))
		case now := <-ticker.C:
			for p, changed := range pending {
				if now.Sub(changed) >= w.debounce {
					delete(pending, p)
					w.convert(ctx, p)
				}
			}
		}
	}
}

// convert reconverts one file. Failures are logged and the watch goes on.
func (w *watcher) convert(ctx context.Context, path string) {
	logger := w.app.logger.With(zap.String("input", path))

	jobs, err := runBatch(ctx, []string{path}, nil, w.settings, logger)
	if err != nil {
		logger.Warn("conversion failed", zap.Error(err))
		return
	}

	if err := writeOutputs(jobs, w.out, logger); err != nil {
		logger.Warn("writing schema failed", zap.Error(err))
		return
	}

	if _, err := w.app.report(w.diagOut, jobs, w.settings); err != nil {
		logger.Warn("reporting diagnostics failed", zap.Error(err))
	}

	logger.Debug("schema updated")
}
