// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/routedoc/routedoc/internal/scan"
	"github.com/routedoc/routedoc/internal/scanner"
)

var (
	watchDebounce int
	watchMerge    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Watch for file changes and regenerate documentation",
	Long: `Watch for file changes and automatically regenerate the documentation.

This command monitors the route tree and triggers a regeneration when
handler files are created, modified or removed. It's useful during
development to keep your API documentation in sync with your code.

Example:
  routedoc watch                          # Watch current directory
  routedoc watch ./web                    # Watch another project
  routedoc watch --debounce 1000          # Wait 1s before regenerating`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds (default from config: 300)")
	watchCmd.Flags().BoolVar(&watchMerge, "merge", false, "keep hand edits from the existing JSON documentation")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}
	if watchMerge {
		cfg.Generation.Merge = true
	}

	printVerbose("Watch configuration:")
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)
	printVerbose("  Root: %s", cfg.Root)

	logger := newLogger()
	g := &generation{cfg: cfg, logger: logger, merge: cfg.Generation.Merge}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial generation; a missing root is fatal, anything else is retried on change.
	regenerate := func(ctx context.Context) error {
		n, err := g.run(ctx)
		if err != nil {
			if !errors.Is(err, scan.ErrRootNotFound) {
				printError("%v", err)
			}
			return err
		}
		printInfo("[%s] Documented %d endpoints in %s", time.Now().Format("15:04:05"), n, cfg.Output)
		return nil
	}
	if err := regenerate(ctx); errors.Is(err, scan.ErrRootNotFound) {
		return err
	}

	w, err := newRouteWatcher(cfg.Root, cfg.Ignore, time.Duration(cfg.Watch.Debounce)*time.Millisecond, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	printInfo("Watching for changes in: %s", cfg.Root)
	printInfo("Press Ctrl+C to stop")

	return w.Run(ctx, func(ctx context.Context) {
		_ = regenerate(ctx)
	})
}

// routeWatcher watches a directory tree and coalesces bursts of events.
type routeWatcher struct {
	fs       *fsnotify.Watcher
	root     string
	ignore   []string
	debounce time.Duration
	logger   *slog.Logger
}

func newRouteWatcher(root string, ignore []string, debounce time.Duration, logger *slog.Logger) (*routeWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &routeWatcher{
		fs:       fw,
		root:     root,
		ignore:   ignore,
		debounce: debounce,
		logger:   logger,
	}
	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// addTree watches dir and every non-ignored directory below it.
func (w *routeWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if rel, relErr := filepath.Rel(w.root, p); relErr == nil && scanner.IgnoresDir(filepath.ToSlash(rel), w.ignore) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}

// relevant reports whether an event can change the documentation.
func (w *routeWatcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if scanner.Ignores(rel, w.ignore) {
		return false
	}
	// Removed or renamed directories cannot be stat'ed; treat them as relevant.
	if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
		return !scanner.IgnoresDir(rel, w.ignore)
	}
	return ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) || scanner.IsHandlerFile(scanner.RoutePath(w.root, rel))
}

// Run calls onChange once per debounced burst of relevant events until ctx
// is cancelled.
func (w *routeWatcher) Run(ctx context.Context, onChange func(context.Context)) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "dir", ev.Name, "err", err)
					}
				}
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)

		case <-fire:
			fire = nil
			onChange(ctx)
		}
	}
}

// Close stops watching.
func (w *routeWatcher) Close() error {
	return w.fs.Close()
}
