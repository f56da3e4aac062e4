package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/depscope/depscope/cmd/cli"
	"github.com/depscope/depscope/cycles"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
}

func watchAndReanalyze(ctx context.Context, cmd *cobra.Command, app *cli.App) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, app.Root); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	// Changes are coalesced per file across the debounce window, so a
	// save that fires Write+Chmod re-analyzes once.
	var mu sync.Mutex
	pending := make(map[string]fsnotify.Op)
	var debounceTimer *time.Timer

	flush := func() {
		mu.Lock()
		changes := pending
		pending = make(map[string]fsnotify.Op)
		mu.Unlock()
		applyChanges(cmd, app, changes)
	}

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(app, event) {
				if event.Has(fsnotify.Create) {
					addIfDirectory(watcher, event.Name)
				}
				continue
			}

			mu.Lock()
			pending[event.Name] |= event.Op
			mu.Unlock()

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, flush)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			app.Log.WithError(err).Warn("watcher error")
		}
	}
}

func applyChanges(cmd *cobra.Command, app *cli.App, changes map[string]fsnotify.Op) {
	paths := make([]string, 0, len(changes))
	for path := range changes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		op := changes[path]
		if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			app.Analyzer.RemoveFile(path)
			fmt.Fprintf(cmd.OutOrStdout(), "removed  %s\n", path)
			continue
		}

		app.Analyzer.InvalidateFile(path)
		if _, err := app.Analyzer.AnalyzeFile(path); err != nil {
			app.Log.WithError(err).WithField("file", path).Warn("re-analysis failed")
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "analyzed %s\n", path)
	}

	reportGraphState(cmd, app)
}

func reportGraphState(cmd *cobra.Command, app *cli.App) {
	snapshot := app.Analyzer.GraphSnapshot()
	line := fmt.Sprintf("%d files, %d dependencies", snapshot.Metadata.NodeCount, snapshot.Metadata.EdgeCount)

	detected, err := app.Analyzer.DetectCycles(cycles.DefaultOptions())
	if err != nil {
		app.Log.WithError(err).Warn("cycle detection failed")
	} else if len(detected) == 1 {
		line += ", 1 circular dependency"
	} else if len(detected) > 1 {
		line += fmt.Sprintf(", %d circular dependencies", len(detected))
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)
}

func isRelevantChange(app *cli.App, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return app.Dispatcher.Supports(filepath.Ext(event.Name))
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		_ = addWatchDirs(watcher, path)
	}
}
