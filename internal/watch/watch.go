// Package watch re-runs a refresh callback when files in a repository change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thiagokokada/gitporcelain/internal/debounce"
)

// maxWatchedDirs caps the recursive registration; inotify watches are a
// limited per-user resource.
const maxWatchedDirs = 4096

type RefreshFunc func(ctx context.Context) error

// Run calls refresh once, then again after each burst of filesystem events
// has been quiet for delay. It returns when ctx is done or the first refresh
// fails; later refresh errors are logged and watching continues.
func Run(ctx context.Context, root string, delay time.Duration, refresh RefreshFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Error("watcher close", slog.Any("error", err))
		}
	}()
	for _, path := range watchPaths(root) {
		slog.Debug("adding path to FS watcher", slog.String("path", path))
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	d, changed := debounce.Signal(delay)
	defer d.Stop()

	if err := refresh(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if shouldIgnoreWatchPath(ev.Name) {
				continue
			}
			slog.Debug("fsnotify event",
				slog.String("op", ev.Op.String()),
				slog.String("path", ev.Name),
			)
			if ev.Op&fsnotify.Create != 0 {
				addIfDir(watcher, ev.Name)
			}
			d.Trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("fsnotify error", slog.Any("error", err))
		case <-changed:
			if err := refresh(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				slog.Error("refresh failed", slog.Any("error", err))
			}
		}
	}
}

// watchPaths lists the worktree directories (excluding .git internals) and
// the git dir itself, where index and HEAD updates land.
func watchPaths(root string) []string {
	if root == "" {
		return nil
	}
	var paths []string
	gitDir := filepath.Join(root, ".git")
	if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
		paths = append(paths, gitDir)
	}
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if entry.Name() == ".git" {
			return filepath.SkipDir
		}
		if len(paths) >= maxWatchedDirs {
			return filepath.SkipAll
		}
		paths = append(paths, path)
		return nil
	})
	return paths
}

func addIfDir(w *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || filepath.Base(path) == ".git" {
		return
	}
	if err := w.Add(path); err != nil {
		slog.Debug("watch new directory", slog.String("path", path), slog.Any("error", err))
	}
}

func shouldIgnoreWatchPath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".lock" || ext == ".ipc" || ext == ".swp"
}
