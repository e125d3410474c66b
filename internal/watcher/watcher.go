// Package watcher reports changes to files matching a set of glob patterns.
package watcher

import (
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Event is a change to a matching file.
type Event struct {
	Path    string
	Removed bool
}

// Watcher watches the directories holding matching files so that editors
// which replace a file on save (write tmp, rename) are still observed.
type Watcher struct {
	fsw      *fsnotify.Watcher
	Events   chan Event
	patterns []string
	dirs     []string
	logger   *zap.Logger
}

// New expands patterns and watches every directory containing a match.
// A pattern with no matches still has its base directory watched, so
// files created later are picked up.
func New(patterns []string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		Events: make(chan Event, 64),
		logger: logger,
	}

	seen := map[string]bool{}
	addDir := func(dir string) {
		abs, err := filepath.Abs(dir)
		if err != nil || seen[abs] {
			return
		}
		seen[abs] = true
		if err := fsw.Add(abs); err != nil {
			logger.Warn("cannot watch directory", zap.String("dir", abs), zap.Error(err))
			return
		}
		w.dirs = append(w.dirs, abs)
	}

	for _, pattern := range patterns {
		abs, err := filepath.Abs(pattern)
		if err != nil {
			continue
		}
		w.patterns = append(w.patterns, filepath.ToSlash(abs))

		base, _ := doublestar.SplitPattern(filepath.ToSlash(abs))
		addDir(filepath.FromSlash(base))

		matches, err := Expand(abs)
		if err != nil {
			logger.Warn("failed to expand pattern", zap.String("pattern", pattern), zap.Error(err))
			continue
		}
		for _, m := range matches {
			addDir(filepath.Dir(m))
		}
	}

	return w, nil
}

// Start forwards matching events until ctx is cancelled. Events is closed
// on return.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer close(w.Events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.Matches(ev.Name) {
				continue
			}
			var out Event
			switch {
			case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
				out = Event{Path: ev.Name}
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				out = Event{Path: ev.Name, Removed: true}
			default:
				continue
			}
			select {
			case w.Events <- out:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// Matches reports whether path matches any watched pattern.
func (w *Watcher) Matches(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	abs = filepath.ToSlash(abs)
	for _, p := range w.patterns {
		if ok, _ := doublestar.Match(p, abs); ok {
			return true
		}
	}
	return false
}

// Dirs returns the watched directories.
func (w *Watcher) Dirs() []string {
	return w.dirs
}

// Expand resolves a glob pattern (including ** segments) to regular files.
func Expand(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
}
