// Package watch re-runs the repair on HTML files as they are created or
// modified under a directory tree.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vvka-141/mojifix/internal/checksum"
	"github.com/vvka-141/mojifix/pkg/mojifix"
)

// FileFixer repairs a single file in place.
type FileFixer interface {
	FixPath(path string) (mojifix.FileResult, error)
}

// Matcher decides which files are repaired and which directories are pruned.
type Matcher interface {
	Matches(name string) bool
	Excluded(dirName string) bool
}

// Watcher follows a directory tree with fsnotify and hands every matching
// file that is created or written to a FileFixer, one at a time.
type Watcher struct {
	root    string
	fixer   FileFixer
	matcher Matcher
	logger  mojifix.Logger
	fsw     *fsnotify.Watcher

	// written maps a path to the checksum of the content last written to it,
	// so the events caused by that write are not repaired a second time.
	written  map[string]string
	checksum checksum.Calculator
}

// New creates a Watcher for root. Directories are not registered until Run.
func New(root string, fixer FileFixer, matcher Matcher, logger mojifix.Logger) (*Watcher, error) {
	if fixer == nil {
		panic("fixer cannot be nil")
	}
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		root:     root,
		fixer:    fixer,
		matcher:  matcher,
		logger:   logger,
		fsw:      fsw,
		written:  make(map[string]string),
		checksum: checksum.New(),
	}, nil
}

// Run watches until ctx is canceled or the underlying watcher is closed.
// Repair failures are logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	info, err := os.Stat(w.root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", mojifix.ErrRootNotFound, w.root)
	}

	if _, err := w.addTree(w.root); err != nil {
		return err
	}
	w.logger.Info("Watching %s for changes (Ctrl+C to stop)", w.root)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			for _, path := range w.handleEvent(event) {
				if ctx.Err() != nil {
					return nil
				}
				res, err := w.fixer.FixPath(path)
				if err != nil {
					w.logger.Error("%v", err)
					continue
				}
				if res.Written {
					w.written[path] = res.ChecksumAfter
				}
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error: %v", err)
		}
	}
}

// Close releases the fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// handleEvent returns the files an event asks to repair.
// A newly created directory is added to the watch, and any matching files
// already inside it are returned, since their own events may have been missed.
func (w *Watcher) handleEvent(event fsnotify.Event) []string {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return nil
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// Removed again before we got to it.
		return nil
	}

	if info.IsDir() {
		if !event.Has(fsnotify.Create) || w.matcher.Excluded(info.Name()) {
			return nil
		}
		files, err := w.addTree(event.Name)
		if err != nil {
			w.logger.Error("failed to watch %s: %v", event.Name, err)
		}
		return files
	}

	if !w.matcher.Matches(info.Name()) || w.ownWrite(event.Name) {
		return nil
	}
	return []string{event.Name}
}

// ownWrite reports whether path still holds exactly what the last repair
// wrote to it. Once the content differs the record is dropped.
func (w *Watcher) ownWrite(path string) bool {
	sum, ok := w.written[path]
	if !ok {
		return false
	}
	data, err := os.ReadFile(path)
	if err == nil && w.checksum.Calculate(data) == sum {
		return true
	}
	delete(w.written, path)
	return false
}

// addTree registers dir and every non-excluded directory below it, and
// returns the matching files found on the way.
func (w *Watcher) addTree(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && w.matcher.Excluded(d.Name()) {
				return filepath.SkipDir
			}
			if err := w.fsw.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			w.logger.Verbose("Watching %s", path)
			return nil
		}
		if w.matcher.Matches(d.Name()) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
