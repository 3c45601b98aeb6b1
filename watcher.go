package main

import (
	"errors"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// FSChangeMsg is sent when one of the input documents changes on disk
type FSChangeMsg struct {
	time time.Time
}

// Watcher watches the input documents for changes so the comparison can
// be re-run on edit.
type Watcher struct {
	watcher    *fsnotify.Watcher
	paths      map[string]struct{}
	isWatching bool
}

// NewWatcher creates a watcher over the given files. Directories are
// watched rather than the files themselves so editors that replace
// files on save are still observed.
func NewWatcher(paths ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsWatcher,
		paths:   make(map[string]struct{}, len(paths)),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = fsWatcher.Close()
			return nil, err
		}
		w.paths[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return nil, err
		}
	}

	w.isWatching = true
	return w, nil
}

// Wait blocks until one of the watched files changes.
func (w *Watcher) Wait() error {
	if !w.isWatching {
		return errors.New("watcher is not running")
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if !w.isRelevant(event) {
				continue
			}
			// Small debounce to absorb rapid write bursts
			time.Sleep(50 * time.Millisecond)
			return nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			return err
		}
	}
}

// WaitForChange waits for the next change as a bubbletea command.
func (w *Watcher) WaitForChange() tea.Cmd {
	return func() tea.Msg {
		if err := w.Wait(); err != nil {
			return errMsg{err}
		}
		return FSChangeMsg{time: time.Now()}
	}
}

func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.paths[abs]
	return ok
}

// Close closes the file system watcher
func (w *Watcher) Close() error {
	if !w.isWatching {
		return nil
	}

	w.isWatching = false
	return w.watcher.Close()
}
