// Package conflict watches a repository's git directory and signals when the
// set of merge conflicts may have changed.
package conflict

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Iron-Ham/conflictpane/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses bursts of git writes into one notification.
const DefaultDebounce = 100 * time.Millisecond

// watchedFiles are the git-dir entries whose changes can alter the
// conflict set.
var watchedFiles = map[string]bool{
	"index":            true,
	"MERGE_HEAD":       true,
	"CHERRY_PICK_HEAD": true,
	"REBASE_HEAD":      true,
	"AUTO_MERGE":       true,
}

// Watcher reports changes to merge state in one repository.
type Watcher struct {
	watcher  *fsnotify.Watcher
	gitDir   string
	debounce time.Duration
	logger   *logging.Logger

	mu       sync.RWMutex
	onChange func()

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// New creates a watcher for a repository's git directory, as reported by
// `git rev-parse --absolute-git-dir`. For a linked worktree that is its
// private directory under the main repository's .git.
func New(gitDir string, debounce time.Duration, logger *logging.Logger) (*Watcher, error) {
	info, err := os.Stat(gitDir)
	if err != nil {
		return nil, fmt.Errorf("locating git directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", gitDir)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fw.Add(gitDir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", gitDir, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	return &Watcher{
		watcher:  fw,
		gitDir:   gitDir,
		debounce: debounce,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetChangeCallback sets the function called after a debounced change.
// It runs on the watcher goroutine.
func (w *Watcher) SetChangeCallback(cb func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = cb
}

// GitDir returns the watched directory.
func (w *Watcher) GitDir() string {
	return w.gitDir
}

// Start begins watching. Calling it again has no effect.
func (w *Watcher) Start() {
	w.startOnce.Do(func() {
		go w.watchLoop()
	})
}

// Stop ends watching and releases the underlying watcher. It is safe to
// call more than once, with or without Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
	w.startOnce.Do(func() { close(w.doneCh) })
	<-w.doneCh
}

// Relevant reports whether a path inside the git directory affects the
// conflict set.
func Relevant(name string) bool {
	base := filepath.Base(name)
	return watchedFiles[base]
}

func (w *Watcher) watchLoop() {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-w.stopCh:
			timer.Stop()
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !Relevant(ev.Name) {
				continue
			}
			pending = true
			timer.Reset(w.debounce)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			w.notify()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err.Error())
		}
	}
}

func (w *Watcher) notify() {
	w.mu.RLock()
	cb := w.onChange
	w.mu.RUnlock()

	w.logger.Debug("merge state changed", "git_dir", w.gitDir)
	if cb != nil {
		cb()
	}
}
