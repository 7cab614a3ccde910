package mergeconflict

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Iron-Ham/conflictpane/internal/logging"
	"github.com/gobwas/glob"
)

// ErrNotRepository is returned when the loader directory is not inside a
// git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Runner executes git in a directory and returns its stdout.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// ExecRunner runs the git binary found on PATH.
type ExecRunner struct{}

// Run executes git with args in dir.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "not a git repository") {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotRepository)
		}
		return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}
	return out, nil
}

// Loader reads the conflicts of the repository containing Dir. Dir may be
// any directory inside the work tree.
type Loader struct {
	dir    string
	runner Runner
	ignore []glob.Glob
	logger *logging.Logger

	mu   sync.Mutex
	root string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRunner replaces the git runner.
func WithRunner(r Runner) LoaderOption {
	return func(l *Loader) {
		if r != nil {
			l.runner = r
		}
	}
}

// WithLogger sets the loader logger.
func WithLogger(logger *logging.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a loader for dir. ignore holds glob patterns, with /
// as separator, for paths to leave out of the result.
func NewLoader(dir string, ignore []string, opts ...LoaderOption) (*Loader, error) {
	l := &Loader{
		dir:    dir,
		runner: ExecRunner{},
		logger: logging.NopLogger(),
	}

	for _, pattern := range ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		l.ignore = append(l.ignore, g)
	}

	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Dir returns the directory the loader was created for.
func (l *Loader) Dir() string {
	return l.dir
}

// Root returns the top level of the work tree containing Dir. Porcelain
// paths are relative to it. The result is cached after the first success.
func (l *Loader) Root(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.root != "" {
		return l.root, nil
	}

	out, err := l.runner.Run(ctx, l.dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("locating work tree: %w", err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", fmt.Errorf("%s: %w", l.dir, ErrNotRepository)
	}
	l.root = filepath.FromSlash(root)
	return l.root, nil
}

// GitDir returns the absolute git directory of the repository containing
// Dir. For a linked worktree this is its private directory, where its index
// and merge state live.
func (l *Loader) GitDir(ctx context.Context) (string, error) {
	out, err := l.runner.Run(ctx, l.dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("locating git directory: %w", err)
	}
	gitDir := strings.TrimSpace(string(out))
	if gitDir == "" {
		return "", fmt.Errorf("%s: %w", l.dir, ErrNotRepository)
	}
	return filepath.FromSlash(gitDir), nil
}

// Load returns the current conflicts sorted by path.
func (l *Loader) Load(ctx context.Context) ([]MergeConflict, error) {
	root, err := l.Root(ctx)
	if err != nil {
		return nil, err
	}

	out, err := l.runner.Run(ctx, root, "status", "--porcelain=v1", "-z", "--untracked-files=no")
	if err != nil {
		return nil, fmt.Errorf("reading git status: %w", err)
	}

	var conflicts []MergeConflict
	for _, e := range ParsePorcelain(out) {
		if !e.Unmerged() || l.ignored(e.Path) {
			continue
		}
		c := e.Conflict()
		c.FileStatus = l.fileStatus(ctx, root, c)
		conflicts = append(conflicts, c)
	}

	slices.SortFunc(conflicts, func(a, b MergeConflict) int {
		return strings.Compare(a.Path, b.Path)
	})

	l.logger.Debug("conflicts loaded", "count", len(conflicts))
	return conflicts, nil
}

// ignored reports whether path matches an ignore pattern.
func (l *Loader) ignored(path string) bool {
	for _, g := range l.ignore {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// fileStatus classifies the working copy of a conflicted file. Paths are
// relative to root.
func (l *Loader) fileStatus(ctx context.Context, root string, c MergeConflict) string {
	current, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(c.Path)))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("reading conflicted file", "path", c.Path, "error", err.Error())
		}
		return StatusDeleted
	}

	// Stage 2 holds our version; it is missing when we deleted the file.
	if c.OursStatus != SideDeleted {
		ours, err := l.runner.Run(ctx, root, "show", ":2:"+c.Path)
		if err == nil && bytes.Equal(ours, current) {
			return StatusEquivalent
		}
	}

	if c.OursStatus == SideAdded {
		return StatusAdded
	}
	return StatusModified
}
