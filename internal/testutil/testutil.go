// Package testutil provides git repository fixtures for conflictpane tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// SetupTestRepo creates a temporary git repository for testing.
// Returns the path to the repository. The repository is automatically
// cleaned up when the test completes.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	if err := runGit(dir, "init"); err != nil {
		t.Fatalf("failed to init git repo: %v", err)
	}
	if err := runGit(dir, "config", "user.email", "test@conflictpane.dev"); err != nil {
		t.Fatalf("failed to configure git email: %v", err)
	}
	if err := runGit(dir, "config", "user.name", "Conflictpane Test"); err != nil {
		t.Fatalf("failed to configure git name: %v", err)
	}

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Repository\n"), 0644); err != nil {
		t.Fatalf("failed to create README: %v", err)
	}
	if err := runGit(dir, "add", "."); err != nil {
		t.Fatalf("failed to stage files: %v", err)
	}
	if err := runGit(dir, "commit", "-m", "Initial commit"); err != nil {
		t.Fatalf("failed to create initial commit: %v", err)
	}

	// Some systems default to master
	if err := runGit(dir, "branch", "-M", "main"); err != nil {
		t.Fatalf("failed to rename branch to main: %v", err)
	}

	return dir
}

// CommitFiles writes files, stages them and commits. An empty content
// removes the file from the repository instead.
func CommitFiles(t *testing.T, repoDir string, files map[string]string, message string) {
	t.Helper()

	for path, content := range files {
		if content == "" {
			if err := runGit(repoDir, "rm", "-q", path); err != nil {
				t.Fatalf("failed to remove %s: %v", path, err)
			}
			continue
		}
		WriteFile(t, repoDir, path, content)
		if err := runGit(repoDir, "add", path); err != nil {
			t.Fatalf("failed to stage file %s: %v", path, err)
		}
	}
	if err := runGit(repoDir, "commit", "-m", message); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

// WriteFile writes content to path inside repoDir without staging it.
func WriteFile(t *testing.T, repoDir, path, content string) {
	t.Helper()

	fullPath := filepath.Join(repoDir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// CheckoutBranch switches to a branch, creating it when create is set.
func CheckoutBranch(t *testing.T, repoDir, branch string, create bool) {
	t.Helper()

	args := []string{"checkout", "-q"}
	if create {
		args = append(args, "-b")
	}
	if err := runGit(repoDir, append(args, branch)...); err != nil {
		t.Fatalf("failed to checkout branch %s: %v", branch, err)
	}
}

// ConflictFixture describes one conflicted path created by
// SetupConflictRepo and the values the loader should report for it.
type ConflictFixture struct {
	Path         string
	FileStatus   string
	OursStatus   string
	TheirsStatus string
}

// ConflictFixtures lists the conflicts SetupConflictRepo leaves behind,
// sorted by path.
var ConflictFixtures = []ConflictFixture{
	{Path: "both.txt", FileStatus: "modified", OursStatus: "M", TheirsStatus: "M"},
	{Path: "docs/new.md", FileStatus: "added", OursStatus: "A", TheirsStatus: "A"},
	{Path: "gone.txt", FileStatus: "deleted", OursStatus: "M", TheirsStatus: "D"},
	{Path: "same.txt", FileStatus: "equivalent", OursStatus: "M", TheirsStatus: "M"},
}

// SetupConflictRepo creates a repository stopped in the middle of a merge
// with the conflicts listed in ConflictFixtures, plus one cleanly merged
// file.
func SetupConflictRepo(t *testing.T) string {
	t.Helper()

	dir := SetupTestRepo(t)
	CommitFiles(t, dir, map[string]string{
		"both.txt":  "base\n",
		"gone.txt":  "keep\n",
		"same.txt":  "base\n",
		"clean.txt": "base\n",
	}, "Add base files")

	CheckoutBranch(t, dir, "theirs", true)
	CommitFiles(t, dir, map[string]string{
		"both.txt":    "theirs\n",
		"gone.txt":    "",
		"same.txt":    "theirs\n",
		"docs/new.md": "theirs new\n",
		"clean.txt":   "theirs\n",
	}, "Change files on theirs")

	CheckoutBranch(t, dir, "main", false)
	CommitFiles(t, dir, map[string]string{
		"both.txt":    "ours\n",
		"gone.txt":    "ours change\n",
		"same.txt":    "ours\n",
		"docs/new.md": "ours new\n",
	}, "Change files on main")

	// Conflicts make the merge exit non-zero
	_ = runGit(dir, "merge", "--no-edit", "theirs")
	if !strings.Contains(Git(t, dir, "status", "--porcelain"), "UU both.txt") {
		t.Fatal("merge did not leave both.txt conflicted")
	}

	// Resolve same.txt to our side and drop gone.txt from the working copy
	WriteFile(t, dir, "same.txt", "ours\n")
	if err := os.Remove(filepath.Join(dir, "gone.txt")); err != nil {
		t.Fatalf("failed to remove gone.txt: %v", err)
	}

	return dir
}

// SkipIfNoGit skips the test if git is not installed.
func SkipIfNoGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH, skipping test")
	}
}

// Git runs git in dir and returns its standard output, failing the test
// on error.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		t.Fatalf("git %s: %v", strings.Join(args, " "), err)
	}
	return string(output)
}

// runGit runs a git command in the specified directory.
func runGit(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Conflictpane Test",
		"GIT_AUTHOR_EMAIL=test@conflictpane.dev",
		"GIT_COMMITTER_NAME=Conflictpane Test",
		"GIT_COMMITTER_EMAIL=test@conflictpane.dev",
		"GIT_CONFIG_NOSYSTEM=1",
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &gitError{args: args, output: output, err: err}
	}
	return nil
}

type gitError struct {
	args   []string
	output []byte
	err    error
}

func (e *gitError) Error() string {
	return "git " + strings.Join(e.args, " ") + ": " + e.err.Error() + "\n" + string(e.output)
}
