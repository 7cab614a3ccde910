package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/conflictpane/internal/config"
	"github.com/Iron-Ham/conflictpane/internal/mergeconflict"
	"github.com/Iron-Ham/conflictpane/internal/testutil"
	"github.com/Iron-Ham/conflictpane/internal/tui/styles"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// isolateConfig points every config search path at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "conflictpane" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "conflictpane")
	}

	expectedCmds := []string{"ui", "list", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, name := range expectedCmds {
		if !cmdMap[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"config", "repo"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestWriteConflictsText(t *testing.T) {
	conflicts := []mergeconflict.MergeConflict{
		{Path: "a.go", FileStatus: "modified", OursStatus: "M", TheirsStatus: "M"},
		{Path: "b.go", FileStatus: "equivalent", OursStatus: "M", TheirsStatus: "D"},
	}

	var buf bytes.Buffer
	if err := writeConflictsText(&buf, conflicts, styles.NewTheme(nil), 60); err != nil {
		t.Fatalf("writeConflictsText() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "a.go") || !strings.Contains(lines[0], "MM") {
		t.Errorf("line 0 = %q, want path and sides", lines[0])
	}
	if !strings.Contains(lines[1], "b.go") || !strings.Contains(lines[1], "MD") {
		t.Errorf("line 1 = %q, want path and sides", lines[1])
	}
}

func TestWriteConflictsText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConflictsText(&buf, nil, styles.NewTheme(nil), 60); err != nil {
		t.Fatalf("writeConflictsText() error = %v", err)
	}
	if got := buf.String(); got != "No merge conflicts\n" {
		t.Errorf("output = %q", got)
	}
}

func TestWriteConflictsYAML(t *testing.T) {
	conflicts := []mergeconflict.MergeConflict{
		{Path: "a.go", FileStatus: "added", OursStatus: "A", TheirsStatus: "A"},
	}

	var buf bytes.Buffer
	if err := writeConflictsYAML(&buf, conflicts); err != nil {
		t.Fatalf("writeConflictsYAML() error = %v", err)
	}

	var got []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	want := map[string]string{"path": "a.go", "file_status": "added", "ours": "A", "theirs": "A"}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	for k, v := range want {
		if got[0][k] != v {
			t.Errorf("%s = %q, want %q", k, got[0][k], v)
		}
	}
}

func TestWriteConflictsYAML_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConflictsYAML(&buf, nil); err != nil {
		t.Fatalf("writeConflictsYAML() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("output = %q, want []", got)
	}
}

func TestListCommand(t *testing.T) {
	testutil.SkipIfNoGit(t)
	isolateConfig(t)
	repo := testutil.SetupConflictRepo(t)

	output, err := executeCommand(rootCmd, "list", "-C", repo, "--format", "yaml")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, output)
	}

	var got []mergeconflict.MergeConflict
	if err := yaml.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, output)
	}
	if len(got) != len(testutil.ConflictFixtures) {
		t.Fatalf("got %d conflicts, want %d", len(got), len(testutil.ConflictFixtures))
	}
	for i, want := range testutil.ConflictFixtures {
		if got[i].Path != want.Path || got[i].FileStatus != want.FileStatus {
			t.Errorf("conflict %d = %+v, want %+v", i, got[i], want)
		}
	}

	output, err = executeCommand(rootCmd, "list", "-C", repo, "--format", "text")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, output)
	}
	for _, want := range testutil.ConflictFixtures {
		if !strings.Contains(output, want.Path) {
			t.Errorf("text output missing %s:\n%s", want.Path, output)
		}
	}
}

func TestListCommand_InvalidFormat(t *testing.T) {
	isolateConfig(t)
	_, err := executeCommand(rootCmd, "list", "--format", "json")
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("error = %v, want invalid format", err)
	}
	listFormat = "text"
}

func TestListCommand_MissingRepo(t *testing.T) {
	isolateConfig(t)
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := executeCommand(rootCmd, "list", "-C", missing, "--format", "text")
	if err == nil {
		t.Error("expected an error for a missing repository directory")
	}
}

func TestConfigShow(t *testing.T) {
	isolateConfig(t)
	t.Setenv("CONFLICTPANE_TUI_NAMESPACE", "atom")

	output, err := executeCommand(rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal([]byte(output), &cfg); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, output)
	}
	if cfg.TUI.Namespace != "atom" {
		t.Errorf("namespace = %q, want env override %q", cfg.TUI.Namespace, "atom")
	}
	if cfg.Conflicts.DebounceMs != 100 {
		t.Errorf("debounce_ms = %d, want default 100", cfg.Conflicts.DebounceMs)
	}
}

func TestConfigInit(t *testing.T) {
	isolateConfig(t)

	output, err := executeCommand(rootCmd, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, config.ConfigFile()) {
		t.Errorf("output = %q, want config path", output)
	}

	data, err := os.ReadFile(config.ConfigFile())
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("generated config is not YAML: %v", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("generated config is invalid: %v", errs)
	}

	if _, err := executeCommand(rootCmd, "config", "init"); err == nil {
		t.Error("second init should fail when the file exists")
	}
}

func TestConfigPath(t *testing.T) {
	isolateConfig(t)

	output, err := executeCommand(rootCmd, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(output, "CONFLICTPANE_") {
		t.Errorf("output missing environment hint:\n%s", output)
	}
}

func TestThemeExport(t *testing.T) {
	isolateConfig(t)

	output, err := executeCommand(rootCmd, "config", "theme", "export", "nord")
	if err != nil {
		t.Fatalf("theme export failed: %v", err)
	}
	var tf styles.ThemeFile
	if err := yaml.Unmarshal([]byte(output), &tf); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if err := tf.Validate(); err != nil {
		t.Errorf("exported theme is invalid: %v", err)
	}

	path := filepath.Join(t.TempDir(), "theme.yaml")
	if _, err := executeCommand(rootCmd, "config", "theme", "export", "default", path); err != nil {
		t.Fatalf("theme export to file failed: %v", err)
	}
	if _, err := styles.LoadThemeFile(path); err != nil {
		t.Errorf("exported file does not load: %v", err)
	}

	if _, err := executeCommand(rootCmd, "config", "theme", "export", "dracula"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestNewTheme(t *testing.T) {
	cfg := config.Default()
	cfg.TUI.Theme = "nord"
	theme, err := newTheme(cfg)
	if err != nil {
		t.Fatalf("newTheme() error = %v", err)
	}
	if theme.Palette().Primary != styles.NordPalette().Primary {
		t.Errorf("primary = %v, want nord", theme.Palette().Primary)
	}

	cfg.TUI.ThemeFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := newTheme(cfg); err == nil {
		t.Error("expected an error for a missing theme file")
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	logger, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("discarded")

	cfg.Logging.Enabled = true
	cfg.Logging.Dir = t.TempDir()
	logger, err = newLogger(cfg)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("written")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Logging.Dir, "debug.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "written") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewWatcher_FromSubdirectory(t *testing.T) {
	testutil.SkipIfNoGit(t)
	repo := testutil.SetupConflictRepo(t)

	loader, err := mergeconflict.NewLoader(filepath.Join(repo, "docs"), nil)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	w, err := newWatcher(context.Background(), loader, config.Default(), nil)
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	defer w.Stop()

	if _, err := os.Stat(filepath.Join(w.GitDir(), "MERGE_HEAD")); err != nil {
		t.Errorf("watched dir %s has no MERGE_HEAD: %v", w.GitDir(), err)
	}
}

func TestNewWatcher_LinkedWorktree(t *testing.T) {
	testutil.SkipIfNoGit(t)
	repo := testutil.SetupTestRepo(t)
	tree := filepath.Join(t.TempDir(), "feature")
	testutil.Git(t, repo, "worktree", "add", "-b", "feature", tree)

	loader, err := mergeconflict.NewLoader(tree, nil)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	w, err := newWatcher(context.Background(), loader, config.Default(), nil)
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	defer w.Stop()

	if !strings.Contains(filepath.ToSlash(w.GitDir()), ".git/worktrees/") {
		t.Errorf("watched dir = %s, want the worktree's private git dir", w.GitDir())
	}
}
