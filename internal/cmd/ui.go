package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/conflictpane/internal/config"
	"github.com/Iron-Ham/conflictpane/internal/conflict"
	"github.com/Iron-Ham/conflictpane/internal/logging"
	"github.com/Iron-Ham/conflictpane/internal/mergeconflict"
	"github.com/Iron-Ham/conflictpane/internal/tui"
	"github.com/Iron-Ham/conflictpane/internal/tui/keymap"
	"github.com/Iron-Ham/conflictpane/internal/tui/styles"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the merge conflict pane",
	Long: `Open the merge conflict pane for the repository. This is also what
running conflictpane without a subcommand does.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dir, err := repoDir(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()
	logger = logger.WithRepo(dir)

	theme, err := newTheme(cfg)
	if err != nil {
		return err
	}

	km := keymap.DefaultKeymap()
	if cfg.TUI.KeymapFile != "" {
		km, err = keymap.LoadFile(cfg.TUI.KeymapFile)
		if err != nil {
			return fmt.Errorf("failed to load keymap: %w", err)
		}
	}

	loader, err := mergeconflict.NewLoader(dir, cfg.Conflicts.Ignore, mergeconflict.WithLogger(logger))
	if err != nil {
		return err
	}

	var watcher *conflict.Watcher
	if cfg.Conflicts.Watch {
		watcher, err = newWatcher(cmd.Context(), loader, cfg, logger)
		if err != nil {
			// The pane still works; reloads are manual
			logger.Warn("file watching disabled", "error", err)
			watcher = nil
		}
	}

	logger.Info("starting conflict pane", "namespace", cfg.TUI.Namespace, "watch", watcher != nil)

	app := tui.New(tui.Options{
		Loader:    loader,
		Namespace: cfg.TUI.Namespace,
		Theme:     theme,
		Keymap:    km,
		Logger:    logger,
	}, watcher)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// newWatcher watches the git directory of the loader's repository, which
// may be a linked worktree's directory rather than <top level>/.git.
func newWatcher(ctx context.Context, loader *mergeconflict.Loader, cfg *config.Config, logger *logging.Logger) (*conflict.Watcher, error) {
	gitDir, err := loader.GitDir(ctx)
	if err != nil {
		return nil, err
	}
	return conflict.New(gitDir, cfg.Conflicts.Debounce(), logger)
}

// repoDir resolves the --repo flag, defaulting to the working directory.
func repoDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("repo")
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("repository directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// newLogger returns a file logger when logging is enabled and a no-op
// logger otherwise.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// newTheme builds the theme from a custom theme file when one is set, or
// from the named built-in theme.
func newTheme(cfg *config.Config) (*styles.Theme, error) {
	if cfg.TUI.ThemeFile != "" {
		tf, err := styles.LoadThemeFile(cfg.TUI.ThemeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load theme: %w", err)
		}
		return styles.NewTheme(tf.ToPalette()), nil
	}
	return styles.NewTheme(styles.GetPalette(styles.ThemeName(cfg.TUI.Theme))), nil
}
