package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Iron-Ham/conflictpane/internal/config"
	"github.com/Iron-Ham/conflictpane/internal/mergeconflict"
	"github.com/Iron-Ham/conflictpane/internal/tui/styles"
	"github.com/Iron-Ham/conflictpane/internal/tui/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// defaultListWidth is used when stdout is not a terminal.
const defaultListWidth = 80

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the current merge conflicts",
	Long: `Print the merge conflicts of the repository once and exit.

The text format prints one row per conflicted file, the same rows the pane
shows. The yaml format prints the conflict records for scripts.

Examples:
  conflictpane list
  conflictpane list --format yaml
  conflictpane list -C ../other-repo`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFormat string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "output format (text, yaml)")
}

func runList(cmd *cobra.Command, args []string) error {
	if listFormat != "text" && listFormat != "yaml" {
		return fmt.Errorf("invalid format %q: expected text or yaml", listFormat)
	}

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

	loader, err := mergeconflict.NewLoader(dir, cfg.Conflicts.Ignore, mergeconflict.WithLogger(logger.WithRepo(dir)))
	if err != nil {
		return err
	}

	conflicts, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}

	if listFormat == "yaml" {
		return writeConflictsYAML(cmd.OutOrStdout(), conflicts)
	}

	theme, err := newTheme(cfg)
	if err != nil {
		return err
	}
	return writeConflictsText(cmd.OutOrStdout(), conflicts, theme, listWidth())
}

func listWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultListWidth
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return defaultListWidth
}

// writeConflictsText prints one rendered row per conflict.
func writeConflictsText(w io.Writer, conflicts []mergeconflict.MergeConflict, theme *styles.Theme, width int) error {
	if len(conflicts) == 0 {
		_, err := fmt.Fprintln(w, "No merge conflicts")
		return err
	}
	for _, c := range conflicts {
		row := view.ConflictRow(c, false, nil)
		if _, err := fmt.Fprintln(w, view.RenderRow(row, theme, width)); err != nil {
			return err
		}
	}
	return nil
}

// writeConflictsYAML prints the conflict records as a YAML sequence.
func writeConflictsYAML(w io.Writer, conflicts []mergeconflict.MergeConflict) error {
	if conflicts == nil {
		conflicts = []mergeconflict.MergeConflict{}
	}
	data, err := yaml.Marshal(conflicts)
	if err != nil {
		return fmt.Errorf("failed to encode conflicts: %w", err)
	}
	_, err = w.Write(data)
	return err
}
