package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Iron-Ham/conflictpane/internal/config"
	"github.com/Iron-Ham/conflictpane/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and manage conflictpane configuration.

Configuration is read from (in order of precedence):
  1. Environment variables (CONFLICTPANE_*)
  2. Config file (~/.config/conflictpane/config.yaml)
  3. Default values

Without a subcommand the effective configuration is printed.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as YAML",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect color themes",
}

var configThemeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in themes",
	RunE:  runThemeList,
}

var configThemeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a built-in theme to YAML",
	Long: `Export a built-in theme as a theme file for customization.

If no output file is specified, the YAML is printed to stdout. Point
tui.theme_file at the edited file to use it.

Examples:
  conflictpane config theme export nord
  conflictpane config theme export default my-theme.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configThemeCmd)
	configThemeCmd.AddCommand(configThemeListCmd)
	configThemeCmd.AddCommand(configThemeExportCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

const defaultConfigContent = `# conflictpane configuration

# Pane appearance
tui:
  # Built-in theme: default, monokai, nord
  theme: default
  # Custom theme file (see 'conflictpane config theme export')
  # theme_file: ~/.config/conflictpane/theme.yaml
  # Custom key bindings
  # keymap_file: ~/.config/conflictpane/keymap.yaml
  # Prefix of the pane's class name
  namespace: github

# Conflict detection
conflicts:
  # Glob patterns of paths to hide, e.g. "vendor/**"
  ignore: []
  # Reload when the git index changes
  watch: true
  # Quiet period before a reload, in milliseconds
  debounce_ms: 100

# Debug logging
logging:
  enabled: false
  # Options: debug, info, warn, error
  level: info
  # Defaults to ~/.config/conflictpane/logs
  # dir: /tmp/conflictpane
`

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/conflictpane/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: CONFLICTPANE_* (e.g., CONFLICTPANE_CONFLICTS_WATCH)")

	return nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	current := viper.GetString("tui.theme")
	for _, name := range styles.BuiltinThemes() {
		marker := "  "
		if name == current {
			marker = "* "
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", marker, name)
	}
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !styles.IsValidTheme(name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.BuiltinThemes(), ", "))
	}

	data, err := styles.ExportTheme(styles.ThemeName(name))
	if err != nil {
		return fmt.Errorf("failed to export theme: %w", err)
	}

	if len(args) == 1 {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(args[1], data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s theme to %s\n", name, args[1])
	return nil
}
