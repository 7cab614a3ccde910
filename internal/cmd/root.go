package cmd

import (
	"strings"

	"github.com/Iron-Ham/conflictpane/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "conflictpane",
	Short: "Browse unresolved merge conflicts in a terminal pane",
	Long: `conflictpane shows the merge conflicts of a git working tree in a
terminal pane. Each row shows the file path, its status and how both sides
of the merge changed it. The pane reloads when the index changes.

Run without a subcommand to open the pane for the current directory.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/conflictpane/config.yaml)")
	rootCmd.PersistentFlags().StringP("repo", "C", "", "repository directory (default is the current directory)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/conflictpane")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CONFLICTPANE")
	// e.g., CONFLICTPANE_CONFLICTS_DEBOUNCE_MS for conflicts.debounce_ms
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
