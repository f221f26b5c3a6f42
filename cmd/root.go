package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "mathdrill",
	Short:        "Timed arithmetic practice with a mistake notebook",
	Long:         "Mathdrill is a terminal app for timed arithmetic practice within 100. Wrong answers go to a mistake notebook for remedial practice.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHDRILL_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(notebookCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the db_path config key, then MATHDRILL_DB env var, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
