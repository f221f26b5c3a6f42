package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	Long:  "Start the terminal app. With --domain the timed session begins immediately instead of showing the mode menu.",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		return runApp(cmd, domain)
	},
}

func init() {
	playCmd.Flags().String("domain", "", "Start practice right away: add-sub or all-ops")
}
