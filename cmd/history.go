package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent practice sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.close()

		recs := d.newContext(cmd.Context()).History().Records()
		if len(recs) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		fmt.Printf("%-16s  %-8s  %-7s  %-5s  %-5s  %-8s  %s\n",
			"Date", "Mode", "Correct", "Wrong", "Total", "Accuracy", "Time")
		fmt.Println(strings.Repeat("─", 68))
		for _, r := range recs {
			fmt.Printf("%-16s  %-8s  %-7d  %-5d  %-5d  %7d%%  %d:%02d\n",
				r.Date.Local().Format("2006-01-02 15:04"),
				r.Mode,
				r.Correct,
				r.Wrong,
				r.Total,
				r.Accuracy,
				r.Duration/60, r.Duration%60,
			)
		}
		return nil
	},
}
