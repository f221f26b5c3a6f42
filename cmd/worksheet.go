package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/export"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Write a printable PDF of unmastered mistakes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		withSimilar, _ := cmd.Flags().GetBool("similar")
		level, _ := cmd.Flags().GetInt("level")
		title, _ := cmd.Flags().GetString("title")

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.close()

		a := d.newContext(cmd.Context())
		if err := a.SetLevel(level); err != nil {
			return err
		}

		cfg := export.DefaultWorksheetConfig()
		if title != "" {
			cfg.Title = title
		}
		items := export.WorksheetItems(a.Notebook().Records(), a.Deriver(), a.Level(), withSimilar)
		path, err := export.WriteWorksheetFile(outDir(cmd, d), cfg, items, a.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s (%d problems)\n", path, len(items))
		return nil
	},
}

func init() {
	worksheetCmd.Flags().Bool("similar", false, "Follow each mistake with a similar variant")
	worksheetCmd.Flags().Int("level", 1, "Variant difficulty level (1-3)")
	worksheetCmd.Flags().String("title", "", "Worksheet title")
	worksheetCmd.Flags().String("out", "", "Output directory (defaults to export_dir)")
}
