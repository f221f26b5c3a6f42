package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/export"
)

var notebookCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Inspect and maintain the mistake notebook",
}

var notebookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded mistakes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.close()

		a := d.newContext(cmd.Context())
		recs := a.Notebook().Records()
		if len(recs) == 0 {
			fmt.Println("The notebook is empty.")
			return nil
		}

		fmt.Printf("%-4s  %-16s  %-6s  %-6s  %-10s  %s\n", "#", "Question", "Wrong", "Answer", "Status", "Recorded")
		fmt.Println(strings.Repeat("─", 70))
		for i, r := range recs {
			fmt.Printf("%-4d  %-16s  %-6d  %-6d  %-10s  %s\n",
				i+1,
				r.Expression,
				r.UserAnswer,
				r.CorrectAnswer,
				r.Status(),
				r.RecordedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		snap := a.Notebook().Snapshot()
		fmt.Printf("\n%d total, %d mastered, %d to review\n", snap.Total, snap.Mastered, snap.Unmastered)
		return nil
	},
}

var notebookDeleteCmd = &cobra.Command{
	Use:   "delete <n>...",
	Short: "Delete mistakes by their list number",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indices, err := parseIndices(args)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.close()

		n, err := d.newContext(cmd.Context()).DeleteMistakes(cmd.Context(), indices)
		if err != nil {
			return fmt.Errorf("save notebook: %w", err)
		}
		fmt.Printf("Deleted %d mistake(s).\n", n)
		return nil
	},
}

var notebookMasterCmd = &cobra.Command{
	Use:     "master <expression>",
	Short:   "Mark a mistake as mastered",
	Example: `  mathdrill notebook master "70 - 30 = ?"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.close()

		ok, err := d.newContext(cmd.Context()).MarkMastered(cmd.Context(), args[0], "")
		if err != nil {
			return fmt.Errorf("save notebook: %w", err)
		}
		if !ok {
			return fmt.Errorf("no mistake matches %q", args[0])
		}
		fmt.Println("Marked as mastered.")
		return nil
	},
}

var notebookExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the notebook to a JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.close()

		out := outDir(cmd, d)
		a := d.newContext(cmd.Context())
		now := a.Now()
		path, err := export.WriteFile(out, export.NotebookFileName(now), export.NewNotebook(a.Notebook().Snapshot(), now))
		if err != nil {
			return err
		}
		fmt.Println("Saved", path)
		return nil
	},
}

var notebookImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge mistakes from an exported notebook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		recs, err := export.ReadNotebook(f)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.close()

		added, err := d.newContext(cmd.Context()).ImportMistakes(cmd.Context(), recs)
		if err != nil {
			return fmt.Errorf("save notebook: %w", err)
		}
		fmt.Printf("Imported %d of %d mistake(s); the rest were already recorded.\n", added, len(recs))
		return nil
	},
}

func init() {
	notebookExportCmd.Flags().String("out", "", "Output directory (defaults to export_dir)")

	notebookCmd.AddCommand(notebookListCmd)
	notebookCmd.AddCommand(notebookDeleteCmd)
	notebookCmd.AddCommand(notebookMasterCmd)
	notebookCmd.AddCommand(notebookExportCmd)
	notebookCmd.AddCommand(notebookImportCmd)
}

// parseIndices converts 1-based list numbers to 0-based indices.
func parseIndices(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid list number %q", s)
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}

// outDir returns the --out flag, falling back to the configured export
// directory.
func outDir(cmd *cobra.Command, d *deps) string {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return out
	}
	return d.cfg.Export
}
