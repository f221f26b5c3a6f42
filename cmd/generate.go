package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		domainName, _ := cmd.Flags().GetString("domain")
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		answers, _ := cmd.Flags().GetBool("answers")

		domain, err := problemgen.ParseDomain(domainName)
		if err != nil {
			return err
		}
		if count < 1 {
			return fmt.Errorf("count must be positive, got %d", count)
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		gen := problemgen.New(rand.New(rand.NewSource(seed)), problemgen.DefaultConfig())
		qs, err := gen.Generate(domain, count)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		for i, q := range qs {
			if answers {
				fmt.Printf("%3d. %-16s %d\n", i+1, q.Expression(), q.Answer())
			} else {
				fmt.Printf("%3d. %s\n", i+1, q.Expression())
			}
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("domain", string(problemgen.DomainAllOps), "Operator set: add-sub or all-ops")
	generateCmd.Flags().Int("count", 10, "Number of questions")
	generateCmd.Flags().Int64("seed", 0, "Random seed (0 picks one)")
	generateCmd.Flags().Bool("answers", false, "Print the answer next to each question")
}
