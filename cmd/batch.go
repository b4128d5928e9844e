package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate a batch of questions as a JSON array",
	Long: `Generate count questions at one difficulty and print them as a JSON
array on stdout. Batches are index-seeded: the same difficulty and count
always produce the same question content (IDs still vary).`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntP("difficulty", "d", 1, "Difficulty level (1-5)")
	batchCmd.Flags().String("chapter", "", "Chapter ID stamped onto each question")
	batchCmd.Flags().IntP("count", "n", 5, "Number of questions")
}

func runBatch(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}

	difficulty, _ := cmd.Flags().GetInt("difficulty")
	chapter, _ := cmd.Flags().GetString("chapter")
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	questions, err := e.GenerateBatch(difficulty, chapter, count)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(questions)
}
