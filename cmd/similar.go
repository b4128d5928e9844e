package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/engine"
)

var similarCmd = &cobra.Command{
	Use:   "similar [question.json]",
	Short: "Regenerate a similar question from a previous one",
	Long: `Read a generated question (JSON, from a file or stdin) and produce a
fresh instance of the same template: same type and difficulty, new
parameter values. With low mastery the phrasing flips between text and
visual.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimilar,
}

func init() {
	similarCmd.Flags().Int("mastery", 3, "Learner mastery 1-5")
	similarCmd.Flags().Bool("json", true, "Print the question as JSON")
	similarCmd.Flags().Bool("answer", false, "Mark the correct option in card output")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read question: %w", err)
	}

	var original engine.Question
	if err := json.Unmarshal(data, &original); err != nil {
		return fmt.Errorf("decode question: %w", err)
	}
	if original.Type == "" || original.Difficulty == 0 {
		return fmt.Errorf("input is not a generated question: type and difficulty_level are required")
	}

	e, err := newEngine(cmd)
	if err != nil {
		return err
	}

	mastery, _ := cmd.Flags().GetInt("mastery")
	q, err := e.GenerateSimilar(&original, mastery)
	if err != nil {
		return err
	}

	return printQuestion(cmd, q)
}
