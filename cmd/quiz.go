package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/engine"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer generated questions interactively",
	Long: `Generate questions one at a time and answer them at the prompt.

This is a stateless developer tool for evaluating question quality.
Answers accept option numbers or values; an empty answer skips.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().IntP("difficulty", "d", 1, "Difficulty level (1-5)")
	quizCmd.Flags().String("topic", "", "Topic filter: '|'-delimited type prefixes")
	quizCmd.Flags().IntP("count", "n", 5, "Number of questions")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}

	difficulty, _ := cmd.Flags().GetInt("difficulty")
	topic, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")

	scanner := bufio.NewScanner(os.Stdin)
	var correct int
	var recentTypes []string

	for i := 1; i <= count; i++ {
		q, err := e.Generate(engine.Request{
			Difficulty:   difficulty,
			TopicFilter:  topic,
			ExcludeTypes: recentTypes,
		})
		if err != nil {
			return err
		}
		recentTypes = append([]string{q.Type}, recentTypes...)

		fmt.Println(styleHeading.Render(fmt.Sprintf("Question %d/%d", i, count)))
		fmt.Println(renderQuestion(q, false))

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if engine.CheckAnswer(answer, q) {
			correct++
			fmt.Println(styleCorrect.Render("Correct!"))
		} else {
			fmt.Println(styleIncorrect.Render("Wrong.") + " Answer: " + q.Solution.String())
		}
		if q.Hint != "" {
			fmt.Println(styleHint.Render("Hint: " + q.Hint))
		}
		fmt.Println()
	}

	fmt.Printf("Summary: %d/%d correct\n", correct, count)
	return nil
}
