package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/engine"
	"github.com/abhisek/mathforge/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one practice question",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntP("difficulty", "d", 1, "Difficulty level (1-5)")
	generateCmd.Flags().String("chapter", "", "Chapter ID stamped onto the question")
	generateCmd.Flags().Int64("seed", 0, "Seed for reproducible content (0 means random)")
	generateCmd.Flags().String("domain", "", "Preferred cognitive domain (recall, concept, ...)")
	generateCmd.Flags().String("representation", "", "Phrasing mode: text, real_world, visual")
	generateCmd.Flags().String("topic", "", "Topic filter: '|'-delimited type prefixes")
	generateCmd.Flags().Int("mastery", 0, "Learner mastery 1-5, biases parameter ranges")
	generateCmd.Flags().Int("avoid-recent", 0, "Exclude the N most recently generated types for this chapter")
	generateCmd.Flags().Bool("json", false, "Print the question as JSON instead of a card")
	generateCmd.Flags().Bool("answer", false, "Mark the correct option in card output")
	generateCmd.Flags().Bool("no-history", false, "Skip recording the question in the history database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}

	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	avoidRecent, _ := cmd.Flags().GetInt("avoid-recent")

	var repo store.HistoryRepo
	if !noHistory || avoidRecent > 0 {
		st, r, err := openHistory(cmd)
		if err != nil {
			// The engine works without history; degrade instead of failing.
			fmt.Fprintln(os.Stderr, "history unavailable:", err)
		} else {
			defer st.Close()
			repo = r
		}
	}

	if repo != nil && avoidRecent > 0 {
		recent, err := repo.RecentTypes(cmd.Context(), req.ChapterID, avoidRecent)
		if err != nil {
			return err
		}
		req.ExcludeTypes = recent
	}

	q, err := e.Generate(req)
	if err != nil {
		return err
	}

	if repo != nil && !noHistory {
		if _, err := repo.Record(cmd.Context(), q); err != nil {
			fmt.Fprintln(os.Stderr, "record history:", err)
		}
	}

	return printQuestion(cmd, q)
}

func requestFromFlags(cmd *cobra.Command) (engine.Request, error) {
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	chapter, _ := cmd.Flags().GetString("chapter")
	topic, _ := cmd.Flags().GetString("topic")
	mastery, _ := cmd.Flags().GetInt("mastery")

	req := engine.Request{
		Difficulty:  difficulty,
		ChapterID:   chapter,
		TopicFilter: topic,
		Mastery:     mastery,
	}

	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		req.Seed = &seed
	}

	if domain, _ := cmd.Flags().GetString("domain"); domain != "" {
		d := catalog.CognitiveDomain(domain)
		if !catalog.KnownDomain(d) {
			return req, fmt.Errorf("unknown cognitive domain %q", domain)
		}
		req.Domain = d
	}

	if rep, _ := cmd.Flags().GetString("representation"); rep != "" {
		switch engine.Representation(rep) {
		case engine.RepresentationText, engine.RepresentationRealWorld, engine.RepresentationVisual:
			req.Representation = engine.Representation(rep)
		default:
			return req, fmt.Errorf("unknown representation %q: use text, real_world, or visual", rep)
		}
	}

	return req, nil
}

func printQuestion(cmd *cobra.Command, q *engine.Question) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(q, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	showAnswer, _ := cmd.Flags().GetBool("answer")
	fmt.Println(renderQuestion(q, showAnswer))
	if q.Hint != "" {
		fmt.Println(styleHint.Render("Hint: " + q.Hint))
	}
	return nil
}
