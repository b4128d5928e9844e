package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/authoring"
	"github.com/abhisek/mathforge/internal/llm"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Draft a new topic catalog with an LLM",
	Long: `Ask a configured LLM provider to draft a topic catalog. The draft is
validated against the catalog schema and template rules before it is
written, so the output file always loads.

Provider configuration comes from MATHFORGE_LLM_PROVIDER and the
matching MATHFORGE_*_API_KEY variable, or from the standard
ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY variables.`,
	RunE: runAuthor,
}

func init() {
	authorCmd.Flags().String("topic", "", "Topic to cover, e.g. fractions (required)")
	authorCmd.Flags().String("name", "", "Catalog name (defaults to topic)")
	authorCmd.Flags().IntSlice("levels", nil, "Difficulty levels to populate (default 1,2,3)")
	authorCmd.Flags().Int("per-level", 3, "Templates per level")
	authorCmd.Flags().String("notes", "", "Extra guidance for the model")
	authorCmd.Flags().StringP("out", "o", "", "Output file (default <topic>.json)")
	_ = authorCmd.MarkFlagRequired("topic")
}

func runAuthor(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	name, _ := cmd.Flags().GetString("name")
	levels, _ := cmd.Flags().GetIntSlice("levels")
	perLevel, _ := cmd.Flags().GetInt("per-level")
	notes, _ := cmd.Flags().GetString("notes")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = topic + ".json"
	}

	var logf llm.Logf
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logf = log.New(os.Stderr, "mathforge: ", 0).Printf
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), logf)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	svc := authoring.New(provider, authoring.DefaultConfig())
	drafted, raw, err := svc.DraftCatalog(cmd.Context(), authoring.DraftRequest{
		Topic:    topic,
		Name:     name,
		Levels:   levels,
		PerLevel: perLevel,
		Notes:    notes,
	})
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		pretty.Write(raw)
	}
	pretty.WriteByte('\n')

	if err := os.WriteFile(out, pretty.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	total := 0
	for _, templates := range drafted.Levels {
		total += len(templates)
	}
	fmt.Printf("wrote %s: %d templates across %d levels\n", out, total, len(drafted.Levels))
	fmt.Println("use it with: mathforge generate --catalog " + out)
	return nil
}
