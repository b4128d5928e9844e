package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/engine"
	"github.com/abhisek/mathforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathforge",
	Short: "Math practice question generator",
	Long: "Mathforge generates multiple-choice math practice questions from\n" +
		"parameterized templates: constrained sampling, distractor synthesis,\n" +
		"and difficulty-aware selection, no model calls required.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringArray("catalog", nil, "Path to a topic catalog JSON file (repeatable)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides MATHFORGE_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log template selection decisions to stderr")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadRegistry merges the built-in topic catalogs with any --catalog files.
func loadRegistry(cmd *cobra.Command) (*catalog.Registry, error) {
	topics := []catalog.Catalog{
		catalog.PolygonsCatalog(),
		catalog.AnglesCatalog(),
		catalog.SolidsCatalog(),
		catalog.MeasurementCatalog(),
	}

	paths, _ := cmd.Flags().GetStringArray("catalog")
	for _, path := range paths {
		c, err := catalog.LoadCatalogFile(path)
		if err != nil {
			return nil, err
		}
		topics = append(topics, c)
	}

	return catalog.Load(topics...)
}

// newEngine builds an engine over the merged registry, wiring the debug
// hook to stderr when --verbose is set.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	reg, err := loadRegistry(cmd)
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}

	cfg := engine.DefaultConfig()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger := log.New(os.Stderr, "mathforge: ", 0)
		cfg.Debugf = logger.Printf
	}

	return engine.New(reg, cfg), nil
}

// resolveDBPath returns the history database path using --db flag (highest
// priority), then MATHFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openHistory opens the generation history store. Callers treat a nil
// repo as "history disabled".
func openHistory(cmd *cobra.Command) (*store.Store, store.HistoryRepo, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open history store: %w", err)
	}
	return st, st.HistoryRepo(), nil
}
