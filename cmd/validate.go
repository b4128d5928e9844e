package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>...",
	Short: "Validate topic catalog files",
	Long: `Check catalog files against the topic catalog schema and template
rules, then verify they merge cleanly with the built-in catalogs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	topics := []catalog.Catalog{
		catalog.PolygonsCatalog(),
		catalog.AnglesCatalog(),
		catalog.SolidsCatalog(),
		catalog.MeasurementCatalog(),
	}

	for _, path := range args {
		c, err := catalog.LoadCatalogFile(path)
		if err != nil {
			return err
		}
		topics = append(topics, c)

		total := 0
		for _, templates := range c.Levels {
			total += len(templates)
		}
		fmt.Printf("%s: ok (%s, %d templates)\n", path, c.Name, total)
	}

	if _, err := catalog.Load(topics...); err != nil {
		return fmt.Errorf("catalogs do not merge: %w", err)
	}
	fmt.Println("all catalogs merge cleanly")
	return nil
}
