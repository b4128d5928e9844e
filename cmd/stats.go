package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show template and generation statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("chapter", "", "Also show generation counts for this chapter")
}

func runStats(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	fmt.Println(styleHeading.Render("Templates by difficulty"))
	for _, level := range reg.LevelsWithTemplates() {
		count := reg.Stats()[level]
		domains := reg.DomainsFor(level)
		fmt.Printf("  level %d: %3d templates  %s\n", level, count, styleMeta.Render(joinDomains(domains)))
	}

	fmt.Println()
	fmt.Println(styleHeading.Render("Templates by cognitive domain"))
	domainStats := reg.DomainStats()
	names := make([]string, 0, len(domainStats))
	for d := range domainStats {
		names = append(names, string(d))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-16s %3d\n", name, domainStats[catalog.CognitiveDomain(name)])
	}

	chapter, _ := cmd.Flags().GetString("chapter")
	if chapter == "" {
		return nil
	}

	st, repo, err := openHistory(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "history unavailable:", err)
		return nil
	}
	defer st.Close()

	counts, err := repo.CountByDifficulty(cmd.Context(), chapter)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(styleHeading.Render("Generated for chapter " + chapter))
	if len(counts) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	levels := make([]int, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	for _, level := range levels {
		fmt.Printf("  level %d: %d\n", level, counts[level])
	}
	return nil
}

func joinDomains(domains []catalog.CognitiveDomain) string {
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
