package engine

import (
	"strings"
	"testing"

	"github.com/abhisek/mathforge/internal/catalog"
)

func TestResolve_TopicFilterPrefixBoundary(t *testing.T) {
	e := testEngine(t)
	// "polygon_interior" must match polygon_interior_* only, never the
	// polygon_identify_* siblings.
	for i := 0; i < 100; i++ {
		q, err := e.Generate(Request{Difficulty: 1, ChapterID: "ch1", TopicFilter: "polygon_interior"})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !strings.HasPrefix(q.Type, "polygon_interior") {
			t.Fatalf("topic filter leaked: got type %q", q.Type)
		}
	}
}

func TestResolve_TopicFilterMultiplePrefixes(t *testing.T) {
	e := testEngine(t)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		q, err := e.Generate(Request{Difficulty: 1, ChapterID: "ch1", TopicFilter: "square|angle_right"})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		seen[q.Type] = true
		if !strings.HasPrefix(q.Type, "square") && q.Type != "angle_right" {
			t.Fatalf("unexpected type %q for filter", q.Type)
		}
	}
	if len(seen) < 2 {
		t.Errorf("expected several types across 200 draws, got %v", seen)
	}
}

func TestResolve_UnmatchedTopicFallsBack(t *testing.T) {
	e := testEngine(t)
	q, err := e.Generate(Request{Difficulty: 1, ChapterID: "ch1", TopicFilter: "calculus"})
	if err != nil {
		t.Fatalf("expected fallback to full difficulty set, got %v", err)
	}
	if q.Difficulty != 1 {
		t.Errorf("difficulty %d", q.Difficulty)
	}
}

func TestResolve_DomainNarrows(t *testing.T) {
	e := testEngine(t)
	for i := 0; i < 50; i++ {
		q, err := e.Generate(Request{Difficulty: 1, ChapterID: "ch1", Domain: catalog.DomainRecall})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Domain != catalog.DomainRecall {
			t.Fatalf("domain constraint not honored: got %q (type %s)", q.Domain, q.Type)
		}
	}
}

func TestResolve_UnsatisfiableDomainIgnored(t *testing.T) {
	reg, err := catalog.Load() // base only: no "concept" templates at level 1
	if err != nil {
		t.Fatal(err)
	}
	e := New(reg, DefaultConfig())
	q, err := e.Generate(Request{Difficulty: 1, ChapterID: "ch1", Domain: catalog.DomainConcept})
	if err != nil {
		t.Fatalf("unsatisfiable domain should be ignored, got %v", err)
	}
	if q.Domain == catalog.DomainConcept {
		t.Errorf("base catalog should have no concept template at level 1")
	}
}

func TestResolve_DomainAppliesAfterEmptyTopic(t *testing.T) {
	e := testEngine(t)
	// Topic filter matches nothing; the domain constraint then narrows the
	// full difficulty set instead.
	for i := 0; i < 30; i++ {
		q, err := e.Generate(Request{
			Difficulty:  1,
			ChapterID:   "ch1",
			TopicFilter: "trigonometry",
			Domain:      catalog.DomainConcept,
		})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Domain != catalog.DomainConcept {
			t.Fatalf("got domain %q, want concept", q.Domain)
		}
	}
}

func TestResolve_ExcludeTypesSkipsRecent(t *testing.T) {
	e := testEngine(t)
	exclude := []string{"square_perimeter", "square_area", "circle_area"}
	// Only the first two excludeTypes entries count.
	sawThird := false
	for i := 0; i < 300; i++ {
		q, err := e.Generate(Request{Difficulty: 1, ChapterID: "ch1", ExcludeTypes: exclude})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Type == "square_perimeter" || q.Type == "square_area" {
			t.Fatalf("excluded type %q was selected", q.Type)
		}
		if q.Type == "circle_area" {
			sawThird = true
		}
	}
	if !sawThird {
		t.Error("third excludeTypes entry should not be excluded")
	}
}

func TestResolve_ExclusionSkippedWithTwoCandidates(t *testing.T) {
	two := catalog.Catalog{
		Name: "two",
		Levels: map[int][]catalog.Template{
			1: {
				{Type: "alpha_count_sides", Domain: catalog.DomainRecall, Text: "q1", Rule: catalog.Rule{Kind: catalog.RuleConst, A: 4}},
				{Type: "beta_count_sides", Domain: catalog.DomainRecall, Text: "q2", Rule: catalog.Rule{Kind: catalog.RuleConst, A: 5}},
			},
		},
	}
	reg, err := catalog.Load(two)
	if err != nil {
		t.Fatal(err)
	}
	e := New(reg, DefaultConfig())

	// Pin to the two-template topic; exclusion must be skipped because the
	// working set has only 2 candidates, so repeats stay allowed.
	sawAlpha := false
	for i := 0; i < 100; i++ {
		q, err := e.Generate(Request{
			Difficulty:   1,
			ChapterID:    "ch1",
			TopicFilter:  "alpha_count|beta_count",
			ExcludeTypes: []string{"alpha_count_sides", "beta_count_sides"},
		})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Type == "alpha_count_sides" {
			sawAlpha = true
		}
	}
	if !sawAlpha {
		t.Error("with only 2 candidates, excluded types must still be selectable")
	}
}

func TestResolve_LogsFallbackDecisions(t *testing.T) {
	var lines []string
	cfg := DefaultConfig()
	cfg.Debugf = func(format string, args ...any) {
		lines = append(lines, format)
	}
	e := New(testRegistry(t), cfg)

	if _, err := e.Generate(Request{Difficulty: 1, ChapterID: "ch1", TopicFilter: "calculus"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(lines) == 0 {
		t.Error("expected fallback decisions to be logged")
	}
}
