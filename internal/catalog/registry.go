package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// MinDifficulty and MaxDifficulty bound the difficulty scale.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// topicMaxDifficulty is the highest level topic catalogs may contribute to.
// Level 5 is reserved for the base catalog.
const topicMaxDifficulty = 4

// UnknownDifficultyError reports a difficulty level with no registered
// templates.
type UnknownDifficultyError struct {
	Level int
}

func (e *UnknownDifficultyError) Error() string {
	return fmt.Sprintf("no templates registered for difficulty level %d", e.Level)
}

// Catalog is a bundle of templates contributed by one topic module, bucketed
// by difficulty level. Topic catalogs may only contribute to levels 1-4.
type Catalog struct {
	// Name identifies the contributing module in load errors.
	Name string

	// Levels maps difficulty level to the templates for that level.
	Levels map[int][]Template
}

// Registry holds the merged template set, bucketed by difficulty. It is
// built once by Load and read-only afterward; Add is a deliberate,
// narrowly-scoped extension point intended for initialization-time use.
type Registry struct {
	mu      sync.RWMutex
	byLevel map[int][]Template
}

// Load builds a registry from the built-in base catalog plus any topic
// catalogs. Topic templates are merged by concatenation per difficulty
// bucket; no de-duplication is performed, so identical types across catalogs
// become distinct siblings. Every template is structurally validated.
func Load(topics ...Catalog) (*Registry, error) {
	r := &Registry{byLevel: make(map[int][]Template)}

	base := baseCatalog()
	for level := MinDifficulty; level <= MaxDifficulty; level++ {
		for _, t := range base.Levels[level] {
			if err := validateTemplate(t); err != nil {
				return nil, fmt.Errorf("catalog %s: level %d: template %q: %w", base.Name, level, t.Type, err)
			}
			r.byLevel[level] = append(r.byLevel[level], t)
		}
	}

	for _, c := range topics {
		for level, templates := range c.Levels {
			if level < MinDifficulty || level > topicMaxDifficulty {
				return nil, fmt.Errorf("catalog %s: topic catalogs may only declare levels %d-%d, got %d",
					c.Name, MinDifficulty, topicMaxDifficulty, level)
			}
			for _, t := range templates {
				if err := validateTemplate(t); err != nil {
					return nil, fmt.Errorf("catalog %s: level %d: template %q: %w", c.Name, level, t.Type, err)
				}
			}
		}
		for level := MinDifficulty; level <= topicMaxDifficulty; level++ {
			r.byLevel[level] = append(r.byLevel[level], c.Levels[level]...)
		}
	}

	return r, nil
}

// ByDifficulty returns the templates registered for a level. The returned
// slice is shared; callers must not mutate it.
func (r *Registry) ByDifficulty(level int) ([]Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ts := r.byLevel[level]
	if len(ts) == 0 {
		return nil, &UnknownDifficultyError{Level: level}
	}
	return ts, nil
}

// Find returns the first template with the given type at the given level.
func (r *Registry) Find(level int, typ string) (Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.byLevel[level] {
		if t.Type == typ {
			return t, true
		}
	}
	return Template{}, false
}

// Add registers one extra template at runtime. It validates the template
// first. Intended for initialization-time extension, not steady-state
// mutation; generation reads are lock-free in practice because Add is not
// called once generation begins.
func (r *Registry) Add(level int, t Template) error {
	if level < MinDifficulty || level > MaxDifficulty {
		return fmt.Errorf("difficulty level %d out of range [%d,%d]", level, MinDifficulty, MaxDifficulty)
	}
	if err := validateTemplate(t); err != nil {
		return fmt.Errorf("template %q: %w", t.Type, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byLevel[level] = append(r.byLevel[level], t)
	return nil
}

// Stats returns the template count per difficulty level.
func (r *Registry) Stats() map[int]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int]int, len(r.byLevel))
	for level, ts := range r.byLevel {
		out[level] = len(ts)
	}
	return out
}

// DomainsFor returns the distinct cognitive domains present at a level, in
// canonical order.
func (r *Registry) DomainsFor(level int) []CognitiveDomain {
	r.mu.RLock()
	defer r.mu.RUnlock()
	present := make(map[CognitiveDomain]bool)
	for _, t := range r.byLevel[level] {
		present[t.Domain] = true
	}
	var out []CognitiveDomain
	for _, d := range AllDomains() {
		if present[d] {
			out = append(out, d)
		}
	}
	return out
}

// DomainStats returns the template count per cognitive domain across all
// levels.
func (r *Registry) DomainStats() map[CognitiveDomain]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[CognitiveDomain]int)
	for _, ts := range r.byLevel {
		for _, t := range ts {
			out[t.Domain]++
		}
	}
	return out
}

// LevelsWithTemplates returns the difficulty levels that have templates,
// ascending.
func (r *Registry) LevelsWithTemplates() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []int
	for level, ts := range r.byLevel {
		if len(ts) > 0 {
			out = append(out, level)
		}
	}
	sort.Ints(out)
	return out
}
