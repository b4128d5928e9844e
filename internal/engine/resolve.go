package engine

import (
	"strings"

	"github.com/abhisek/mathforge/internal/catalog"
)

// resolve applies the cascading template filter: topic prefixes, then
// cognitive domain, then recent-type exclusion, with explicit fallbacks at
// each step. Narrowing is advisory: whenever any template exists for the
// difficulty, resolve returns one. Every fallback decision is logged through
// the engine's debug hook so the cascade stays auditable.
func (e *Engine) resolve(difficulty int, topicFilter string, domain catalog.CognitiveDomain, excludeTypes []string, g rng) (catalog.Template, error) {
	all, err := e.reg.ByDifficulty(difficulty)
	if err != nil {
		return catalog.Template{}, err
	}

	// Step 1: topic filter. An empty result is not a failure yet; the
	// domain step may still widen back to the full set.
	working := all
	if topicFilter != "" {
		filtered := filterByTopic(all, topicFilter)
		if len(filtered) == 0 {
			e.cfg.Debugf("resolve: topic filter %q matched nothing at difficulty %d, deferring fallback", topicFilter, difficulty)
		}
		working = filtered
	}

	// Step 2: cognitive domain. Narrow the topic-filtered set when it has
	// matches; when the topic step came up empty, narrow the full set
	// instead. An unsatisfiable domain is ignored, not failed.
	if domain != "" {
		base := working
		if len(base) == 0 {
			base = all
		}
		narrowed := filterByDomain(base, domain)
		if len(narrowed) > 0 {
			working = narrowed
		} else {
			e.cfg.Debugf("resolve: no %q templates in candidate set, ignoring domain constraint", domain)
			working = base
		}
	}

	// Step 3: last-resort widening to the full difficulty set.
	if len(working) == 0 {
		e.cfg.Debugf("resolve: filters exhausted at difficulty %d, falling back to full set", difficulty)
		working = all
	}

	// Step 4: recent-type exclusion, only when enough candidates remain to
	// afford it. If exclusion would starve selection, allow repeats.
	if len(excludeTypes) > 0 && len(working) > 2 {
		recent := excludeTypes
		if len(recent) > 2 {
			recent = recent[:2]
		}
		kept := working[:0:0]
		for _, t := range working {
			if t.Type != recent[0] && (len(recent) < 2 || t.Type != recent[1]) {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			e.cfg.Debugf("resolve: recent-type exclusion would starve selection, allowing repeats")
		} else {
			working = kept
		}
	}

	if len(working) == 0 {
		return catalog.Template{}, &NoTemplatesAvailableError{
			Difficulty:  difficulty,
			TopicFilter: topicFilter,
			Domain:      domain,
		}
	}

	return working[g.IntN(len(working))], nil
}

// filterByTopic keeps templates whose type equals one of the "|"-delimited
// prefixes or starts with a prefix plus "_". "polygon_interior" matches
// polygon_interior_triangle but never polygon_identify_triangle.
func filterByTopic(ts []catalog.Template, topicFilter string) []catalog.Template {
	var prefixes []string
	for _, p := range strings.Split(topicFilter, "|") {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	if len(prefixes) == 0 {
		return ts
	}

	var out []catalog.Template
	for _, t := range ts {
		for _, p := range prefixes {
			if t.HasTopicPrefix(p) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func filterByDomain(ts []catalog.Template, domain catalog.CognitiveDomain) []catalog.Template {
	var out []catalog.Template
	for _, t := range ts {
		if t.Domain == domain {
			out = append(out, t)
		}
	}
	return out
}
