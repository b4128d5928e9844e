package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// validateTemplate performs all structural checks on a single template.
// Authoring bugs surface here, at load time, instead of as broken questions
// at generation time.
func validateTemplate(t Template) error {
	if strings.TrimSpace(t.Type) == "" {
		return fmt.Errorf("type is empty")
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("text_pattern is empty")
	}
	if !KnownDomain(t.Domain) {
		return fmt.Errorf("unknown cognitive domain %q", t.Domain)
	}

	for name, spec := range t.Params {
		if name == "" {
			return fmt.Errorf("parameter with empty name")
		}
		if spec.Min > spec.Max {
			return fmt.Errorf("parameter %q: min %d exceeds max %d", name, spec.Min, spec.Max)
		}
		if spec.Step < 0 {
			return fmt.Errorf("parameter %q: negative step %d", name, spec.Step)
		}
	}

	// Every placeholder in the text must be backed by a parameter.
	for _, m := range placeholderRe.FindAllStringSubmatch(t.Text, -1) {
		if _, ok := t.Params[m[1]]; !ok {
			return fmt.Errorf("text references undeclared parameter %q", m[1])
		}
	}

	if err := t.Rule.validate(t); err != nil {
		return err
	}

	// Fixed choices, when present, must be non-empty and distinct.
	if len(t.FixedChoices) > 0 {
		seen := make(map[string]bool, len(t.FixedChoices))
		for i, c := range t.FixedChoices {
			norm := strings.ToLower(strings.TrimSpace(c))
			if norm == "" {
				return fmt.Errorf("fixed choice %d is empty", i)
			}
			if seen[norm] {
				return fmt.Errorf("duplicate fixed choice %q", c)
			}
			seen[norm] = true
		}
	}

	return nil
}
