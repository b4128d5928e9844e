package catalog

// CognitiveDomain classifies the pedagogical skill a template exercises.
type CognitiveDomain string

const (
	DomainRecall         CognitiveDomain = "recall"
	DomainConcept        CognitiveDomain = "concept"
	DomainProcedural     CognitiveDomain = "procedural"
	DomainAnalytical     CognitiveDomain = "analytical"
	DomainProblemSolving CognitiveDomain = "problem_solving"
	DomainHigherOrder    CognitiveDomain = "higher_order"
)

// AllDomains returns every cognitive domain in display order.
func AllDomains() []CognitiveDomain {
	return []CognitiveDomain{
		DomainRecall,
		DomainConcept,
		DomainProcedural,
		DomainAnalytical,
		DomainProblemSolving,
		DomainHigherOrder,
	}
}

// KnownDomain reports whether d is one of the six cognitive domains.
func KnownDomain(d CognitiveDomain) bool {
	switch d {
	case DomainRecall, DomainConcept, DomainProcedural,
		DomainAnalytical, DomainProblemSolving, DomainHigherOrder:
		return true
	}
	return false
}

// ParamSpec describes the inclusive integer domain a parameter is drawn from.
type ParamSpec struct {
	// Min and Max bound the sampled value, inclusive. Min must not exceed Max.
	Min int `json:"min"`
	Max int `json:"max"`

	// Step, when positive, declares the authored granularity of the range.
	// Sampling honors the [Min, Max] bounds; Step is carried for catalog
	// fidelity but does not constrain the draw.
	Step int `json:"step,omitempty"`
}

// Template is a reusable question blueprint. Templates are value types and
// immutable once a registry has loaded them.
type Template struct {
	// Type is the template key, unique within its difficulty bucket under
	// normal authoring. Topic prefixes ("polygon_interior_triangle" is in
	// topic "polygon_interior") drive the resolver's topic filter.
	Type string `json:"type"`

	// Domain is the cognitive domain this template targets.
	Domain CognitiveDomain `json:"cognitive_domain"`

	// Text is the question pattern with {name} placeholders, one per
	// parameter. Placeholders may repeat.
	Text string `json:"text_pattern"`

	// Params maps placeholder names to their sampling ranges.
	Params map[string]ParamSpec `json:"parameters,omitempty"`

	// Rule computes the canonical answer from sampled parameters.
	Rule Rule `json:"solution"`

	// Hint is a short nudge shown on request. May be empty.
	Hint string `json:"hint,omitempty"`

	// FixedChoices, when present, is the authored option list. The correct
	// entry is the one Rule selects (RuleChoice index). Order is preserved
	// as authored.
	FixedChoices []string `json:"fixed_choices,omitempty"`
}

// HasTopicPrefix reports whether t belongs to the given topic: its type
// either equals the prefix or starts with prefix followed by "_".
func (t Template) HasTopicPrefix(prefix string) bool {
	if t.Type == prefix {
		return true
	}
	return len(t.Type) > len(prefix) &&
		t.Type[:len(prefix)] == prefix &&
		t.Type[len(prefix)] == '_'
}
