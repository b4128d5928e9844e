package catalog

import (
	"fmt"
	"math"
)

// RuleKind selects the evaluator for a solution rule. Rules are plain data so
// catalogs stay serializable; there are no function values in template data.
type RuleKind string

const (
	// RuleConst yields the constant A regardless of parameters.
	RuleConst RuleKind = "const"

	// RuleChoice yields the index Choice into the template's FixedChoices.
	RuleChoice RuleKind = "choice"

	// RuleProduct yields A * product(params...) + B. A parameter name may
	// repeat to raise it to a power, e.g. circle area is
	// {product, A: pi, params: [radius, radius]}.
	RuleProduct RuleKind = "product"

	// RuleSum yields A * sum(params...) + B, e.g. polygon interior angle sum
	// is {sum, A: 180, B: -360, params: [sides]}.
	RuleSum RuleKind = "sum"
)

// Rule is a serializable solution rule: a kind, the parameter names it reads,
// and two coefficients. See the RuleKind constants for each kind's formula.
type Rule struct {
	Kind   RuleKind `json:"kind"`
	Params []string `json:"params,omitempty"`
	A      float64  `json:"a,omitempty"`
	B      float64  `json:"b,omitempty"`
	Choice int      `json:"choice,omitempty"`
}

// Solution is the evaluated answer: either a numeric value or an index into
// the template's fixed choices.
type Solution struct {
	Value   float64
	Index   int
	IsIndex bool
}

// Eval computes the rule against sampled parameters. Numeric results are
// returned raw; rounding is the caller's concern.
func (r Rule) Eval(params map[string]int) (Solution, error) {
	switch r.Kind {
	case RuleConst:
		return Solution{Value: r.A}, nil

	case RuleChoice:
		return Solution{Index: r.Choice, IsIndex: true}, nil

	case RuleProduct:
		acc := 1.0
		for _, name := range r.Params {
			v, ok := params[name]
			if !ok {
				return Solution{}, fmt.Errorf("rule references unknown parameter %q", name)
			}
			acc *= float64(v)
		}
		return Solution{Value: r.A*acc + r.B}, nil

	case RuleSum:
		acc := 0.0
		for _, name := range r.Params {
			v, ok := params[name]
			if !ok {
				return Solution{}, fmt.Errorf("rule references unknown parameter %q", name)
			}
			acc += float64(v)
		}
		return Solution{Value: r.A*acc + r.B}, nil

	default:
		return Solution{}, fmt.Errorf("unknown rule kind %q", r.Kind)
	}
}

// validate checks a rule against the template that carries it.
func (r Rule) validate(t Template) error {
	switch r.Kind {
	case RuleConst:
		return nil
	case RuleChoice:
		if len(t.FixedChoices) == 0 {
			return fmt.Errorf("choice rule requires fixed_choices")
		}
		if r.Choice < 0 || r.Choice >= len(t.FixedChoices) {
			return fmt.Errorf("choice index %d out of range [0,%d)", r.Choice, len(t.FixedChoices))
		}
		return nil
	case RuleProduct, RuleSum:
		if len(r.Params) == 0 {
			return fmt.Errorf("%s rule requires at least one parameter", r.Kind)
		}
		for _, name := range r.Params {
			if _, ok := t.Params[name]; !ok {
				return fmt.Errorf("%s rule references undeclared parameter %q", r.Kind, name)
			}
		}
		if math.IsNaN(r.A) || math.IsNaN(r.B) {
			return fmt.Errorf("rule coefficients must be finite")
		}
		return nil
	default:
		return fmt.Errorf("unknown rule kind %q", r.Kind)
	}
}
