package catalog

import (
	"math"
	"testing"
)

func TestRuleEval_Const(t *testing.T) {
	s, err := Rule{Kind: RuleConst, A: 180}.Eval(nil)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if s.IsIndex {
		t.Error("const rule should not yield an index")
	}
	if s.Value != 180 {
		t.Errorf("got %v, want 180", s.Value)
	}
}

func TestRuleEval_Choice(t *testing.T) {
	s, err := Rule{Kind: RuleChoice, Choice: 2}.Eval(nil)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !s.IsIndex || s.Index != 2 {
		t.Errorf("got %+v, want index 2", s)
	}
}

func TestRuleEval_Product(t *testing.T) {
	// Square perimeter: 4 * side.
	s, err := Rule{Kind: RuleProduct, A: 4, Params: []string{"side"}}.Eval(map[string]int{"side": 10})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if s.Value != 40 {
		t.Errorf("got %v, want 40", s.Value)
	}

	// Circle area: pi * r * r, with a repeated parameter.
	s, err = Rule{Kind: RuleProduct, A: math.Pi, Params: []string{"radius", "radius"}}.Eval(map[string]int{"radius": 5})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if math.Abs(s.Value-math.Pi*25) > 1e-9 {
		t.Errorf("got %v, want %v", s.Value, math.Pi*25)
	}
}

func TestRuleEval_Sum(t *testing.T) {
	// Interior angle sum: 180*n - 360.
	s, err := Rule{Kind: RuleSum, A: 180, B: -360, Params: []string{"sides"}}.Eval(map[string]int{"sides": 6})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if s.Value != 720 {
		t.Errorf("got %v, want 720", s.Value)
	}

	// Missing triangle angle: 180 - a - b.
	s, err = Rule{Kind: RuleSum, A: -1, B: 180, Params: []string{"a", "b"}}.Eval(map[string]int{"a": 50, "b": 60})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if s.Value != 70 {
		t.Errorf("got %v, want 70", s.Value)
	}
}

func TestRuleEval_UnknownParameter(t *testing.T) {
	_, err := Rule{Kind: RuleProduct, A: 1, Params: []string{"missing"}}.Eval(map[string]int{})
	if err == nil {
		t.Fatal("expected error for unknown parameter")
	}
}

func TestRuleEval_UnknownKind(t *testing.T) {
	_, err := Rule{Kind: "bogus"}.Eval(nil)
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
