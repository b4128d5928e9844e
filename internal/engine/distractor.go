package engine

import (
	"math"
	"strings"
)

// synthesizeDistractors produces exactly three plausible-but-wrong numeric
// options for a template without fixed choices. The template type is
// classified into a misconception family by keyword; each family encodes the
// errors learners of that category actually make. All candidates are
// positive, distinct from each other and from the answer, and match the
// answer's integer-vs-decimal nature.
func synthesizeDistractors(answer float64, templateType string, params map[string]int) []float64 {
	answer = round2(answer)
	family := classifyDistractorFamily(templateType, answer)

	var candidates []float64
	switch family {
	case familyCount:
		candidates = countCandidates(answer)
	case familyAngleSum:
		candidates = angleSumCandidates(answer)
	case familyAngle:
		candidates = angleCandidates(answer)
	case familyArea:
		candidates = areaCandidates(answer, params)
	case familyVolume:
		candidates = volumeCandidates(answer, params)
	case familyCircumference:
		candidates = circumferenceCandidates(answer)
	default:
		candidates = fallbackCandidates(answer)
	}

	out := dedupeCandidates(answer, candidates)

	// Count answers pad from the fixed plausible pool before the generic
	// +k padding kicks in.
	if family == familyCount && len(out) < 3 {
		for v := 3.0; v <= 12 && len(out) < 3; v++ {
			out = appendCandidate(out, answer, v)
		}
	}

	// Deterministic padding: answer + k for increasing k, still excluding
	// duplicates and non-positive values.
	for k := 1.0; len(out) < 3; k++ {
		out = appendCandidate(out, answer, answer+k)
	}

	return out[:3]
}

type distractorFamily int

const (
	familyFallback distractorFamily = iota
	familyCount
	familyAngleSum
	familyAngle
	familyArea
	familyVolume
	familyCircumference
)

// classifyDistractorFamily maps a template type to its misconception family.
// Order matters: interior/angle-sum types contain "angle" too, and
// definitional count questions are recognized by their small integer answers.
func classifyDistractorFamily(templateType string, answer float64) distractorFamily {
	has := func(kw string) bool { return strings.Contains(templateType, kw) }

	switch {
	case has("sides") || has("vertices") || has("edges") || has("faces"):
		return familyCount
	case (has("identify") || has("count")) && isWholeNumber(answer) && answer >= 3 && answer <= 6:
		return familyCount
	case has("interior") || has("angle_sum") || has("exterior_sum"):
		return familyAngleSum
	case has("angle"):
		return familyAngle
	case has("area"):
		return familyArea
	case has("volume"):
		return familyVolume
	case has("circumference") || has("perimeter"):
		return familyCircumference
	default:
		return familyFallback
	}
}

// countCandidates covers miscounting by one or two, bounded to the plausible
// shape-attribute range [3, 12].
func countCandidates(answer float64) []float64 {
	var out []float64
	for _, delta := range []float64{-1, 1, -2, 2} {
		if v := answer + delta; v >= 3 && v <= 12 {
			out = append(out, v)
		}
	}
	return out
}

// angleConfusables lists the standard mix-ups for the canonical angles.
var angleConfusables = map[float64][]float64{
	90:  {45, 180, 360},
	180: {90, 360, 270},
	360: {180, 90, 270},
}

// angleCandidates covers complement/supplement confusion and small
// misreadings of a protractor.
func angleCandidates(answer float64) []float64 {
	if c, ok := angleConfusables[answer]; ok {
		return c
	}

	var out []float64
	if answer < 90 {
		out = append(out, 90-answer) // complement confusion
	}
	if answer < 180 {
		out = append(out, 180-answer) // supplement confusion
	}
	out = append(out, answer+15, answer-15)
	if math.Mod(answer, 30) == 0 {
		out = append(out, answer+30, answer-30)
	}
	return out
}

// angleSumCandidates covers off-by-one vertex counts and halving/scaling
// errors in interior-angle sums. Results above 3600 degrees are implausible
// for any polygon a learner meets and are dropped.
func angleSumCandidates(answer float64) []float64 {
	var out []float64
	for _, v := range []float64{answer + 180, answer - 180, answer / 2, answer * 1.5} {
		if v > 0 && v <= 3600 {
			out = append(out, v)
		}
	}
	return out
}

// areaCandidates covers the forgotten ½ factor, halving, and the classic
// additive-instead-of-multiplicative error using one linear dimension.
func areaCandidates(answer float64, params map[string]int) []float64 {
	out := []float64{answer * 2, answer / 2, answer * 1.5}
	for _, name := range []string{"base", "side", "length", "width", "radius", "edge"} {
		if v, ok := params[name]; ok {
			out = append(out, answer+float64(v))
			break
		}
	}
	return out
}

// volumeCandidates covers dropping a dimension and magnitude misjudgments.
func volumeCandidates(answer float64, params map[string]int) []float64 {
	dim := 2.0
	for _, name := range []string{"height", "length", "width", "edge", "side", "radius", "depth"} {
		if v, ok := params[name]; ok && v > 1 {
			dim = float64(v)
			break
		}
	}
	return []float64{answer / dim, answer * 2, answer / 1.5, answer * 1.2}
}

// circumferenceCandidates covers radius/diameter confusion and near-miss
// scalings.
func circumferenceCandidates(answer float64) []float64 {
	return []float64{answer / 2, answer * 2, answer * 0.8, answer * 1.2}
}

// fallbackCandidates perturbs symmetrically around the answer with a
// magnitude floor, so tiny answers still get visibly distinct distractors.
func fallbackCandidates(answer float64) []float64 {
	m := math.Max(10, math.Abs(answer)*0.3)
	return []float64{
		answer + 0.3*m,
		answer - 0.3*m,
		answer + 0.6*m,
		answer - 0.6*m,
		answer * 0.75,
		answer * 1.25,
	}
}

// dedupeCandidates rounds candidates to the answer's precision and keeps the
// first three that are positive and distinct.
func dedupeCandidates(answer float64, candidates []float64) []float64 {
	var out []float64
	for _, c := range candidates {
		out = appendCandidate(out, answer, c)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// appendCandidate adds c to out if, after rounding to match the answer's
// integer-vs-decimal nature, it is positive and distinct from the answer and
// all prior candidates.
func appendCandidate(out []float64, answer, c float64) []float64 {
	if isWholeNumber(answer) {
		c = math.Round(c)
	} else {
		c = round2(c)
	}
	if c <= 0 || c == answer {
		return out
	}
	for _, prev := range out {
		if prev == c {
			return out
		}
	}
	return append(out, c)
}

func isWholeNumber(v float64) bool {
	return v == math.Trunc(v)
}
