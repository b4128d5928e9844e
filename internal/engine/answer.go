package engine

import (
	"strconv"
	"strings"
)

// CheckAnswer compares a learner's input against a question's option set.
// Accepts either a 1-based option index or the option text. Comparison is
// case- and whitespace-insensitive; numeric inputs match at the question's
// 2-decimal display precision (so "40.0" matches "40").
func CheckAnswer(input string, q *Question) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	correct := correctOption(q)
	if correct == nil {
		return false
	}

	// Try matching by option index (1-N).
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(q.Options) {
		// A bare number is only an index when it cannot be a value match;
		// numeric labels win over positions.
		if !anyLabelMatches(q.Options, input) {
			return q.Options[idx-1].Correct
		}
	}

	if labelEqual(input, correct.Label) {
		return true
	}

	// Numeric tolerance: "40.0" and "40" are the same answer.
	if in, err := strconv.ParseFloat(input, 64); err == nil {
		if want, err := strconv.ParseFloat(correct.Label, 64); err == nil {
			return round2(in) == round2(want)
		}
	}

	return false
}

func correctOption(q *Question) *Option {
	for i := range q.Options {
		if q.Options[i].Correct {
			return &q.Options[i]
		}
	}
	return nil
}

func anyLabelMatches(options []Option, input string) bool {
	for _, o := range options {
		if labelEqual(input, o.Label) {
			return true
		}
	}
	return false
}

func labelEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
