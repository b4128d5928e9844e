package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/mathforge/internal/catalog"
)

// assembleOptions builds the option set for a question. Templates with fixed
// choices keep their authored order, with correct marked at the evaluated
// index (or matching label). Templates without get the rounded answer plus
// three synthesized distractors, shuffled so position never leaks the answer.
func assembleOptions(tpl catalog.Template, sol catalog.Solution, params map[string]int, g rng) ([]Option, error) {
	var options []Option

	if len(tpl.FixedChoices) > 0 {
		options = make([]Option, len(tpl.FixedChoices))
		for i, c := range tpl.FixedChoices {
			options[i] = Option{Label: c}
		}
		switch {
		case sol.IsIndex && sol.Index >= 0 && sol.Index < len(options):
			options[sol.Index].Correct = true
		default:
			// Numeric rule against fixed choices: mark the label that
			// matches the evaluated value.
			want := formatNumber(sol.Value)
			for i := range options {
				if normalizeLabel(options[i].Label) == normalizeLabel(want) {
					options[i].Correct = true
					break
				}
			}
		}
	} else {
		answer := round2(sol.Value)
		options = append(options, Option{Label: formatNumber(answer), Correct: true})
		for _, d := range synthesizeDistractors(answer, tpl.Type, params) {
			options = append(options, Option{Label: formatNumber(d)})
		}
		g.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
	}

	if err := validateOptions(options); err != nil {
		return nil, err
	}
	repairLabelFormatting(options)
	return options, nil
}

// validateOptions enforces the option set invariants: exactly one correct
// answer and no duplicate normalized labels.
func validateOptions(options []Option) error {
	var correct int
	for _, o := range options {
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		return &InvalidAnswerSetError{CorrectCount: correct}
	}

	seen := make(map[string]bool, len(options))
	for _, o := range options {
		key := normalizeLabel(o.Label)
		if seen[key] {
			return &DuplicateOptionsError{Label: o.Label}
		}
		seen[key] = true
	}
	return nil
}

// repairLabelFormatting coerces decimal-looking distractor labels to integer
// strings when the correct label is integral, so formatting never gives the
// answer away. This is a local repair, not a failure.
func repairLabelFormatting(options []Option) {
	var correctLabel string
	for _, o := range options {
		if o.Correct {
			correctLabel = o.Label
		}
	}
	if strings.Contains(correctLabel, ".") {
		return
	}
	if _, err := strconv.Atoi(correctLabel); err != nil {
		return
	}
	taken := make(map[string]bool, len(options))
	for _, o := range options {
		taken[normalizeLabel(o.Label)] = true
	}
	for i := range options {
		if options[i].Correct || !strings.Contains(options[i].Label, ".") {
			continue
		}
		f, err := strconv.ParseFloat(options[i].Label, 64)
		if err != nil {
			continue
		}
		coerced := strconv.FormatInt(int64(math.Round(f)), 10)
		// Never repair into a collision with another label.
		if taken[normalizeLabel(coerced)] {
			continue
		}
		delete(taken, normalizeLabel(options[i].Label))
		options[i].Label = coerced
		taken[normalizeLabel(coerced)] = true
	}
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
