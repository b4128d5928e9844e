package engine

import (
	"github.com/abhisek/mathforge/internal/catalog"
)

// masteryBounds narrows a [min, max] range for the given mastery level:
// struggling learners (<=2) get the lower 60% of the range, strong learners
// (>=4) the upper 60%. Level 3 or no mastery uses the full range. This lets
// one template serve as an easier or harder instance of itself.
func masteryBounds(min, max, mastery int) (int, int) {
	span := float64(max - min)
	switch {
	case mastery >= 1 && mastery <= 2:
		return min, min + int(0.6*span)
	case mastery >= 4:
		return min + int(0.4*span), max
	default:
		return min, max
	}
}

// sampleParams draws one concrete value per parameter spec. When seed is
// non-nil each parameter's draw is derived deterministically from the seed
// and the parameter name; otherwise the call's randomness source is used.
// Step is honored only by presence, matching the authored source behavior:
// the draw is uniform over the full inclusive range.
func sampleParams(specs map[string]catalog.ParamSpec, seed *int64, mastery int, g rng) map[string]int {
	params := make(map[string]int, len(specs))
	for name, spec := range specs {
		lo, hi := masteryBounds(spec.Min, spec.Max, mastery)

		var unit float64
		if seed != nil {
			unit = seededUnit(*seed, name)
		} else {
			unit = g.Float64()
		}

		v := lo + int(unit*float64(hi-lo+1))
		if v > hi {
			v = hi
		}
		params[name] = v
	}
	return params
}
