package engine

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
)

// buildID assembles the composite question ID:
// gen_d{difficulty}_{type}_{sorted parameter values}_{random 0-999}.
// The parameter-derived portion is stable for identical inputs so callers
// can group by question shape; the trailing suffix is always drawn from the
// ambient generator (never the call's seeded stream) so repeated calls with
// identical content still get distinct IDs.
func buildID(difficulty int, templateType string, params map[string]int) string {
	values := make([]int, 0, len(params))
	for _, v := range params {
		values = append(values, v)
	}
	sort.Ints(values)

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("gen_d%d_%s_%s_%d",
		difficulty, templateType, strings.Join(parts, "_"), rand.IntN(1000))
}
