package engine

import (
	"math"
	"math/rand/v2"
)

// rng wraps the randomness source for one generation call. A zero rng draws
// from the shared ambient generator; a seeded rng owns a private PCG stream,
// so seeded calls are reproducible and safe to run in parallel.
type rng struct {
	r *rand.Rand
}

func newRNG(seed *int64) rng {
	if seed == nil {
		return rng{}
	}
	return rng{r: rand.New(rand.NewPCG(uint64(*seed), uint64(*seed)^0x9e3779b97f4a7c15))}
}

func (g rng) IntN(n int) int {
	if g.r != nil {
		return g.r.IntN(n)
	}
	return rand.IntN(n)
}

func (g rng) Float64() float64 {
	if g.r != nil {
		return g.r.Float64()
	}
	return rand.Float64()
}

// Shuffle is a Fisher-Yates shuffle through this call's randomness source,
// so seeded calls reproduce option order too.
func (g rng) Shuffle(n int, swap func(i, j int)) {
	if g.r != nil {
		g.r.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}

// seededUnit derives the legacy per-parameter pseudo-random unit value:
// frac(sin(seed + first byte of the parameter name) * 10000). Identical
// seeds and names always yield the identical draw.
func seededUnit(seed int64, name string) float64 {
	var c float64
	if len(name) > 0 {
		c = float64(name[0])
	}
	v := math.Sin(float64(seed)+c) * 10000
	return v - math.Floor(v)
}
