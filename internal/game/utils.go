package game

import (
	"math"
	"math/rand/v2"
)

// NewRand returns a deterministic random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// RandomInRange returns a uniform value in [min, max).
func RandomInRange(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// ClampedLinearMap maps v from [inMin, inMax] onto [outMin, outMax] and clamps
// the result to the output range. Either range may be descending. A degenerate
// input range maps everything to outMin.
func ClampedLinearMap(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		return outMin
	}
	out := outMin + (v-inMin)/(inMax-inMin)*(outMax-outMin)
	lo, hi := outMin, outMax
	if lo > hi {
		lo, hi = hi, lo
	}
	return clamp(out, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floorInt is math.Floor for the small non-negative values the spawn rate uses.
func floorInt(v float64) int {
	return int(math.Floor(v))
}
