package recommend

import "math"

// Sampling constants
const (
	// PoolSize is how many top candidates enter the random draw. The same
	// pool backs the "reveal choices" list.
	PoolSize = 5

	// samplingTemperature controls how strongly the top score dominates:
	// lower is more deterministic, higher more uniform.
	samplingTemperature = 8.0
)

// NoChoice is returned by SampleChoice when the pool is empty
const NoChoice = -1

// SampleChoice draws one index from the top-PoolSize candidates using
// softmax weighting: weight_i = exp((s_i - max(s)) / temperature). Callers
// showing both the egg reveal and the choices list in one session must reuse
// a single draw until inputs change.
func SampleChoice(candidates []Candidate, rng RNG) int {
	if len(candidates) == 0 {
		return NoChoice
	}

	pool := candidates
	if len(pool) > PoolSize {
		pool = pool[:PoolSize]
	}

	// Candidates are sorted, so the max score is first. Subtracting it keeps
	// the exponentials in a stable range.
	maxScore := pool[0].Score

	weights := make([]float64, len(pool))
	total := 0.0
	for i, c := range pool {
		weights[i] = math.Exp((c.Score - maxScore) / samplingTemperature)
		total += weights[i]
	}

	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return i
		}
	}

	return len(pool) - 1
}
