package ga

import (
	"math"
	"math/rand"
	"sort"
)

// Selector chooses parents biased toward higher fitness.
//
// Bind is called once per generation with the scores of the current
// population; the returned Picker draws member indices from it.
type Selector interface {
	Bind(scores []float64) Picker
}

// Picker draws one member index in [0, len(scores)).
type Picker interface {
	Pick(rng *rand.Rand) int
}

// Weighting turns fitness scores into roulette weights.
type Weighting int

const (
	// ShiftByWorst weights each candidate by score − min(score). For a
	// cost-framed fitness (fitness = −cost) this is max_cost − cost.
	ShiftByWorst Weighting = iota

	// RawScores uses reward-oriented scores directly; negative scores weigh 0.
	RawScores
)

// RouletteSelector implements fitness-proportionate selection.
//
// Weights are normalized into cumulative probability mass; a draw u ∈ [0,1)
// selects the first index whose cumulative mass is strictly greater than u.
// Each candidate therefore owns the half-open interval [cum[i-1], cum[i]),
// lower bound included: a draw landing exactly on a boundary selects the
// candidate starting there. Zero-weight candidates are never drawn.
//
// If every weight is zero (e.g. all candidates share the same fitness) the
// picker falls back to uniform choice.
type RouletteSelector struct {
	Weighting Weighting
}

// Bind implements Selector.
//
// Complexity: O(n) to build; O(log n) per Pick.
func (r RouletteSelector) Bind(scores []float64) Picker {
	n := len(scores)
	weights := make([]float64, n)

	var floor float64
	if r.Weighting == ShiftByWorst && n > 0 {
		floor = scores[0]
		for _, s := range scores[1:] {
			if s < floor {
				floor = s
			}
		}
	}

	var sum float64
	for i, s := range scores {
		w := s
		if r.Weighting == ShiftByWorst {
			w = s - floor
		}
		if w < 0 || math.IsNaN(w) {
			w = 0
		}
		weights[i] = w
		sum += w
	}
	if sum <= 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return uniformPicker(n)
	}

	wheel := rouletteWheel{cum: make([]float64, n), last: -1}
	var acc float64
	for i, w := range weights {
		acc += w / sum
		wheel.cum[i] = acc
		if w > 0 {
			wheel.last = i
		}
	}

	return wheel
}

type rouletteWheel struct {
	cum  []float64
	last int // last index with positive weight; absorbs rounding at the tail
}

func (w rouletteWheel) Pick(rng *rand.Rand) int {
	u := rng.Float64()
	i := sort.Search(len(w.cum), func(i int) bool { return w.cum[i] > u })
	if i >= len(w.cum) {
		return w.last
	}
	return i
}

// UniformSelector picks every member with equal probability.
type UniformSelector struct{}

// Bind implements Selector.
func (UniformSelector) Bind(scores []float64) Picker {
	return uniformPicker(len(scores))
}

type uniformPicker int

func (n uniformPicker) Pick(rng *rand.Rand) int {
	return rng.Intn(int(n))
}

// TournamentSelector samples Size members uniformly (with replacement) and
// returns the fittest of them; the earliest sampled wins ties.
// Size < 1 is treated as 2.
type TournamentSelector struct {
	Size int
}

// Bind implements Selector.
func (t TournamentSelector) Bind(scores []float64) Picker {
	size := t.Size
	if size < 1 {
		size = 2
	}
	return tournament{scores: scores, size: size}
}

type tournament struct {
	scores []float64
	size   int
}

func (t tournament) Pick(rng *rand.Rand) int {
	best := rng.Intn(len(t.scores))
	for i := 1; i < t.size; i++ {
		c := rng.Intn(len(t.scores))
		if t.scores[c] > t.scores[best] {
			best = c
		}
	}
	return best
}
