package ga

import "math"

// Default run parameters. They mirror the values the demos ship with.
const (
	DefaultPopulationSize = 250
	DefaultGenerations    = 200
	DefaultCrossoverRate  = 0.8
	DefaultMutationRate   = 0.2
	DefaultElitism        = 2
)

// Config is the immutable configuration of one run.
type Config struct {
	// PopulationSize is N, the number of candidates alive in every generation (N ≥ 2).
	PopulationSize int

	// Generations is G, the exact number of generations executed (G ≥ 0).
	Generations int

	// CrossoverRate is the probability in [0,1] that a parent pair is recombined
	// instead of copied.
	CrossoverRate float64

	// MutationRate is the probability in [0,1] that each child is mutated.
	MutationRate float64

	// Elitism is E, the number of top candidates copied unchanged (0 ≤ E < N).
	Elitism int
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		CrossoverRate:  DefaultCrossoverRate,
		MutationRate:   DefaultMutationRate,
		Elitism:        DefaultElitism,
	}
}

// Validate reports the first violated constraint as a *ConfigError.
func (c Config) Validate() error {
	if c.PopulationSize < 2 {
		return configErr("PopulationSize", c.PopulationSize, "must be >= 2")
	}
	if c.Generations < 0 {
		return configErr("Generations", c.Generations, "must be >= 0")
	}
	if c.Elitism < 0 || c.Elitism >= c.PopulationSize {
		return configErr("Elitism", c.Elitism, "must be in [0, PopulationSize)")
	}
	if !isProbability(c.CrossoverRate) {
		return configErr("CrossoverRate", c.CrossoverRate, "must be in [0, 1]")
	}
	if !isProbability(c.MutationRate) {
		return configErr("MutationRate", c.MutationRate, "must be in [0, 1]")
	}

	return nil
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
