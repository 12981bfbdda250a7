package ga_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/permga/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	require.NoError(t, ga.DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*ga.Config)
		field string
	}{
		{"population one", func(c *ga.Config) { c.PopulationSize = 1 }, "PopulationSize"},
		{"negative generations", func(c *ga.Config) { c.Generations = -1 }, "Generations"},
		{"elitism equals population", func(c *ga.Config) { c.Elitism = c.PopulationSize }, "Elitism"},
		{"negative elitism", func(c *ga.Config) { c.Elitism = -1 }, "Elitism"},
		{"crossover above one", func(c *ga.Config) { c.CrossoverRate = 1.01 }, "CrossoverRate"},
		{"crossover NaN", func(c *ga.Config) { c.CrossoverRate = math.NaN() }, "CrossoverRate"},
		{"mutation negative", func(c *ga.Config) { c.MutationRate = -0.1 }, "MutationRate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := ga.DefaultConfig()
			tc.edit(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ga.ErrInvalidConfig)

			var ce *ga.ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tc.field, ce.Field)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestConfig_BoundaryRatesAccepted(t *testing.T) {
	cfg := ga.DefaultConfig()
	cfg.CrossoverRate, cfg.MutationRate = 0, 1
	assert.NoError(t, cfg.Validate())
	cfg.CrossoverRate, cfg.MutationRate = 1, 0
	assert.NoError(t, cfg.Validate())
}

// TestNew_PopulationOfOneFailsBeforeInitialization covers the N=1 scenario:
// validation rejects the run before any candidate is built.
func TestNew_PopulationOfOneFailsBeforeInitialization(t *testing.T) {
	counter := &countingInit{inner: ga.ShuffleInit{}}
	cfg := ga.DefaultConfig()
	cfg.PopulationSize = 1
	cfg.Elitism = 0

	e, err := ga.New(matchProblem(5), cfg, ga.WithInitializer(counter))
	require.ErrorIs(t, err, ga.ErrInvalidConfig)
	assert.Nil(t, e)
	assert.Zero(t, counter.calls)
}

func TestNew_InvalidOptions(t *testing.T) {
	cfg := ga.DefaultConfig()
	for name, opt := range map[string]ga.Option{
		"workers":     ga.WithWorkers(0),
		"rand":        ga.WithRand(nil),
		"initializer": ga.WithInitializer(nil),
		"selector":    ga.WithSelector(nil),
		"crossover":   ga.WithCrossover(nil),
		"mutator":     ga.WithMutator(nil),
	} {
		_, err := ga.New(matchProblem(5), cfg, opt)
		assert.ErrorIs(t, err, ga.ErrInvalidConfig, name)
	}
}

func TestNew_DegenerateInstance(t *testing.T) {
	cfg := ga.DefaultConfig()
	_, err := ga.New(nil, cfg)
	assert.ErrorIs(t, err, ga.ErrDegenerateInstance)
	_, err = ga.New(matchProblem(0), cfg)
	assert.ErrorIs(t, err, ga.ErrDegenerateInstance)
}
