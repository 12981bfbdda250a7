package ga

import (
	"context"
	"log/slog"
	"math/rand"
)

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as a *ConfigError by New.
type Option func(*options)

// GenerationHook observes every completed generation. The population is a
// read-only view; returning an error aborts the run with that error.
type GenerationHook func(stats GenerationStats, pop Population) error

type options struct {
	rng          *rand.Rand
	seed         int64
	initializer  Initializer
	selector     Selector
	crossover    Crossover
	mutator      Mutator
	workers      int
	ctx          context.Context
	onGeneration GenerationHook
	logger       *slog.Logger

	// first invalid option, reported by New
	err error
}

// defaultOptions returns the engine defaults:
//   - seed 0 (perm.DefaultSeed), no explicit *rand.Rand;
//   - ShuffleInit, fitness-proportionate RouletteSelector, PrefixCrossover, SwapMutation;
//   - sequential evaluation, no cancellation, no hook, discarded logs.
func defaultOptions() options {
	return options{
		initializer: ShuffleInit{},
		selector:    RouletteSelector{},
		crossover:   PrefixCrossover{},
		mutator:     SwapMutation{},
		workers:     1,
		logger:      slog.New(slog.DiscardHandler),
	}
}

func (o *options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithSeed seeds the engine's random source. Seed 0 maps to perm.DefaultSeed.
// Ignored when WithRand supplies a generator.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand injects the random source used by initialization, selection and
// variation. The engine becomes its only user for the duration of the run.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng == nil {
			o.fail(configErr("Rand", nil, "must not be nil"))
			return
		}
		o.rng = rng
	}
}

// WithInitializer selects the population initialization strategy.
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		if init == nil {
			o.fail(configErr("Initializer", nil, "must not be nil"))
			return
		}
		o.initializer = init
	}
}

// WithSelector selects the parent selection strategy.
func WithSelector(sel Selector) Option {
	return func(o *options) {
		if sel == nil {
			o.fail(configErr("Selector", nil, "must not be nil"))
			return
		}
		o.selector = sel
	}
}

// WithCrossover selects the recombination operator.
func WithCrossover(x Crossover) Option {
	return func(o *options) {
		if x == nil {
			o.fail(configErr("Crossover", nil, "must not be nil"))
			return
		}
		o.crossover = x
	}
}

// WithMutator selects the mutation operator.
func WithMutator(m Mutator) Option {
	return func(o *options) {
		if m == nil {
			o.fail(configErr("Mutator", nil, "must not be nil"))
			return
		}
		o.mutator = m
	}
}

// WithWorkers bounds the number of goroutines scoring a population.
//
//	n == 1: sequential (default)
//	n > 1 : bounded worker pool
//	n < 1 : invalid option → ConfigError
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.fail(configErr("Workers", n, "must be >= 1"))
			return
		}
		o.workers = n
	}
}

// WithContext enables a cooperative cancellation check between generations.
// Without it a run always executes the full generation budget.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnGeneration registers a hook called after every generation.
func WithOnGeneration(fn GenerationHook) Option {
	return func(o *options) { o.onGeneration = fn }
}

// WithLogger routes run-level (Info) and per-generation (Debug) records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
