package ga

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/permga/perm"
)

// State is the lifecycle position of an Engine.
type State int

const (
	// Initialized: the starting population exists, no generation has run.
	Initialized State = iota
	// Running: at least one generation has run and the budget is not spent.
	Running
	// Terminated: the generation counter reached Config.Generations.
	Terminated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine owns the population of one run. It is not safe for concurrent use;
// the problem and config it was built with are only read.
type Engine struct {
	problem Problem
	cfg     Config
	opts    options
	rng     *rand.Rand

	state   State
	gen     int
	pop     Population
	best    Individual
	history []GenerationStats
}

// New validates cfg and problem, builds the initial population and returns an
// engine in state Initialized.
//
// Errors:
//   - *ConfigError for an invalid Config, an invalid Option, or an initializer
//     that cannot provide PopulationSize distinct candidates.
//   - ErrDegenerateInstance for a nil problem or Size() < 1.
//   - ErrInitializer if the initializer breaks its contract.
//
// Complexity: initializer cost + PopulationSize fitness calls.
func New(problem Problem, cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if problem == nil {
		return nil, fmt.Errorf("%w: nil problem", ErrDegenerateInstance)
	}
	l := problem.Size()
	if l < 1 {
		return nil, fmt.Errorf("%w: candidate length %d", ErrDegenerateInstance, l)
	}

	rng := o.rng
	if rng == nil {
		rng = perm.NewRand(o.seed)
	}

	genomes, err := o.initializer.Initialize(problem, cfg.PopulationSize, rng)
	if err != nil {
		return nil, err
	}
	if len(genomes) != cfg.PopulationSize {
		return nil, fmt.Errorf("%w: %d candidates, want %d", ErrInitializer, len(genomes), cfg.PopulationSize)
	}
	for i, g := range genomes {
		if verr := perm.Validate(g, l); verr != nil {
			return nil, fmt.Errorf("%w: candidate %d: %w", ErrInitializer, i, verr)
		}
	}

	e := &Engine{
		problem: problem,
		cfg:     cfg,
		opts:    o,
		rng:     rng,
		state:   Initialized,
		pop:     newPopulation(genomes, EvaluateAll(problem, genomes, o.workers), 0),
	}
	e.best, _ = BestOf(e.pop)
	e.history = append(make([]GenerationStats, 0, cfg.Generations+1), Summarize(e.pop))
	if cfg.Generations == 0 {
		e.state = Terminated
	}

	return e, nil
}

// Solve builds an engine and runs it to completion.
func Solve(problem Problem, cfg Config, opts ...Option) (Result, error) {
	e, err := New(problem, cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return e.Run()
}

// Run executes the remaining generations and returns the result.
// With WithContext, a cancelled context stops the run between generations;
// the partial result is returned together with ctx.Err().
func (e *Engine) Run() (Result, error) {
	e.opts.logger.Info("ga run started",
		slog.Int("population", e.cfg.PopulationSize),
		slog.Int("generations", e.cfg.Generations),
		slog.Int("length", e.problem.Size()),
		slog.Float64("crossover_rate", e.cfg.CrossoverRate),
		slog.Float64("mutation_rate", e.cfg.MutationRate),
		slog.Int("elitism", e.cfg.Elitism),
	)
	for e.state != Terminated {
		if err := e.Step(); err != nil {
			e.opts.logger.Info("ga run stopped", slog.Int("generation", e.gen), slog.Any("err", err))
			return e.Result(), err
		}
	}
	e.opts.logger.Info("ga run finished",
		slog.Int("generations", e.gen),
		slog.Float64("best_fitness", e.best.Fitness),
	)

	return e.Result(), nil
}

// Step advances the engine by exactly one generation.
//
// Errors:
//   - ErrTerminated once the generation budget is spent.
//   - ctx.Err() when a context given via WithContext is done.
//   - any error returned by the generation hook.
func (e *Engine) Step() error {
	if e.state == Terminated {
		return ErrTerminated
	}
	if e.opts.ctx != nil {
		if err := e.opts.ctx.Err(); err != nil {
			return err
		}
	}
	e.state = Running

	next := e.breed()
	e.gen++
	e.pop = newPopulation(next, EvaluateAll(e.problem, next, e.opts.workers), e.gen)
	if cand, err := BestOf(e.pop); err == nil && cand.Fitness > e.best.Fitness {
		e.best = cand
	}
	stats := Summarize(e.pop)
	e.history = append(e.history, stats)
	if e.gen >= e.cfg.Generations {
		e.state = Terminated
	}

	e.opts.logger.Debug("ga generation",
		slog.Int("generation", stats.Generation),
		slog.Float64("best", stats.Best),
		slog.Float64("mean", stats.Mean),
		slog.Float64("stddev", stats.StdDev),
	)
	if e.opts.onGeneration != nil {
		if err := e.opts.onGeneration(stats, e.pop); err != nil {
			return err
		}
	}

	return nil
}

// breed builds the genomes of the next generation: elites first, then
// offspring pairs until exactly PopulationSize slots are filled. Every slot
// is written once, by index; the current population is only read.
func (e *Engine) breed() []perm.Permutation {
	var (
		n       = e.cfg.PopulationSize
		members = e.pop.Members
		next    = make([]perm.Permutation, n)
		w       int
	)

	ranked := e.pop.Ranked()
	for ; w < e.cfg.Elitism; w++ {
		next[w] = members[ranked[w]].Genome.Clone()
	}

	picker := e.opts.selector.Bind(e.pop.Scores())
	for w < n {
		p1 := members[picker.Pick(e.rng)].Genome
		p2 := members[picker.Pick(e.rng)].Genome

		var c1, c2 perm.Permutation
		if e.rng.Float64() < e.cfg.CrossoverRate {
			c1, c2 = e.opts.crossover.Cross(p1, p2, e.rng)
		} else {
			c1, c2 = p1.Clone(), p2.Clone()
		}
		if e.rng.Float64() < e.cfg.MutationRate {
			c1 = e.opts.mutator.Mutate(c1, e.rng)
		}
		if e.rng.Float64() < e.cfg.MutationRate {
			c2 = e.opts.mutator.Mutate(c2, e.rng)
		}

		next[w] = c1
		w++
		if w < n {
			next[w] = c2
			w++
		}
	}

	return next
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Generation returns the number of generations executed so far.
func (e *Engine) Generation() int { return e.gen }

// Config returns the run configuration.
func (e *Engine) Config() Config { return e.cfg }

// Population returns the current population. It must not be modified.
func (e *Engine) Population() Population { return e.pop }

// Best returns a copy of the best candidate seen in any generation so far.
func (e *Engine) Best() Individual { return e.best.Clone() }

// Result reports the best candidate found so far, the number of generations
// executed and the statistics history.
func (e *Engine) Result() Result {
	h := make([]GenerationStats, len(e.history))
	copy(h, e.history)

	return Result{Best: e.best.Clone(), Generations: e.gen, History: h}
}
