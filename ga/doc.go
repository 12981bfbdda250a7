// Package ga implements a generational genetic algorithm over fixed-length
// permutations.
//
// The engine knows nothing about cities or TV programs. A problem plugs in by
// implementing Problem (candidate length + fitness, higher is better); the
// tsp and schedule packages are thin adapters of that kind.
//
// One generation, Running(g) → Running(g+1):
//
//  1. rank the current population by fitness (descending, stable);
//  2. copy the top Elitism candidates verbatim into the next population;
//  3. repeatedly draw two parents (Selector), recombine them with probability
//     CrossoverRate (Crossover) or copy them, mutate each child independently
//     with probability MutationRate (Mutator), and append the children until
//     the next population holds exactly PopulationSize members;
//  4. score the new population and replace the old one.
//
// Termination is driven by the generation budget only: a run always executes
// exactly Config.Generations generations unless the optional context passed
// with WithContext is cancelled between generations, or a hook registered with
// WithOnGeneration returns an error.
//
// Determinism:
//   - All randomness flows from one injectable *rand.Rand (WithRand / WithSeed).
//     Seed 0 maps to perm.DefaultSeed, so the zero configuration is reproducible.
//   - Fitness evaluation may run on several goroutines (WithWorkers) but never
//     consumes randomness, so results do not depend on the worker count.
//
// Errors:
//   - *ConfigError (errors.Is(err, ErrInvalidConfig)) for invalid Config or options,
//     including a population larger than the distinct permutations available to
//     a sampling initializer.
//   - ErrDegenerateInstance for a nil problem or a candidate length below 1.
//
// A weak result is not an error: the algorithm is a stochastic heuristic and
// makes no optimality guarantee.
package ga
