package schedule

import (
	"fmt"

	"github.com/katalvlaran/permga/ga"
	"github.com/katalvlaran/permga/matrix"
	"github.com/katalvlaran/permga/perm"
)

// Problem is an immutable scheduling instance. It implements ga.Problem.
type Problem struct {
	programs perm.Alphabet
	slots    []string
	ratings  *matrix.Dense
	scored   int
}

var _ ga.Problem = (*Problem)(nil)

// NewProblem validates the instance and copies the ratings table.
//
// Errors:
//   - ga.ErrDegenerateInstance if there are no programs or no slots.
//   - perm.ErrBadSymbol (wrapped) for an empty or repeated program name.
//   - ErrShape when len(ratings) != len(programs) or a row length != len(slots).
//   - matrix.ErrNaNInf (wrapped) for a non-finite rating.
//
// Complexity: O(programs × slots).
func NewProblem(programs, slots []string, ratings [][]float64) (*Problem, error) {
	if len(programs) == 0 || len(slots) == 0 {
		return nil, fmt.Errorf("schedule: %d programs, %d slots: %w", len(programs), len(slots), ga.ErrDegenerateInstance)
	}
	alphabet, err := perm.NewAlphabet(programs...)
	if err != nil {
		return nil, err
	}
	if len(ratings) != len(programs) {
		return nil, fmt.Errorf("%d rating rows for %d programs: %w", len(ratings), len(programs), ErrShape)
	}
	for i, row := range ratings {
		if len(row) != len(slots) {
			return nil, fmt.Errorf("program %q has %d ratings for %d slots: %w", programs[i], len(row), len(slots), ErrShape)
		}
	}
	table, err := matrix.NewDenseFromRows(ratings)
	if err != nil {
		return nil, err
	}

	return &Problem{
		programs: alphabet,
		slots:    append([]string(nil), slots...),
		ratings:  table,
		scored:   min(len(programs), len(slots)),
	}, nil
}

// Size implements ga.Problem: the number of programs.
func (p *Problem) Size() int { return p.programs.Len() }

// Scored returns how many leading positions of a candidate air in a slot.
func (p *Problem) Scored() int { return p.scored }

// Programs returns the program names in index order.
func (p *Problem) Programs() []string { return p.programs.Symbols() }

// Slots returns the slot labels in broadcast order.
func (p *Problem) Slots() []string { return append([]string(nil), p.slots...) }

// Rating returns the rating of program in slot.
func (p *Problem) Rating(program, slot int) (float64, error) { return p.ratings.At(program, slot) }

// Fitness implements ga.Problem: Σ ratings[c[i]][i] over the scored
// positions. Invalid candidates score ga.MinFitness.
//
// Complexity: O(programs).
func (p *Problem) Fitness(c perm.Permutation) float64 {
	if perm.Validate(c, p.Size()) != nil {
		return ga.MinFitness
	}
	var total float64
	for i := 0; i < p.scored; i++ {
		r, err := p.ratings.At(c[i], i)
		if err != nil {
			return ga.MinFitness
		}
		total += r
	}
	return total
}

// Decode maps a candidate to slot assignments.
func (p *Problem) Decode(c perm.Permutation) (Schedule, error) {
	names, err := p.programs.Decode(c)
	if err != nil {
		return Schedule{}, err
	}

	s := Schedule{Slots: make([]Assignment, p.scored)}
	for i := 0; i < p.scored; i++ {
		r, err := p.ratings.At(c[i], i)
		if err != nil {
			return Schedule{}, err
		}
		s.Slots[i] = Assignment{Slot: p.slots[i], Program: names[i], Rating: r}
		s.Total += r
	}
	if p.scored < len(names) {
		s.Unscheduled = names[p.scored:]
	}

	return s, nil
}

// Solve builds a Problem, runs the engine and decodes the best schedule.
// A partial result from a stopped run is decoded and returned with the error.
func Solve(programs, slots []string, ratings [][]float64, cfg ga.Config, opts ...ga.Option) (Schedule, ga.Result, error) {
	p, err := NewProblem(programs, slots, ratings)
	if err != nil {
		return Schedule{}, ga.Result{}, err
	}
	res, runErr := ga.Solve(p, cfg, opts...)
	if len(res.Best.Genome) == 0 {
		return Schedule{}, res, runErr
	}
	s, err := p.Decode(res.Best.Genome)
	if err != nil {
		return Schedule{}, res, err
	}

	return s, res, runErr
}
