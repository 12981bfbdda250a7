package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/permga/ga"
	"github.com/katalvlaran/permga/matrix"
	"github.com/katalvlaran/permga/perm"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// Problem is a symmetric Euclidean TSP instance. It implements ga.Problem.
type Problem struct {
	cities []City
	names  perm.Alphabet
	dist   *matrix.Dense
}

var _ ga.Problem = (*Problem)(nil)

// NewProblem validates the cities and precomputes the n×n distance table.
//
// Errors:
//   - ga.ErrDegenerateInstance if cities is empty.
//   - ErrCityName for an empty or duplicate name.
//   - ErrCoordinate for a NaN or infinite coordinate.
//
// Complexity: O(n²) time and memory.
func NewProblem(cities []City) (*Problem, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("tsp: no cities: %w", ga.ErrDegenerateInstance)
	}

	names := make([]string, len(cities))
	for i, c := range cities {
		if !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("city %q: %w", c.Name, ErrCoordinate)
		}
		names[i] = c.Name
	}
	alphabet, err := perm.NewAlphabet(names...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCityName, err)
	}

	var (
		n       = len(cities)
		dist, _ = matrix.NewDense(n, n)
		i, j    int
		d       float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(cities[i].X-cities[j].X, cities[i].Y-cities[j].Y)
			if !finite(d) {
				return nil, fmt.Errorf("distance %q-%q: %w", cities[i].Name, cities[j].Name, ErrCoordinate)
			}
			if err = dist.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = dist.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	cp := make([]City, n)
	copy(cp, cities)

	return &Problem{cities: cp, names: alphabet, dist: dist}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Size implements ga.Problem: the number of cities.
func (p *Problem) Size() int { return len(p.cities) }

// Cities returns a copy of the instance's cities in index order.
func (p *Problem) Cities() []City {
	out := make([]City, len(p.cities))
	copy(out, p.cities)
	return out
}

// Distance returns the Euclidean distance between cities i and j.
func (p *Problem) Distance(i, j int) (float64, error) { return p.dist.At(i, j) }

// Distances returns a copy of the distance table.
func (p *Problem) Distances() *matrix.Dense { return p.dist.Clone() }

// TourLength returns the closed round-trip length of tour, rounded to 1e-9.
// A single city has length 0.
//
// Errors: perm.ErrLength, perm.ErrOutOfRange or perm.ErrDuplicate (wrapped)
// when tour is not a permutation of the city indices.
//
// Complexity: O(n).
func (p *Problem) TourLength(tour perm.Permutation) (float64, error) {
	n := len(p.cities)
	if err := perm.Validate(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		// wraps n-1 → 0
		if w, err = p.dist.At(tour[i], tour[(i+1)%n]); err != nil {
			return 0, err
		}
		sum += w
	}

	return math.Round(sum*roundScale) / roundScale, nil
}

// Fitness implements ga.Problem: the negated tour length.
// Invalid candidates score ga.MinFitness.
func (p *Problem) Fitness(tour perm.Permutation) float64 {
	d, err := p.TourLength(tour)
	if err != nil {
		return ga.MinFitness
	}
	return -d
}

// Decode maps a candidate to city names and its closed length.
func (p *Problem) Decode(tour perm.Permutation) (Route, error) {
	names, err := p.names.Decode(tour)
	if err != nil {
		return Route{}, err
	}
	d, err := p.TourLength(tour)
	if err != nil {
		return Route{}, err
	}

	return Route{Cities: names, Distance: d}, nil
}

// Solve runs the engine on cities and decodes the best tour found. The route
// is returned in canonical form: starting at cities[0], oriented so its second
// city has the smaller index of the two neighbours of the start.
//
// When the run stops early (cancelled context, failing hook) the partial
// result and the best route found so far are returned along with the error.
func Solve(cities []City, cfg ga.Config, opts ...ga.Option) (Route, ga.Result, error) {
	p, err := NewProblem(cities)
	if err != nil {
		return Route{}, ga.Result{}, err
	}
	res, runErr := ga.Solve(p, cfg, opts...)
	if len(res.Best.Genome) == 0 {
		return Route{}, res, runErr
	}

	tour, err := Canonical(res.Best.Genome)
	if err != nil {
		return Route{}, res, err
	}
	route, err := p.Decode(tour)
	if err != nil {
		return Route{}, res, err
	}

	return route, res, runErr
}
