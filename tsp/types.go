package tsp

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned by NewProblem.
var (
	// ErrCityName is returned for an empty or repeated city name.
	ErrCityName = errors.New("tsp: invalid city name")

	// ErrCoordinate is returned when a coordinate is NaN or ±Inf.
	ErrCoordinate = errors.New("tsp: non-finite coordinate")
)

// City is a named point on the Euclidean plane.
type City struct {
	Name string
	X, Y float64
}

// Route is a decoded tour: city names in visiting order and the closed
// round-trip distance (including the leg from the last city back to the first).
type Route struct {
	Cities   []string
	Distance float64
}

// String renders the route as "A -> B -> C -> A (d=3.414)".
func (r Route) String() string {
	if len(r.Cities) == 0 {
		return "<empty route>"
	}
	var b strings.Builder
	for _, name := range r.Cities {
		b.WriteString(name)
		b.WriteString(" -> ")
	}
	b.WriteString(r.Cities[0])
	b.WriteString(" (d=")
	b.WriteString(strconv.FormatFloat(r.Distance, 'g', -1, 64))
	b.WriteByte(')')

	return b.String()
}
