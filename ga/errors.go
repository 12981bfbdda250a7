package ga

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is matched (errors.Is) by every *ConfigError.
	ErrInvalidConfig = errors.New("ga: invalid configuration")

	// ErrDegenerateInstance is returned for a nil problem or a candidate length < 1.
	ErrDegenerateInstance = errors.New("ga: degenerate problem instance")

	// ErrTerminated is returned by Step once the generation budget is spent.
	ErrTerminated = errors.New("ga: run already terminated")

	// ErrEmptyPopulation is returned when a best candidate is requested from an empty population.
	ErrEmptyPopulation = errors.New("ga: empty population")

	// ErrInitializer is returned when an Initializer yields the wrong number of
	// candidates or an invalid one.
	ErrInitializer = errors.New("ga: initializer contract violated")
)

// ConfigError describes which parameter is invalid and which constraint it
// violates. It is raised before any generation executes.
type ConfigError struct {
	Field      string
	Value      any
	Constraint string
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("ga: invalid %s=%v: %s", e.Field, e.Value, e.Constraint)
}

// Is makes errors.Is(err, ErrInvalidConfig) true for any *ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func configErr(field string, value any, constraint string) error {
	return &ConfigError{Field: field, Value: value, Constraint: constraint}
}
