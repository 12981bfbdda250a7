// SPDX-License-Identifier: MIT

// Package matrix provides the small row-major float64 table used by problem
// instances: the pairwise distance matrix of a TSP instance and the
// program×slot ratings table of a scheduling instance.
//
// Dense is immutable in practice once handed to an engine: problem instances
// are shared read-only across every fitness evaluation of a run, possibly from
// several goroutines. Set exists for construction only.
//
// Numeric policy: NaN and ±Inf are rejected at ingestion (NewDenseFromRows,
// Set) so fitness sums stay finite.
//
// Complexity quicksheet:
//   - NewDense / NewDenseFromRows / Clone: O(r*c); At / Set: O(1); Row: O(c).
package matrix
