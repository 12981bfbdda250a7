// Package schedule adapts TV-program scheduling to the ga engine.
//
// An instance is a table of audience ratings: ratings[p][s] is the rating
// program p earns when it airs in time slot s. A candidate is a permutation
// of all programs; the program at position i airs in slot i. When there are
// more programs than slots, the programs at positions ≥ #slots stay
// unscheduled; when there are fewer, the trailing slots stay empty. Fitness
// is the total rating of the scheduled positions.
//
// HourSlots builds hourly slot labels ("06:00 - 07:00", ...) for a broadcast day.
package schedule
