package schedule

import "fmt"

// HourSlots returns one label per hour in [from, to), formatted
// "HH:00 - HH:00". HourSlots(6, 24) yields the 18 slots of a 06:00-24:00 day.
//
// Errors: ErrHourRange unless 0 ≤ from < to ≤ 24.
func HourSlots(from, to int) ([]string, error) {
	if from < 0 || to > 24 || from >= to {
		return nil, fmt.Errorf("[%d, %d): %w", from, to, ErrHourRange)
	}
	out := make([]string, 0, to-from)
	for h := from; h < to; h++ {
		out = append(out, fmt.Sprintf("%02d:00 - %02d:00", h, h+1))
	}
	return out, nil
}
