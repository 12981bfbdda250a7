package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrShape is returned when the ratings table does not match the
	// program and slot lists.
	ErrShape = errors.New("schedule: ratings shape mismatch")

	// ErrHourRange is returned by HourSlots for hours outside 0..24.
	ErrHourRange = errors.New("schedule: hour range")
)

// Assignment is one aired slot of a schedule.
type Assignment struct {
	Slot    string
	Program string
	Rating  float64
}

// Schedule is a decoded candidate.
type Schedule struct {
	// Slots lists the scored positions in slot order.
	Slots []Assignment
	// Unscheduled holds programs that did not get a slot, in candidate order.
	Unscheduled []string
	// Total is the sum of the aired ratings.
	Total float64
}

// String renders one "slot: program" line per assignment followed by the total.
func (s Schedule) String() string {
	var b strings.Builder
	for _, a := range s.Slots {
		fmt.Fprintf(&b, "%s: %s\n", a.Slot, a.Program)
	}
	fmt.Fprintf(&b, "total: %g", s.Total)
	return b.String()
}
