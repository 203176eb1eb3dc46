// Package schedule computes campaign launch timelines and the post calendar derived from them.
//
// All dates are civil.Date values: calendar dates with no time-of-day and no location, so the date
// a user picked is never shifted by timezone normalization.
package schedule

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

const daysPerWeek = 7

var (
	ErrLaunchDateRequired = errors.New("launch date is required")
	ErrInvalidLaunchDate  = errors.New("launch date must be a calendar date in YYYY-MM-DD format")
)

// Window is an inclusive range of calendar dates.
type Window struct {
	Start civil.Date `json:"start_date"`
	End   civil.Date `json:"end_date"`
}

// LengthDays returns the number of calendar days covered by the window, both ends included.
func (w Window) LengthDays() int {
	return w.End.DaysSince(w.Start) + 1
}

// NormalizeWeeks coerces a phase length to a positive number of weeks.
// Missing, zero and negative lengths all become a one week phase.
func NormalizeWeeks(weeks int) int {
	if weeks <= 0 {
		return 1
	}
	return weeks
}

// ComputePhaseWindow returns the date range of a phase. The first phase (prevEnd == nil) starts on
// the launch date, every later phase starts the day after the previous one ended.
func ComputePhaseWindow(launch civil.Date, prevEnd *civil.Date, lengthWeeks int) Window {
	start := launch
	if prevEnd != nil {
		start = prevEnd.AddDays(1)
	}
	weeks := NormalizeWeeks(lengthWeeks)
	return Window{
		Start: start,
		End:   start.AddDays(weeks*daysPerWeek - 1),
	}
}

// ParseLaunchDate parses the value of the date picker (YYYY-MM-DD) as a local calendar date.
func ParseLaunchDate(value string) (civil.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return civil.Date{}, ErrLaunchDateRequired
	}
	d, err := civil.ParseDate(value)
	if err != nil || !d.IsValid() {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidLaunchDate, value)
	}
	return d, nil
}
