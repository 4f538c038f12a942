package domain

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a range starts after it ends
var ErrInvalidRange = errors.New("start date must be before end date")

// DateRange is an inclusive timestamp range
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDayRange widens two calendar dates to cover both days completely in loc
func NewDayRange(start, end time.Time, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	from := StartOfDay(start.In(loc))
	to := StartOfDay(end.In(loc))
	if from.After(to) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{
		Start: from,
		End:   to.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}, nil
}

// Contains reports whether t lies within the range, both ends included
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the first instant of every calendar day the range touches
func (r DateRange) Days() []time.Time {
	if r.Start.After(r.End) {
		return nil
	}
	loc := r.Start.Location()
	last := StartOfDay(r.End.In(loc))
	var days []time.Time
	for d := StartOfDay(r.Start); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
