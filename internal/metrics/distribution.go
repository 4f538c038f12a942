package metrics

import (
	"time"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

// Weekdays lists the weekdays in reporting order, Monday first
var Weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayCount is the number of events on one day of the week
type WeekdayCount struct {
	Day   time.Weekday
	Count int
}

// HourCount is the number of events in one hour of the day
type HourCount struct {
	Hour  int
	Count int
}

// WeekdayDistribution counts events per weekday. It always returns seven
// rows, Monday through Sunday.
func WeekdayDistribution(events []domain.Email, loc *time.Location) []WeekdayCount {
	var counts [7]int
	for _, e := range events {
		counts[mondayIndex(inLocation(e.Timestamp, loc).Weekday())]++
	}

	out := make([]WeekdayCount, len(Weekdays))
	for i, day := range Weekdays {
		out[i] = WeekdayCount{Day: day, Count: counts[i]}
	}
	return out
}

// HourlyDistribution counts events per hour of day. It always returns 24
// rows, hour 0 through 23.
func HourlyDistribution(events []domain.Email, loc *time.Location) []HourCount {
	var counts [24]int
	for _, e := range events {
		counts[inLocation(e.Timestamp, loc).Hour()]++
	}

	out := make([]HourCount, len(counts))
	for h, n := range counts {
		out[h] = HourCount{Hour: h, Count: n}
	}
	return out
}

func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
