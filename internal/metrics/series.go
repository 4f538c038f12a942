package metrics

import (
	"time"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

// DailyCount is the number of events of one direction on one calendar day
type DailyCount struct {
	Day       time.Time
	Direction domain.Direction
	Count     int
}

// DailySeries buckets events by calendar day and direction. Every day of the
// range appears once per direction, with zero counts for idle days.
// Events outside the range are ignored.
func DailySeries(events []domain.Email, r domain.DateRange) []DailyCount {
	days := r.Days()
	if len(days) == 0 {
		return nil
	}
	loc := r.Start.Location()

	counts := make(map[string]map[domain.Direction]int, len(days))
	for _, e := range events {
		if !r.Contains(e.Timestamp) {
			continue
		}
		key := dayKey(e.Timestamp.In(loc))
		if counts[key] == nil {
			counts[key] = make(map[domain.Direction]int, len(domain.Directions))
		}
		counts[key][e.Direction]++
	}

	series := make([]DailyCount, 0, len(days)*len(domain.Directions))
	for _, day := range days {
		for _, dir := range domain.Directions {
			series = append(series, DailyCount{
				Day:       day,
				Direction: dir,
				Count:     counts[dayKey(day)][dir],
			})
		}
	}
	return series
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
