package metrics

import "github.com/BarkinBalci/email-analytics-dashboard/internal/domain"

const secondsPerDay = 24 * 60 * 60

// MaxReplyDay is the last histogram bin; later replies are counted in it
const MaxReplyDay = 365

// LatencyBin is one whole-day bucket of the reply latency histogram
type LatencyBin struct {
	Day               int
	Count             int
	CumulativeCount   int
	CumulativePercent float64
}

// ReplyDay converts a reply delta to the whole day it landed on, rounding up.
// A reply within the first 24 hours lands on day 1 and the result never exceeds MaxReplyDay.
func ReplyDay(seconds int64) int {
	if seconds <= 0 {
		return 1
	}
	days := seconds / secondsPerDay
	if seconds%secondsPerDay != 0 {
		days++
	}
	if days > MaxReplyDay {
		return MaxReplyDay
	}
	return int(days)
}

// ReplyLatency bins replies with a recorded delta by ReplyDay. Bins are
// contiguous from day 1 to the largest observed day; the cumulative percent
// of the last bin is 100. No bins are returned when no reply has a delta.
func ReplyLatency(replies []domain.Email) []LatencyBin {
	var days []int
	maxDay := 0
	for _, e := range replies {
		if e.ReplyTimeDeltaSeconds == nil {
			continue
		}
		d := ReplyDay(*e.ReplyTimeDeltaSeconds)
		days = append(days, d)
		maxDay = max(maxDay, d)
	}
	if len(days) == 0 {
		return nil
	}

	bins := make([]LatencyBin, maxDay)
	for i := range bins {
		bins[i].Day = i + 1
	}
	for _, d := range days {
		bins[d-1].Count++
	}

	cumulative := 0
	for i := range bins {
		cumulative += bins[i].Count
		bins[i].CumulativeCount = cumulative
		bins[i].CumulativePercent = percent(cumulative, len(days))
	}
	return bins
}
