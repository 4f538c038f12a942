package metrics

import (
	"fmt"
	"time"
)

// NotAvailable is reported for values that cannot be derived from the data
const NotAvailable = "N/A"

// Summary holds the top-level counters of a snapshot
type Summary struct {
	TotalSent     int
	TotalReceived int
	TotalReplies  int
	TotalLeads    int
	LeadRate      float64

	// AvgReplyTimeSeconds is only meaningful when HasAvgReplyTime is set
	AvgReplyTimeSeconds int64
	HasAvgReplyTime     bool
}

// Summarize computes the counters and the mean reply latency
func Summarize(p Partitions) Summary {
	s := Summary{
		TotalSent:     len(p.Sent),
		TotalReceived: len(p.Received),
		TotalReplies:  len(p.Replies),
		TotalLeads:    len(p.PositiveReplies),
	}
	s.LeadRate = percent(s.TotalLeads, s.TotalSent)

	var n int64
	for i := range p.Replies {
		if p.Replies[i].ReplyTimeDeltaSeconds != nil {
			n++
		}
	}
	if n == 0 {
		return s
	}

	// sum quotients and remainders separately so the total cannot overflow
	var quotient, remainder int64
	for i := range p.Replies {
		if d := p.Replies[i].ReplyTimeDeltaSeconds; d != nil {
			quotient += *d / n
			remainder += *d % n
		}
	}
	s.AvgReplyTimeSeconds = quotient + remainder/n
	s.HasAvgReplyTime = true
	return s
}

// AvgReplyTimeString renders the mean reply latency as "{d}d {h}h {m}m"
func (s Summary) AvgReplyTimeString() string {
	if !s.HasAvgReplyTime {
		return NotAvailable
	}
	return FormatSeconds(s.AvgReplyTimeSeconds)
}

// FormatDuration renders d as whole days, hours and minutes, e.g. "1d 4h 30m"
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int64(d / time.Second))
}

// FormatSeconds renders a number of seconds like FormatDuration; negatives render as zero
func FormatSeconds(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / secondsPerDay
	seconds %= secondsPerDay
	return fmt.Sprintf("%dd %dh %dm", days, seconds/3600, seconds%3600/60)
}
