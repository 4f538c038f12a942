package metrics

import (
	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

// DefaultTargetTitles is the contact title allow-list for the title breakdown
var DefaultTargetTitles = []string{"Founder", "HR Manager", "CTO", "CEO"}

// Options tunes the parts of the pipeline that are not fixed by the data
type Options struct {
	TargetTitles []string
	TopCompanies int
}

// DefaultOptions returns the options the dashboard uses out of the box
func DefaultOptions() Options {
	return Options{
		TargetTitles: DefaultTargetTitles,
		TopCompanies: DefaultTopCompanies,
	}
}

// Snapshot is the full set of derived tables for one query
type Snapshot struct {
	Range domain.DateRange
	Empty bool

	Partitions Partitions
	Summary    Summary

	Daily        []DailyCount
	Sentiment    []SentimentCount
	ByTitle      []DimensionRate
	ByAgent      []DimensionRate
	ByCity       []DimensionRate
	ByIndustry   []DimensionRate
	ByWeekday    []WeekdayCount
	ByHour       []HourCount
	ReplyLatency []LatencyBin
	TopCompanies []CompanyCount
}

// Compute derives every aggregate for events fetched for range r. An empty
// event collection yields an Empty snapshot with zero counters and no rows.
func Compute(events []domain.Email, r domain.DateRange, opts Options) *Snapshot {
	snap := &Snapshot{Range: r}
	if len(events) == 0 {
		snap.Empty = true
		return snap
	}

	loc := r.Start.Location()
	p := Partition(events)

	snap.Partitions = p
	snap.Summary = Summarize(p)
	snap.Daily = DailySeries(events, r)
	snap.Sentiment = SentimentBreakdown(p.Replies)
	snap.ByTitle = RateTable(p, DimensionContactTitle, RateOptions{Allow: opts.TargetTitles})
	snap.ByAgent = RateTable(p, DimensionAIAgent, RateOptions{RequireSent: true})
	snap.ByCity = RateTable(p, DimensionCity, RateOptions{})
	snap.ByIndustry = RateTable(p, DimensionIndustry, RateOptions{})
	snap.ByWeekday = WeekdayDistribution(p.Replies, loc)
	snap.ByHour = HourlyDistribution(p.Replies, loc)
	snap.ReplyLatency = ReplyLatency(p.PositiveReplies)
	snap.TopCompanies = TopCompanies(p.PositiveReplies, opts.TopCompanies)
	return snap
}
