package metrics

import (
	"slices"
	"sort"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

// Dimension is a descriptive column events can be grouped by
type Dimension string

const (
	DimensionContactTitle Dimension = "contact_title"
	DimensionAIAgent      Dimension = "ai_agent"
	DimensionCity         Dimension = "city"
	DimensionIndustry     Dimension = "company_industry"
)

// Value extracts the dimension value from an event
func (d Dimension) Value(e *domain.Email) string {
	switch d {
	case DimensionContactTitle:
		return e.ContactTitle
	case DimensionAIAgent:
		return e.AIAgent
	case DimensionCity:
		return e.City
	case DimensionIndustry:
		return e.CompanyIndustry
	default:
		return ""
	}
}

// DimensionRate is one row of a categorical rate table
type DimensionRate struct {
	Value     string
	Sent      int
	Replies   int
	Leads     int
	ReplyRate float64
	LeadRate  float64
}

// RateOptions restricts the rows of a rate table
type RateOptions struct {
	// Allow keeps only the listed values when non-empty
	Allow []string
	// RequireSent drops groups without any sent email
	RequireSent bool
}

// RateTable outer-joins sent, reply and lead counts on dimension d and derives
// reply and lead rates. Absent counts are 0 and so is any rate over zero sent.
// Rows are ordered by lead rate, highest first; ties keep first-seen order.
func RateTable(p Partitions, d Dimension, opts RateOptions) []DimensionRate {
	index := make(map[string]int)
	var rows []DimensionRate
	row := func(e *domain.Email) int {
		v := d.Value(e)
		i, ok := index[v]
		if !ok {
			i = len(rows)
			index[v] = i
			rows = append(rows, DimensionRate{Value: v})
		}
		return i
	}

	for i := range p.Sent {
		j := row(&p.Sent[i])
		rows[j].Sent++
	}
	for i := range p.Replies {
		j := row(&p.Replies[i])
		rows[j].Replies++
	}
	for i := range p.PositiveReplies {
		j := row(&p.PositiveReplies[i])
		rows[j].Leads++
	}

	out := make([]DimensionRate, 0, len(rows))
	for _, r := range rows {
		if len(opts.Allow) > 0 && !slices.Contains(opts.Allow, r.Value) {
			continue
		}
		if opts.RequireSent && r.Sent == 0 {
			continue
		}
		r.ReplyRate = percent(r.Replies, r.Sent)
		r.LeadRate = percent(r.Leads, r.Sent)
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LeadRate > out[j].LeadRate
	})
	return out
}
