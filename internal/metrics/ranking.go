package metrics

import (
	"sort"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

// DefaultTopCompanies is the length of the company ranking
const DefaultTopCompanies = 10

// CompanyCount is the number of events attributed to one company
type CompanyCount struct {
	Company string
	Count   int
}

// SentimentCount is the number of replies with one sentiment
type SentimentCount struct {
	Sentiment domain.Sentiment
	Count     int
}

// TopCompanies ranks companies by event count, highest first, and keeps the
// first n. Ties keep the order in which companies first appear.
func TopCompanies(events []domain.Email, n int) []CompanyCount {
	if n <= 0 {
		return nil
	}

	index := make(map[string]int)
	var ranked []CompanyCount
	for _, e := range events {
		i, ok := index[e.CompanyName]
		if !ok {
			i = len(ranked)
			index[e.CompanyName] = i
			ranked = append(ranked, CompanyCount{Company: e.CompanyName})
		}
		ranked[i].Count++
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SentimentBreakdown counts replies per sentiment. Only sentiments that occur
// are returned, in positive, neutral, negative, N/A order.
func SentimentBreakdown(replies []domain.Email) []SentimentCount {
	counts := make(map[domain.Sentiment]int)
	for _, e := range replies {
		counts[e.ReplySentiment]++
	}

	var out []SentimentCount
	for _, s := range domain.Sentiments {
		if n := counts[s]; n > 0 {
			out = append(out, SentimentCount{Sentiment: s, Count: n})
		}
	}
	return out
}
