package metrics

import "github.com/BarkinBalci/email-analytics-dashboard/internal/domain"

// Partitions holds the filtered sub-collections every aggregate is built from
type Partitions struct {
	Sent            []domain.Email
	Received        []domain.Email
	Replies         []domain.Email
	PositiveReplies []domain.Email
}

// Partition splits events by direction, reply flag and sentiment.
// Replies and PositiveReplies are subsets of Received.
func Partition(events []domain.Email) Partitions {
	var p Partitions
	for _, e := range events {
		switch e.Direction {
		case domain.DirectionSent:
			p.Sent = append(p.Sent, e)
		case domain.DirectionReceived:
			p.Received = append(p.Received, e)
			if !e.IsReply {
				continue
			}
			p.Replies = append(p.Replies, e)
			if e.ReplySentiment == domain.SentimentPositive {
				p.PositiveReplies = append(p.PositiveReplies, e)
			}
		}
	}
	return p
}

// percent returns num/den*100, or 0 when den is 0
func percent(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
