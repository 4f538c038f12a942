package service

import (
	"fmt"
	"time"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/dto"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/metrics"
)

func toResponse(snap *metrics.Snapshot, loc *time.Location, generatedAt time.Time) *dto.SnapshotResponse {
	response := &dto.SnapshotResponse{
		Start:        snap.Range.Start.In(loc).Format(time.DateOnly),
		End:          snap.Range.End.In(loc).Format(time.DateOnly),
		Empty:        snap.Empty,
		Summary:      toSummary(snap.Summary),
		Daily:        make([]dto.DailyCountData, len(snap.Daily)),
		Sentiment:    make([]dto.SentimentData, len(snap.Sentiment)),
		ByTitle:      toRates(snap.ByTitle),
		ByAgent:      toRates(snap.ByAgent),
		ByCity:       toRates(snap.ByCity),
		ByIndustry:   toRates(snap.ByIndustry),
		ByWeekday:    make([]dto.WeekdayData, len(snap.ByWeekday)),
		ByHour:       make([]dto.HourData, len(snap.ByHour)),
		ReplyLatency: make([]dto.LatencyBinData, len(snap.ReplyLatency)),
		TopCompanies: make([]dto.CompanyData, len(snap.TopCompanies)),
		GeneratedAt:  generatedAt.UTC().Format(time.RFC3339),
	}

	if snap.Empty {
		response.Message = EmptyRangeMessage
	}

	for i, d := range snap.Daily {
		response.Daily[i] = dto.DailyCountData{
			Date:      d.Day.Format(time.DateOnly),
			Direction: string(d.Direction),
			Count:     d.Count,
		}
	}
	for i, s := range snap.Sentiment {
		response.Sentiment[i] = dto.SentimentData{Sentiment: string(s.Sentiment), Count: s.Count}
	}
	for i, w := range snap.ByWeekday {
		response.ByWeekday[i] = dto.WeekdayData{Day: w.Day.String(), Replies: w.Count}
	}
	for i, h := range snap.ByHour {
		response.ByHour[i] = dto.HourData{Hour: h.Hour, Replies: h.Count}
	}
	for i, b := range snap.ReplyLatency {
		response.ReplyLatency[i] = dto.LatencyBinData{
			Day:               b.Day,
			Label:             fmt.Sprintf("Day %d", b.Day),
			Count:             b.Count,
			CumulativeCount:   b.CumulativeCount,
			CumulativePercent: b.CumulativePercent,
		}
	}
	for i, c := range snap.TopCompanies {
		response.TopCompanies[i] = dto.CompanyData{Company: c.Company, PositiveReplies: c.Count}
	}

	return response
}

func toSummary(s metrics.Summary) dto.SummaryData {
	summary := dto.SummaryData{
		TotalSent:     s.TotalSent,
		TotalReceived: s.TotalReceived,
		TotalReplies:  s.TotalReplies,
		TotalLeads:    s.TotalLeads,
		LeadRate:      s.LeadRate,
		AvgReplyTime:  s.AvgReplyTimeString(),
	}
	if s.HasAvgReplyTime {
		seconds := s.AvgReplyTimeSeconds
		summary.AvgReplyTimeSeconds = &seconds
	}
	return summary
}

func toRates(rows []metrics.DimensionRate) []dto.DimensionRateData {
	out := make([]dto.DimensionRateData, len(rows))
	for i, r := range rows {
		out[i] = dto.DimensionRateData{
			Value:     r.Value,
			Sent:      r.Sent,
			Replies:   r.Replies,
			Leads:     r.Leads,
			ReplyRate: r.ReplyRate,
			LeadRate:  r.LeadRate,
		}
	}
	return out
}
