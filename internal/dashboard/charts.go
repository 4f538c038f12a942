package dashboard

import (
	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/dto"
)

const vegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"

// spec is a vega-lite chart specification
type spec map[string]any

func baseSpec(title string, p Palette, data any) spec {
	return spec{
		"$schema":    vegaLiteSchema,
		"title":      title,
		"width":      "container",
		"height":     300,
		"background": p.Background,
		"data":       map[string]any{"values": data},
		"config": map[string]any{
			"title":  map[string]any{"color": p.Text},
			"axis":   map[string]any{"labelColor": p.Text, "titleColor": p.Text},
			"legend": map[string]any{"labelColor": p.Text, "titleColor": p.Text},
			"view":   map[string]any{"stroke": nil},
		},
	}
}

func directionDomain() []string {
	out := make([]string, len(domain.Directions))
	for i, d := range domain.Directions {
		out[i] = string(d)
	}
	return out
}

func sentimentDomain() []string {
	out := make([]string, len(domain.Sentiments))
	for i, s := range domain.Sentiments {
		out[i] = string(s)
	}
	return out
}

func dailyChart(s *dto.SnapshotResponse, p Palette) spec {
	c := baseSpec("Emails Over Time", p, s.Daily)
	c["height"] = 400
	c["mark"] = map[string]any{"type": "line", "point": true}
	c["encoding"] = map[string]any{
		"x": map[string]any{"field": "date", "type": "temporal", "title": "Date"},
		"y": map[string]any{"field": "count", "type": "quantitative", "title": "Number of Emails"},
		"color": map[string]any{
			"field": "direction", "type": "nominal", "title": "Direction",
			"scale": map[string]any{"domain": directionDomain(), "range": p.Directions},
		},
		"tooltip": []map[string]any{
			{"field": "date", "type": "temporal"},
			{"field": "direction", "type": "nominal"},
			{"field": "count", "type": "quantitative"},
		},
	}
	return c
}

func sentimentChart(s *dto.SnapshotResponse, p Palette) spec {
	c := baseSpec("Sentiment Analysis on Received Replies", p, s.Sentiment)
	c["encoding"] = map[string]any{
		"theta": map[string]any{"field": "count", "type": "quantitative", "stack": true},
		"order": map[string]any{"field": "count", "sort": "descending"},
	}
	c["layer"] = []map[string]any{
		{
			"mark": map[string]any{"type": "arc", "outerRadius": 120},
			"encoding": map[string]any{
				"color": map[string]any{
					"field": "sentiment", "type": "nominal", "title": "Sentiment",
					"scale": map[string]any{"domain": sentimentDomain(), "range": p.Sentiments},
				},
				"tooltip": []map[string]any{
					{"field": "sentiment", "type": "nominal"},
					{"field": "count", "type": "quantitative"},
				},
			},
		},
		{
			"mark":     map[string]any{"type": "text", "radius": 140},
			"encoding": map[string]any{"text": map[string]any{"field": "count"}, "color": map[string]any{"value": p.Text}},
		},
	}
	return c
}

func leadRateChart(title, axisTitle string, rows []dto.DimensionRateData, p Palette) spec {
	c := baseSpec(title, p, rows)
	c["mark"] = "bar"
	c["encoding"] = map[string]any{
		"x":     map[string]any{"field": "value", "type": "nominal", "title": axisTitle, "sort": "-y"},
		"y":     map[string]any{"field": "lead_rate", "type": "quantitative", "title": "Lead Rate (%)"},
		"color": map[string]any{"field": "value", "type": "nominal", "title": axisTitle},
		"tooltip": []map[string]any{
			{"field": "value", "type": "nominal", "title": axisTitle},
			{"field": "total_sent", "type": "quantitative", "title": "Total Sent"},
			{"field": "total_leads", "type": "quantitative", "title": "Total Leads"},
			{"field": "lead_rate", "type": "quantitative", "title": "Lead Rate (%)", "format": ".2f"},
		},
	}
	return c
}

func weekdayChart(s *dto.SnapshotResponse, p Palette) spec {
	order := make([]string, len(s.ByWeekday))
	for i, w := range s.ByWeekday {
		order[i] = w.Day
	}

	c := baseSpec("Replies by Day of Week", p, s.ByWeekday)
	c["mark"] = "bar"
	c["encoding"] = map[string]any{
		"x":       map[string]any{"field": "day", "type": "nominal", "title": "Day of Week", "sort": order},
		"y":       map[string]any{"field": "replies", "type": "quantitative", "title": "Total Replies Received"},
		"color":   map[string]any{"field": "day", "type": "nominal", "scale": map[string]any{"domain": order}, "legend": nil},
		"tooltip": []map[string]any{{"field": "day", "type": "nominal"}, {"field": "replies", "type": "quantitative"}},
	}
	return c
}

func hourlyChart(s *dto.SnapshotResponse, p Palette) spec {
	c := baseSpec("Replies by Time of Day", p, s.ByHour)
	c["mark"] = map[string]any{"type": "bar", "color": p.Primary}
	c["encoding"] = map[string]any{
		"x":       map[string]any{"field": "hour", "type": "ordinal", "title": "Hour of Day (24hr)"},
		"y":       map[string]any{"field": "replies", "type": "quantitative", "title": "Total Replies Received"},
		"tooltip": []map[string]any{{"field": "hour", "type": "ordinal"}, {"field": "replies", "type": "quantitative"}},
	}
	return c
}

func latencyChart(s *dto.SnapshotResponse, p Palette) spec {
	c := baseSpec("Positive Replies Received By Day After Sent", p, s.ReplyLatency)
	c["mark"] = map[string]any{"type": "bar", "color": p.Primary}
	c["encoding"] = map[string]any{
		"x": map[string]any{"field": "label", "type": "nominal", "title": "Reply Day",
			"sort": map[string]any{"field": "day", "order": "ascending"}},
		"y": map[string]any{"field": "count", "type": "quantitative", "title": "No. of Positive Replies"},
		"tooltip": []map[string]any{
			{"field": "label", "type": "nominal", "title": "Reply Day"},
			{"field": "count", "type": "quantitative", "title": "Count"},
			{"field": "cumulative_percent", "type": "quantitative", "title": "Cumulative Percentage (%)", "format": ".2f"},
		},
	}
	return c
}
