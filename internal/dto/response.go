package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"start date must be before end date"`
}

// SummaryData represents the top-level counters
type SummaryData struct {
	TotalSent           int     `json:"total_sent" example:"5000"`
	TotalReceived       int     `json:"total_received" example:"3000"`
	TotalReplies        int     `json:"total_replies" example:"2000"`
	TotalLeads          int     `json:"total_leads" example:"650"`
	LeadRate            float64 `json:"lead_rate" example:"13.0"`
	AvgReplyTime        string  `json:"avg_reply_time" example:"5d 1h 12m"`
	AvgReplyTimeSeconds *int64  `json:"avg_reply_time_seconds,omitempty" example:"436320"`
}

// DailyCountData represents one day of one direction in the time series
type DailyCountData struct {
	Date      string `json:"date" example:"2025-03-03"`
	Direction string `json:"direction" example:"sent"`
	Count     int    `json:"count" example:"42"`
}

// SentimentData represents the reply count of one sentiment
type SentimentData struct {
	Sentiment string `json:"sentiment" example:"positive"`
	Count     int    `json:"count" example:"12"`
}

// DimensionRateData represents one row of a categorical rate table
type DimensionRateData struct {
	Value     string  `json:"value" example:"Agent Alpha"`
	Sent      int     `json:"total_sent" example:"120"`
	Replies   int     `json:"total_replies" example:"48"`
	Leads     int     `json:"total_leads" example:"16"`
	ReplyRate float64 `json:"reply_rate" example:"40.0"`
	LeadRate  float64 `json:"lead_rate" example:"13.33"`
}

// WeekdayData represents the reply count of one day of the week
type WeekdayData struct {
	Day     string `json:"day" example:"Monday"`
	Replies int    `json:"replies" example:"30"`
}

// HourData represents the reply count of one hour of the day
type HourData struct {
	Hour    int `json:"hour" example:"14"`
	Replies int `json:"replies" example:"9"`
}

// LatencyBinData represents one day bucket of the positive reply latency histogram
type LatencyBinData struct {
	Day               int     `json:"day" example:"1"`
	Label             string  `json:"label" example:"Day 1"`
	Count             int     `json:"count" example:"8"`
	CumulativeCount   int     `json:"cumulative_count" example:"8"`
	CumulativePercent float64 `json:"cumulative_percent" example:"12.5"`
}

// CompanyData represents the positive reply count of one company
type CompanyData struct {
	Company         string `json:"company" example:"Acme Corp"`
	PositiveReplies int    `json:"positive_replies" example:"4"`
}

// SnapshotResponse represents the full dashboard dataset for one date range
type SnapshotResponse struct {
	Start        string              `json:"start" example:"2025-03-03"`
	End          string              `json:"end" example:"2025-03-09"`
	Empty        bool                `json:"empty"`
	Message      string              `json:"message,omitempty" example:"No data found for the selected time range."`
	Summary      SummaryData         `json:"summary"`
	Daily        []DailyCountData    `json:"daily"`
	Sentiment    []SentimentData     `json:"sentiment"`
	ByTitle      []DimensionRateData `json:"by_title"`
	ByAgent      []DimensionRateData `json:"by_agent"`
	ByCity       []DimensionRateData `json:"by_city"`
	ByIndustry   []DimensionRateData `json:"by_industry"`
	ByWeekday    []WeekdayData       `json:"by_weekday"`
	ByHour       []HourData          `json:"by_hour"`
	ReplyLatency []LatencyBinData    `json:"reply_latency"`
	TopCompanies []CompanyData       `json:"top_companies"`
	GeneratedAt  string              `json:"generated_at" example:"2025-03-09T12:00:00Z"`
}
