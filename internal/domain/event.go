package domain

import "time"

// Direction is the direction of an email action
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// Directions lists the directions in reporting order
var Directions = []Direction{DirectionSent, DirectionReceived}

// Sentiment is the classified tone of a reply
type Sentiment string

const (
	SentimentPositive      Sentiment = "positive"
	SentimentNeutral       Sentiment = "neutral"
	SentimentNegative      Sentiment = "negative"
	SentimentNotApplicable Sentiment = "N/A"
)

// Sentiments lists the sentiments in reporting order
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative, SentimentNotApplicable}

// Email represents one recorded email send or receive action
type Email struct {
	ID                    int64     `json:"id"`
	MessageID             string    `json:"message_id"`
	InReplyTo             string    `json:"in_reply_to,omitempty"`
	Timestamp             time.Time `json:"timestamp"`
	Direction             Direction `json:"direction"`
	IsReply               bool      `json:"is_reply"`
	SenderEmail           string    `json:"sender_email"`
	RecipientEmail        string    `json:"recipient_email"`
	CompanyName           string    `json:"company_name"`
	CompanySize           string    `json:"company_size"`
	CompanyIndustry       string    `json:"company_industry"`
	ContactTitle          string    `json:"contact_title"`
	ReplySentiment        Sentiment `json:"reply_sentiment"`
	AIAgent               string    `json:"ai_agent"`
	City                  string    `json:"city"`
	ReplyTimeDeltaSeconds *int64    `json:"reply_time_delta_seconds,omitempty"`
}
