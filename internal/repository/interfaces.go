package repository

import (
	"context"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

// TableName is the table every backend stores emails in
const TableName = "emails"

// Columns lists the emails table columns in insert order
var Columns = []string{
	"id",
	"message_id",
	"in_reply_to",
	"timestamp",
	"direction",
	"is_reply",
	"sender_email",
	"recipient_email",
	"company_name",
	"company_size",
	"company_industry",
	"contact_title",
	"reply_sentiment",
	"ai_agent",
	"city",
	"reply_time_delta_seconds",
}

// EmailRepository defines the interface for email event storage operations
type EmailRepository interface {
	// InitSchema creates the emails table if it does not exist
	InitSchema(ctx context.Context) error

	// ResetSchema drops and recreates the emails table
	ResetSchema(ctx context.Context) error

	// InsertBatch inserts a batch of emails into the storage
	InsertBatch(ctx context.Context, emails []*domain.Email) (int, error)

	// FetchRange returns every email whose timestamp lies in the inclusive range, oldest first
	FetchRange(ctx context.Context, r domain.DateRange) ([]domain.Email, error)

	// MaxID returns the largest stored email id, or 0 when the table is empty
	MaxID(ctx context.Context) (int64, error)

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}

// Values returns the column values of e in Columns order
func Values(e *domain.Email) []any {
	return []any{
		e.ID,
		e.MessageID,
		e.InReplyTo,
		e.Timestamp.UTC(),
		string(e.Direction),
		e.IsReply,
		e.SenderEmail,
		e.RecipientEmail,
		e.CompanyName,
		e.CompanySize,
		e.CompanyIndustry,
		e.ContactTitle,
		string(e.ReplySentiment),
		e.AIAgent,
		e.City,
		e.ReplyTimeDeltaSeconds,
	}
}
