package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository"
)

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS emails (
		id Int64,
		message_id String,
		in_reply_to String,
		timestamp DateTime64(3, 'UTC'),
		direction LowCardinality(String),
		is_reply Bool,
		sender_email String,
		recipient_email String,
		company_name String,
		company_size LowCardinality(String),
		company_industry LowCardinality(String),
		contact_title LowCardinality(String),
		reply_sentiment LowCardinality(String),
		ai_agent LowCardinality(String),
		city LowCardinality(String),
		reply_time_delta_seconds Nullable(Int64)
	) ENGINE = MergeTree
	ORDER BY (timestamp, id)
	PARTITION BY toYYYYMM(timestamp)
	SETTINGS index_granularity = 8192
	`

// emailRow mirrors the emails table for scanning
type emailRow struct {
	ID                    int64     `ch:"id"`
	MessageID             string    `ch:"message_id"`
	InReplyTo             string    `ch:"in_reply_to"`
	Timestamp             time.Time `ch:"timestamp"`
	Direction             string    `ch:"direction"`
	IsReply               bool      `ch:"is_reply"`
	SenderEmail           string    `ch:"sender_email"`
	RecipientEmail        string    `ch:"recipient_email"`
	CompanyName           string    `ch:"company_name"`
	CompanySize           string    `ch:"company_size"`
	CompanyIndustry       string    `ch:"company_industry"`
	ContactTitle          string    `ch:"contact_title"`
	ReplySentiment        string    `ch:"reply_sentiment"`
	AIAgent               string    `ch:"ai_agent"`
	City                  string    `ch:"city"`
	ReplyTimeDeltaSeconds *int64    `ch:"reply_time_delta_seconds"`
}

func (r *emailRow) toDomain() domain.Email {
	return domain.Email{
		ID:                    r.ID,
		MessageID:             r.MessageID,
		InReplyTo:             r.InReplyTo,
		Timestamp:             r.Timestamp,
		Direction:             domain.Direction(r.Direction),
		IsReply:               r.IsReply,
		SenderEmail:           r.SenderEmail,
		RecipientEmail:        r.RecipientEmail,
		CompanyName:           r.CompanyName,
		CompanySize:           r.CompanySize,
		CompanyIndustry:       r.CompanyIndustry,
		ContactTitle:          r.ContactTitle,
		ReplySentiment:        domain.Sentiment(r.ReplySentiment),
		AIAgent:               r.AIAgent,
		City:                  r.City,
		ReplyTimeDeltaSeconds: r.ReplyTimeDeltaSeconds,
	}
}

// Repository implements EmailRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the ClickHouse schema with a MergeTree engine
func (r *Repository) InitSchema(ctx context.Context) error {
	if err := r.client.Conn().Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create emails table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// ResetSchema drops the emails table and creates it again
func (r *Repository) ResetSchema(ctx context.Context) error {
	if err := r.client.Conn().Exec(ctx, "DROP TABLE IF EXISTS emails"); err != nil {
		return fmt.Errorf("failed to drop emails table: %w", err)
	}

	r.log.Info("Dropped emails table")
	return r.InitSchema(ctx)
}

// InsertBatch inserts a batch of emails into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, emails []*domain.Email) (int, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO emails")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, email := range emails {
		if err := batch.Append(repository.Values(email)...); err != nil {
			return 0, fmt.Errorf("failed to append email to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// FetchRange selects the emails of an inclusive timestamp range
func (r *Repository) FetchRange(ctx context.Context, dr domain.DateRange) ([]domain.Email, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM emails
		WHERE timestamp BETWEEN ? AND ?
		ORDER BY timestamp, id
	`, strings.Join(repository.Columns, ", "))

	var rows []emailRow
	if err := r.client.Conn().Select(ctx, &rows, query, dr.Start.UTC(), dr.End.UTC()); err != nil {
		return nil, fmt.Errorf("failed to query emails: %w", err)
	}

	emails := make([]domain.Email, len(rows))
	for i := range rows {
		emails[i] = rows[i].toDomain()
	}

	r.log.Debug("Fetched emails",
		zap.Time("start", dr.Start),
		zap.Time("end", dr.End),
		zap.Int("count", len(emails)))

	return emails, nil
}

// MaxID returns the largest stored email id
func (r *Repository) MaxID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.client.Conn().QueryRow(ctx, "SELECT max(id) FROM emails").Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to query max id: %w", err)
	}
	return id, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}
