package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository"
)

var dialect = goqu.Dialect("postgres")

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS emails (
		id BIGINT PRIMARY KEY,
		message_id TEXT NOT NULL DEFAULT '',
		in_reply_to TEXT NOT NULL DEFAULT '',
		timestamp TIMESTAMPTZ NOT NULL,
		direction TEXT NOT NULL CHECK (direction IN ('sent', 'received')),
		is_reply BOOLEAN NOT NULL DEFAULT FALSE,
		sender_email TEXT NOT NULL DEFAULT '',
		recipient_email TEXT NOT NULL DEFAULT '',
		company_name TEXT NOT NULL DEFAULT '',
		company_size TEXT NOT NULL DEFAULT '',
		company_industry TEXT NOT NULL DEFAULT '',
		contact_title TEXT NOT NULL DEFAULT '',
		reply_sentiment TEXT NOT NULL DEFAULT 'N/A'
			CHECK (reply_sentiment IN ('positive', 'neutral', 'negative', 'N/A')),
		ai_agent TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		reply_time_delta_seconds BIGINT
	);
	CREATE INDEX IF NOT EXISTS emails_timestamp_idx ON emails (timestamp);
	`

// Pool is the subset of *pgxpool.Pool the repository uses
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
	Close()
}

// emailRow mirrors the emails table for scanning
type emailRow struct {
	ID                    int64     `db:"id"`
	MessageID             string    `db:"message_id"`
	InReplyTo             string    `db:"in_reply_to"`
	Timestamp             time.Time `db:"timestamp"`
	Direction             string    `db:"direction"`
	IsReply               bool      `db:"is_reply"`
	SenderEmail           string    `db:"sender_email"`
	RecipientEmail        string    `db:"recipient_email"`
	CompanyName           string    `db:"company_name"`
	CompanySize           string    `db:"company_size"`
	CompanyIndustry       string    `db:"company_industry"`
	ContactTitle          string    `db:"contact_title"`
	ReplySentiment        string    `db:"reply_sentiment"`
	AIAgent               string    `db:"ai_agent"`
	City                  string    `db:"city"`
	ReplyTimeDeltaSeconds *int64    `db:"reply_time_delta_seconds"`
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

// Repository implements EmailRepository for Postgres
type Repository struct {
	pool Pool
	log  *zap.Logger
}

// NewRepository creates a new Postgres repository
func NewRepository(pool Pool, log *zap.Logger) *Repository {
	return &Repository{
		pool: pool,
		log:  log,
	}
}

// InitSchema creates the emails table and its timestamp index
func (r *Repository) InitSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create emails table: %w", err)
	}

	r.log.Info("Postgres schema initialized successfully")
	return nil
}

// ResetSchema drops the emails table and creates it again
func (r *Repository) ResetSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "DROP TABLE IF EXISTS emails"); err != nil {
		return fmt.Errorf("failed to drop emails table: %w", err)
	}

	r.log.Info("Dropped emails table")
	return r.InitSchema(ctx)
}

// InsertBatch copies a batch of emails into Postgres
func (r *Repository) InsertBatch(ctx context.Context, emails []*domain.Email) (int, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	copied, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{repository.TableName},
		repository.Columns,
		pgx.CopyFromSlice(len(emails), func(i int) ([]any, error) {
			return repository.Values(emails[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy emails: %w", err)
	}

	return int(copied), nil
}

// FetchRange selects the emails of an inclusive timestamp range
func (r *Repository) FetchRange(ctx context.Context, dr domain.DateRange) ([]domain.Email, error) {
	query, args, err := fetchRangeQuery(dr)
	if err != nil {
		return nil, fmt.Errorf("failed to build range query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query emails: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[emailRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan emails: %w", err)
	}

	emails := make([]domain.Email, len(records))
	for i := range records {
		emails[i] = records[i].toDomain()
	}

	r.log.Debug("Fetched emails",
		zap.Time("start", dr.Start),
		zap.Time("end", dr.End),
		zap.Int("count", len(emails)))

	return emails, nil
}

// MaxID returns the largest stored email id
func (r *Repository) MaxID(ctx context.Context) (int64, error) {
	query, _, err := maxIDQuery()
	if err != nil {
		return 0, fmt.Errorf("failed to build max id query: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to query max id: %w", err)
	}
	return id, nil
}

// Ping checks if the Postgres pool is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the Postgres pool
func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func fetchRangeQuery(dr domain.DateRange) (string, []any, error) {
	columns := make([]any, len(repository.Columns))
	for i, c := range repository.Columns {
		columns[i] = c
	}

	return dialect.From(repository.TableName).
		Select(columns...).
		Where(goqu.C("timestamp").Between(goqu.Range(dr.Start.UTC(), dr.End.UTC()))).
		Order(goqu.C("timestamp").Asc(), goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
}

func maxIDQuery() (string, []any, error) {
	return dialect.From(repository.TableName).
		Select(goqu.COALESCE(goqu.MAX("id"), 0)).
		ToSQL()
}
