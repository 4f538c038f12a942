package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository"
)

const insertBatchSize = 500

// emailRecord is the gorm model of the emails table
type emailRecord struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement:false"`
	MessageID             string    `gorm:"size:64"`
	InReplyTo             string    `gorm:"size:64"`
	Timestamp             time.Time `gorm:"not null;index"`
	Direction             string    `gorm:"size:16;not null"`
	IsReply               bool      `gorm:"not null;default:false"`
	SenderEmail           string    `gorm:"size:255"`
	RecipientEmail        string    `gorm:"size:255"`
	CompanyName           string    `gorm:"size:255"`
	CompanySize           string    `gorm:"size:50"`
	CompanyIndustry       string    `gorm:"size:100"`
	ContactTitle          string    `gorm:"size:100"`
	ReplySentiment        string    `gorm:"size:16;default:N/A"`
	AIAgent               string    `gorm:"column:ai_agent;size:100"`
	City                  string    `gorm:"size:100"`
	ReplyTimeDeltaSeconds *int64
}

func (emailRecord) TableName() string {
	return repository.TableName
}

func newRecord(e *domain.Email) emailRecord {
	return emailRecord{
		ID:                    e.ID,
		MessageID:             e.MessageID,
		InReplyTo:             e.InReplyTo,
		Timestamp:             e.Timestamp.UTC(),
		Direction:             string(e.Direction),
		IsReply:               e.IsReply,
		SenderEmail:           e.SenderEmail,
		RecipientEmail:        e.RecipientEmail,
		CompanyName:           e.CompanyName,
		CompanySize:           e.CompanySize,
		CompanyIndustry:       e.CompanyIndustry,
		ContactTitle:          e.ContactTitle,
		ReplySentiment:        string(e.ReplySentiment),
		AIAgent:               e.AIAgent,
		City:                  e.City,
		ReplyTimeDeltaSeconds: e.ReplyTimeDeltaSeconds,
	}
}

func (r *emailRecord) toDomain() domain.Email {
	return domain.Email{
		ID:                    r.ID,
		MessageID:             r.MessageID,
		InReplyTo:             r.InReplyTo,
		Timestamp:             r.Timestamp.UTC(),
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

// Repository implements EmailRepository on an embedded SQLite file
type Repository struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open opens (or creates) the SQLite database at path
func Open(path string, log *zap.Logger) (*Repository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// SQLite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	log.Info("SQLite database opened", zap.String("path", path))

	return &Repository{db: db, log: log}, nil
}

// InitSchema migrates the emails table
func (r *Repository) InitSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&emailRecord{}); err != nil {
		return fmt.Errorf("failed to migrate emails table: %w", err)
	}

	r.log.Info("SQLite schema initialized successfully")
	return nil
}

// ResetSchema drops the emails table and migrates it again
func (r *Repository) ResetSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Migrator().DropTable(&emailRecord{}); err != nil {
		return fmt.Errorf("failed to drop emails table: %w", err)
	}

	r.log.Info("Dropped emails table")
	return r.InitSchema(ctx)
}

// InsertBatch inserts a batch of emails
func (r *Repository) InsertBatch(ctx context.Context, emails []*domain.Email) (int, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	records := make([]emailRecord, len(emails))
	for i, e := range emails {
		records[i] = newRecord(e)
	}

	result := r.db.WithContext(ctx).CreateInBatches(records, insertBatchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert emails: %w", result.Error)
	}

	return int(result.RowsAffected), nil
}

// FetchRange selects the emails of an inclusive timestamp range
func (r *Repository) FetchRange(ctx context.Context, dr domain.DateRange) ([]domain.Email, error) {
	var records []emailRecord
	err := r.db.WithContext(ctx).
		Where("timestamp BETWEEN ? AND ?", dr.Start.UTC(), dr.End.UTC()).
		Order("timestamp, id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query emails: %w", err)
	}

	emails := make([]domain.Email, len(records))
	for i := range records {
		emails[i] = records[i].toDomain()
	}

	return emails, nil
}

// MaxID returns the largest stored email id
func (r *Repository) MaxID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).
		Model(&emailRecord{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&id).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query max id: %w", err)
	}
	return id, nil
}

// Ping checks if the database handle is alive
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database handle
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
