package generator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository"
)

// BatchWriterConfig configures the batch writer
type BatchWriterConfig struct {
	MaxBatchSize int
	FlushTimeout time.Duration
}

// BatchWriter handles batching and writing emails to the repository
type BatchWriter struct {
	repository repository.EmailRepository
	config     BatchWriterConfig
	log        *zap.Logger
}

// NewBatchWriter creates a new batch writer
func NewBatchWriter(repo repository.EmailRepository, config BatchWriterConfig, log *zap.Logger) *BatchWriter {
	if config.MaxBatchSize <= 0 {
		config.MaxBatchSize = 1
	}
	if config.FlushTimeout <= 0 {
		config.FlushTimeout = time.Second
	}
	return &BatchWriter{
		repository: repo,
		config:     config,
		log:        log,
	}
}

// Start consumes emails until in is closed, writing them in batches.
// It stops at the first failed batch and returns how many emails were written.
func (w *BatchWriter) Start(ctx context.Context, in <-chan *domain.Email) (int, error) {
	ticker := time.NewTicker(w.config.FlushTimeout)
	defer ticker.Stop()

	written := 0
	batch := make([]*domain.Email, 0, w.config.MaxBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := w.writeBatch(ctx, batch)
		written += n
		batch = make([]*domain.Email, 0, w.config.MaxBatchSize)
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Batch writer shutting down", zap.Int("pending", len(batch)))
			return written, ctx.Err()

		case email, ok := <-in:
			if !ok {
				if len(batch) > 0 {
					w.log.Info("Flushing final batch", zap.Int("email_count", len(batch)))
				}
				return written, flush()
			}

			batch = append(batch, email)

			if len(batch) >= w.config.MaxBatchSize {
				w.log.Debug("Batch size threshold reached", zap.Int("batch_size", len(batch)))
				if err := flush(); err != nil {
					return written, err
				}
				ticker.Reset(w.config.FlushTimeout)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.log.Debug("Batch timeout reached", zap.Int("email_count", len(batch)))
				if err := flush(); err != nil {
					return written, err
				}
			}
		}
	}
}

func (w *BatchWriter) writeBatch(ctx context.Context, emails []*domain.Email) (int, error) {
	insertedCount, err := w.repository.InsertBatch(ctx, emails)
	if err != nil {
		w.log.Error("Failed to insert batch",
			zap.Error(err),
			zap.Int("email_count", len(emails)))
		return insertedCount, fmt.Errorf("failed to insert batch: %w", err)
	}

	if insertedCount != len(emails) {
		w.log.Warn("Partial insert success",
			zap.Int("inserted", insertedCount),
			zap.Int("expected", len(emails)))
		return insertedCount, fmt.Errorf("partial insert: %d of %d emails written", insertedCount, len(emails))
	}

	w.log.Info("Successfully inserted emails", zap.Int("count", insertedCount))
	return insertedCount, nil
}
