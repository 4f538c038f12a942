package generator

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

const bufferSize = 100

// Run streams count synthetic emails from g through writer and returns how many were written
func Run(ctx context.Context, g *Generator, writer *BatchWriter, count int, log *zap.Logger) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	emails := make(chan *domain.Email, bufferSize)

	var (
		wg         sync.WaitGroup
		produceErr error
	)

	// Stage 1: Produce synthetic emails
	wg.Add(1)
	go func() {
		defer wg.Done()
		produceErr = g.Produce(ctx, count, emails)
	}()

	// Stage 2: Batch and write to the repository
	written, writeErr := writer.Start(ctx, emails)
	cancel()
	wg.Wait()

	if writeErr != nil {
		return written, writeErr
	}
	if produceErr != nil && !errors.Is(produceErr, context.Canceled) {
		return written, produceErr
	}

	log.Info("Generation complete",
		zap.Int("requested", count),
		zap.Int("written", written))

	return written, nil
}
