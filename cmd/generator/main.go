package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/config"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/generator"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/logger"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository/backend"
)

type options struct {
	count     int
	seed      uint64
	reset     bool
	batchSize int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "generator",
		Short: "Populate the email store with synthetic outreach data",
		Long: `Writes synthetic outreach emails into the configured store.

Half of the requested count are sent emails, 40% of those receive a reply
and a further 10% of the count are unrelated inbound emails.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", 10000, "number of emails the generated proportions are based on")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks a random one")
	cmd.Flags().BoolVar(&opts.reset, "reset", true, "drop and recreate the emails table before generating")
	cmd.Flags().IntVar(&opts.batchSize, "batch-size", 0, "rows per insert, defaults to GENERATOR_BATCH_SIZE")

	return cmd
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New("generator", cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func(log *zap.Logger) {
		_ = log.Sync()
	}(log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := backend.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open email store: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error("Failed to close email store", zap.Error(err))
		}
	}()

	if opts.reset {
		log.Info("Dropping and recreating emails table")
		err = repo.ResetSchema(ctx)
	} else {
		err = repo.InitSchema(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	batchSize := opts.batchSize
	if batchSize <= 0 {
		batchSize = cfg.Generator.BatchSize
	}

	writer := generator.NewBatchWriter(repo, generator.BatchWriterConfig{
		MaxBatchSize: batchSize,
		FlushTimeout: time.Duration(cfg.Generator.FlushTimeoutSec) * time.Second,
	}, log)

	maxID, err := repo.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read existing ids: %w", err)
	}

	g := generator.New(opts.seed, cfg.Generator.SenderEmail, time.Now())
	g.StartAt(maxID + 1)

	log.Info("Generating mock emails",
		zap.Int("count", opts.count),
		zap.Int("rows", generator.PlanFor(opts.count).Total()),
		zap.Uint64("seed", opts.seed),
		zap.Int64("first_id", maxID+1),
		zap.String("store", cfg.Store.Driver))

	written, err := generator.Run(ctx, g, writer, opts.count, log)
	if err != nil {
		return fmt.Errorf("failed after writing %d emails: %w", written, err)
	}

	fmt.Printf("Successfully added %d entries to the database.\n", written)
	return nil
}
