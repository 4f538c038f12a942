package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/cache"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/dto"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/metrics"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository"
)

// EmptyRangeMessage is reported when the requested range holds no emails
const EmptyRangeMessage = "No data found for the selected time range. Please ensure the generator has been run."

// DashboardOptions configures snapshot queries
type DashboardOptions struct {
	Metrics          metrics.Options
	Location         *time.Location
	DefaultRangeDays int
}

// DashboardService fetches emails for a date range and derives the dashboard snapshot
type DashboardService struct {
	repository repository.EmailRepository
	cache      cache.SnapshotCache
	options    DashboardOptions
	tracer     trace.Tracer
	now        func() time.Time
	log        *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repository.EmailRepository, snapshotCache cache.SnapshotCache, options DashboardOptions, log *zap.Logger) *DashboardService {
	if options.Location == nil {
		options.Location = time.UTC
	}
	return &DashboardService{
		repository: repo,
		cache:      snapshotCache,
		options:    options,
		tracer:     otel.Tracer("github.com/BarkinBalci/email-analytics-dashboard/internal/service"),
		now:        time.Now,
		log:        log,
	}
}

// GetSnapshot returns the snapshot of the requested range, from the cache when possible
func (s *DashboardService) GetSnapshot(ctx context.Context, req *dto.GetSnapshotRequest) (*dto.SnapshotResponse, error) {
	ctx, span := s.tracer.Start(ctx, "DashboardService.GetSnapshot")
	defer span.End()

	r, err := ParseRange(req.Start, req.End, s.now(), s.options.Location, s.options.DefaultRangeDays)
	if err != nil {
		s.log.Warn("Invalid snapshot range",
			zap.String("start", req.Start),
			zap.String("end", req.End),
			zap.Error(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("range.start", r.Start.Format(time.RFC3339)),
		attribute.String("range.end", r.End.Format(time.RFC3339)))

	key := cache.SnapshotKey(r, s.options.Metrics)
	if cached := s.fromCache(ctx, key); cached != nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	emails, err := s.fetch(ctx, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}

	_, computeSpan := s.tracer.Start(ctx, "metrics.Compute")
	snap := metrics.Compute(emails, r, s.options.Metrics)
	computeSpan.End()

	response := toResponse(snap, s.options.Location, s.now())

	s.log.Info("Snapshot computed",
		zap.String("start", response.Start),
		zap.String("end", response.End),
		zap.Int("email_count", len(emails)),
		zap.Bool("empty", response.Empty))

	s.toCache(ctx, key, response)

	return response, nil
}

// Ping checks the email store
func (s *DashboardService) Ping(ctx context.Context) error {
	return s.repository.Ping(ctx)
}

func (s *DashboardService) fetch(ctx context.Context, r domain.DateRange) ([]domain.Email, error) {
	ctx, span := s.tracer.Start(ctx, "repository.FetchRange")
	defer span.End()

	emails, err := s.repository.FetchRange(ctx, r)
	if err != nil {
		s.log.Error("Failed to fetch emails",
			zap.Time("start", r.Start),
			zap.Time("end", r.End),
			zap.Error(err))
		return nil, fmt.Errorf("failed to fetch emails: %w", err)
	}

	span.SetAttributes(attribute.Int("email.count", len(emails)))
	return emails, nil
}

// fromCache returns nil on a miss; cache failures are logged and treated as misses
func (s *DashboardService) fromCache(ctx context.Context, key string) *dto.SnapshotResponse {
	if s.cache == nil {
		return nil
	}

	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("Snapshot cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var response dto.SnapshotResponse
	if err := json.Unmarshal(data, &response); err != nil {
		s.log.Warn("Discarding malformed cached snapshot", zap.String("key", key), zap.Error(err))
		return nil
	}

	s.log.Debug("Snapshot cache hit", zap.String("key", key))
	return &response
}

func (s *DashboardService) toCache(ctx context.Context, key string, response *dto.SnapshotResponse) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(response)
	if err != nil {
		s.log.Error("Failed to marshal snapshot", zap.Error(err))
		return
	}

	if err := s.cache.Set(ctx, key, data); err != nil {
		s.log.Warn("Snapshot cache write failed", zap.String("key", key), zap.Error(err))
	}
}
