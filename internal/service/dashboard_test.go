package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/cache"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/dto"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/metrics"
)

var testNow = time.Date(2025, time.March, 9, 15, 30, 0, 0, time.UTC)

// MockEmailRepository is a mock implementation of repository.EmailRepository
type MockEmailRepository struct {
	mock.Mock
}

func (m *MockEmailRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmailRepository) ResetSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmailRepository) InsertBatch(ctx context.Context, emails []*domain.Email) (int, error) {
	args := m.Called(ctx, emails)
	return args.Int(0), args.Error(1)
}

func (m *MockEmailRepository) FetchRange(ctx context.Context, r domain.DateRange) ([]domain.Email, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Email), args.Error(1)
}

func (m *MockEmailRepository) MaxID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmailRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmailRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockSnapshotCache is a mock implementation of cache.SnapshotCache
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockSnapshotCache) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSnapshotCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestService(repo *MockEmailRepository, c *MockSnapshotCache) *DashboardService {
	svc := NewDashboardService(repo, c, DashboardOptions{
		Metrics:          metrics.DefaultOptions(),
		Location:         time.UTC,
		DefaultRangeDays: 7,
	}, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func scenarioEmails() []domain.Email {
	delta := int64(7200)
	sent := time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)
	return []domain.Email{
		{ID: 1, Timestamp: sent, Direction: domain.DirectionSent, ContactTitle: "CEO", AIAgent: "Agent Alpha", City: "London", CompanyIndustry: "Tech", ReplySentiment: domain.SentimentNotApplicable},
		{ID: 2, Timestamp: sent, Direction: domain.DirectionSent, ContactTitle: "CTO", AIAgent: "Agent Beta", City: "Berlin", CompanyIndustry: "Retail", ReplySentiment: domain.SentimentNotApplicable},
		{ID: 3, Timestamp: sent.Add(2 * time.Hour), Direction: domain.DirectionReceived, IsReply: true, ContactTitle: "CEO", AIAgent: "Agent Alpha", City: "London", CompanyIndustry: "Tech", CompanyName: "Acme", ReplySentiment: domain.SentimentPositive, ReplyTimeDeltaSeconds: &delta},
	}
}

func TestDashboardService_GetSnapshot_Success(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	mockCache := new(MockSnapshotCache)
	service := newTestService(mockRepo, mockCache)

	expectedRange := domain.DateRange{
		Start: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 9, 23, 59, 59, 999999999, time.UTC),
	}
	key := cache.SnapshotKey(expectedRange, metrics.DefaultOptions())
	require.True(t, strings.HasPrefix(key, "snapshot:2025-03-03T00:00:00Z:2025-03-09T23:59:59Z:"))

	mockCache.On("Get", mock.Anything, key).Return(nil, false, nil)
	mockRepo.On("FetchRange", mock.Anything, expectedRange).Return(scenarioEmails(), nil)
	mockCache.On("Set", mock.Anything, key, mock.AnythingOfType("[]uint8")).Return(nil)

	response, err := service.GetSnapshot(context.Background(), &dto.GetSnapshotRequest{Start: "2025-03-03", End: "2025-03-09"})

	require.NoError(t, err)
	assert.False(t, response.Empty)
	assert.Equal(t, "2025-03-03", response.Start)
	assert.Equal(t, "2025-03-09", response.End)
	assert.Equal(t, 2, response.Summary.TotalSent)
	assert.Equal(t, 1, response.Summary.TotalReplies)
	assert.Equal(t, 1, response.Summary.TotalLeads)
	assert.Equal(t, 50.0, response.Summary.LeadRate)
	assert.Equal(t, "0d 2h 0m", response.Summary.AvgReplyTime)
	require.NotNil(t, response.Summary.AvgReplyTimeSeconds)
	assert.Equal(t, int64(7200), *response.Summary.AvgReplyTimeSeconds)
	assert.Len(t, response.Daily, 14)
	assert.Len(t, response.ByWeekday, 7)
	assert.Equal(t, "Monday", response.ByWeekday[0].Day)
	assert.Len(t, response.ByHour, 24)
	require.Len(t, response.ReplyLatency, 1)
	assert.Equal(t, "Day 1", response.ReplyLatency[0].Label)
	assert.Equal(t, []dto.CompanyData{{Company: "Acme", PositiveReplies: 1}}, response.TopCompanies)
	require.Len(t, response.ByTitle, 2)
	assert.Equal(t, "CEO", response.ByTitle[0].Value)
	assert.Equal(t, 100.0, response.ByTitle[0].LeadRate)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestDashboardService_GetSnapshot_DefaultRange(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	service := NewDashboardService(mockRepo, nil, DashboardOptions{DefaultRangeDays: 7}, zap.NewNop())
	service.now = func() time.Time { return testNow }

	mockRepo.On("FetchRange", mock.Anything, mock.MatchedBy(func(r domain.DateRange) bool {
		return r.Start.Equal(time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)) &&
			r.End.Equal(time.Date(2025, time.March, 9, 23, 59, 59, 999999999, time.UTC))
	})).Return([]domain.Email{}, nil)

	response, err := service.GetSnapshot(context.Background(), &dto.GetSnapshotRequest{})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", response.Start)
	assert.Equal(t, "2025-03-09", response.End)
	mockRepo.AssertExpectations(t)
}

func TestDashboardService_GetSnapshot_CacheHit(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	mockCache := new(MockSnapshotCache)
	service := newTestService(mockRepo, mockCache)

	cached := dto.SnapshotResponse{Start: "2025-03-03", End: "2025-03-09", Summary: dto.SummaryData{TotalSent: 99}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(data, true, nil)

	response, err := service.GetSnapshot(context.Background(), &dto.GetSnapshotRequest{Start: "2025-03-03", End: "2025-03-09"})

	require.NoError(t, err)
	assert.Equal(t, 99, response.Summary.TotalSent)
	mockRepo.AssertNotCalled(t, "FetchRange")
	mockCache.AssertNotCalled(t, "Set")
}

func TestDashboardService_GetSnapshot_CacheErrorFallsThrough(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	mockCache := new(MockSnapshotCache)
	service := newTestService(mockRepo, mockCache)

	mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, false, errors.New("connection refused"))
	mockRepo.On("FetchRange", mock.Anything, mock.Anything).Return(scenarioEmails(), nil)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	response, err := service.GetSnapshot(context.Background(), &dto.GetSnapshotRequest{Start: "2025-03-03", End: "2025-03-09"})

	require.NoError(t, err)
	assert.Equal(t, 2, response.Summary.TotalSent)
	mockRepo.AssertExpectations(t)
}

func TestDashboardService_GetSnapshot_InvalidRange(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	mockCache := new(MockSnapshotCache)
	service := newTestService(mockRepo, mockCache)

	response, err := service.GetSnapshot(context.Background(), &dto.GetSnapshotRequest{Start: "2025-03-09", End: "2025-03-03"})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.True(t, IsValidationError(err))
	mockRepo.AssertNotCalled(t, "FetchRange")
	mockCache.AssertNotCalled(t, "Get")
}

func TestDashboardService_GetSnapshot_InvalidDate(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	service := newTestService(mockRepo, new(MockSnapshotCache))

	_, err := service.GetSnapshot(context.Background(), &dto.GetSnapshotRequest{Start: "03/03/2025"})

	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "must be YYYY-MM-DD")
}

func TestDashboardService_GetSnapshot_FetchError(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	mockCache := new(MockSnapshotCache)
	service := newTestService(mockRepo, mockCache)

	mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, false, nil)
	mockRepo.On("FetchRange", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	response, err := service.GetSnapshot(context.Background(), &dto.GetSnapshotRequest{Start: "2025-03-03", End: "2025-03-09"})

	assert.Nil(t, response)
	assert.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "failed to fetch emails")
	mockCache.AssertNotCalled(t, "Set")
}

func TestDashboardService_GetSnapshot_Empty(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	mockCache := new(MockSnapshotCache)
	service := newTestService(mockRepo, mockCache)

	mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, false, nil)
	mockRepo.On("FetchRange", mock.Anything, mock.Anything).Return([]domain.Email{}, nil)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	response, err := service.GetSnapshot(context.Background(), &dto.GetSnapshotRequest{Start: "2025-03-03", End: "2025-03-09"})

	require.NoError(t, err)
	assert.True(t, response.Empty)
	assert.Equal(t, EmptyRangeMessage, response.Message)
	assert.Zero(t, response.Summary.TotalSent)
	assert.Zero(t, response.Summary.LeadRate)
	assert.Equal(t, metrics.NotAvailable, response.Summary.AvgReplyTime)
	assert.Nil(t, response.Summary.AvgReplyTimeSeconds)
	assert.NotNil(t, response.Daily)
	assert.Empty(t, response.Daily)
	assert.Empty(t, response.ByWeekday)
	assert.Empty(t, response.TopCompanies)
}

func TestDashboardService_Ping(t *testing.T) {
	mockRepo := new(MockEmailRepository)
	service := newTestService(mockRepo, new(MockSnapshotCache))

	mockRepo.On("Ping", mock.Anything).Return(errors.New("down"))

	assert.Error(t, service.Ping(context.Background()))
}

func TestParseRange(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)

	r, err := ParseRange("2025-03-01", "2025-03-01", testNow, loc, 7)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, loc), r.Start)
	assert.Equal(t, time.Date(2025, time.March, 1, 23, 59, 59, 999999999, loc), r.End)
}
