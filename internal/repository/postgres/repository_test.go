package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository"
)

// MockPool is a mock implementation of Pool
type MockPool struct {
	mock.Mock
}

func (m *MockPool) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql)
	return pgconn.CommandTag{}, args.Error(0)
}

func (m *MockPool) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := m.Called(ctx, sql, arguments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Rows), args.Error(1)
}

func (m *MockPool) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := m.Called(ctx, sql)
	return args.Get(0).(pgx.Row)
}

// stubRow scans a single int64 column
type stubRow struct {
	value int64
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.value
	return nil
}

func (m *MockPool) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	args := m.Called(ctx, tableName, columnNames, rowSrc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPool) Close() {
	m.Called()
}

func TestFetchRangeQuery(t *testing.T) {
	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)

	query, args, err := fetchRangeQuery(domain.DateRange{Start: start, End: end})

	require.NoError(t, err)
	assert.Contains(t, query, `FROM "emails"`)
	assert.Contains(t, query, `"reply_time_delta_seconds"`)
	assert.Contains(t, query, `WHERE ("timestamp" BETWEEN $1 AND $2)`)
	assert.Contains(t, query, `ORDER BY "timestamp" ASC, "id" ASC`)
	assert.Equal(t, []any{start, end}, args)
}

func TestRepository_InsertBatch(t *testing.T) {
	pool := new(MockPool)
	repo := NewRepository(pool, zap.NewNop())

	emails := []*domain.Email{
		{ID: 1, Direction: domain.DirectionSent, ReplySentiment: domain.SentimentNotApplicable},
		{ID: 2, Direction: domain.DirectionSent, ReplySentiment: domain.SentimentNotApplicable},
	}

	pool.On("CopyFrom", mock.Anything, pgx.Identifier{"emails"}, repository.Columns, mock.Anything).Return(int64(2), nil)

	inserted, err := repo.InsertBatch(context.Background(), emails)

	assert.NoError(t, err)
	assert.Equal(t, 2, inserted)
	pool.AssertExpectations(t)
}

func TestRepository_InsertBatch_Empty(t *testing.T) {
	pool := new(MockPool)
	repo := NewRepository(pool, zap.NewNop())

	inserted, err := repo.InsertBatch(context.Background(), nil)

	assert.NoError(t, err)
	assert.Zero(t, inserted)
	pool.AssertNotCalled(t, "CopyFrom")
}

func TestRepository_InsertBatch_CopyError(t *testing.T) {
	pool := new(MockPool)
	repo := NewRepository(pool, zap.NewNop())

	pool.On("CopyFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))

	inserted, err := repo.InsertBatch(context.Background(), []*domain.Email{{ID: 1}})

	assert.Error(t, err)
	assert.Zero(t, inserted)
	assert.Contains(t, err.Error(), "failed to copy emails")
}

func TestRepository_FetchRange_QueryError(t *testing.T) {
	pool := new(MockPool)
	repo := NewRepository(pool, zap.NewNop())

	pool.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("relation \"emails\" does not exist"))

	emails, err := repo.FetchRange(context.Background(), domain.DateRange{Start: time.Now().Add(-time.Hour), End: time.Now()})

	assert.Nil(t, emails)
	assert.ErrorContains(t, err, "failed to query emails")
}

func TestRepository_ResetSchema(t *testing.T) {
	pool := new(MockPool)
	repo := NewRepository(pool, zap.NewNop())

	pool.On("Exec", mock.Anything, "DROP TABLE IF EXISTS emails").Return(nil).Once()
	pool.On("Exec", mock.Anything, createTableQuery).Return(nil).Once()

	assert.NoError(t, repo.ResetSchema(context.Background()))
	pool.AssertExpectations(t)
}

func TestMaxIDQuery(t *testing.T) {
	query, _, err := maxIDQuery()

	require.NoError(t, err)
	assert.Equal(t, `SELECT COALESCE(MAX("id"), 0) FROM "emails"`, query)
}

func TestRepository_MaxID(t *testing.T) {
	pool := new(MockPool)
	repo := NewRepository(pool, zap.NewNop())

	query, _, err := maxIDQuery()
	require.NoError(t, err)
	pool.On("QueryRow", mock.Anything, query).Return(stubRow{value: 42})

	id, err := repo.MaxID(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	pool.AssertExpectations(t)
}

func TestRepository_MaxID_ScanError(t *testing.T) {
	pool := new(MockPool)
	repo := NewRepository(pool, zap.NewNop())

	pool.On("QueryRow", mock.Anything, mock.Anything).Return(stubRow{err: errors.New("connection reset")})

	id, err := repo.MaxID(context.Background())

	assert.Zero(t, id)
	assert.ErrorContains(t, err, "failed to query max id")
}
