package clickhouse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/config"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository"
)

func TestCreateTableQuery_HasEveryColumn(t *testing.T) {
	for _, column := range repository.Columns {
		assert.True(t, strings.Contains(createTableQuery, "\t\t"+column+" "), "missing column %s", column)
	}
}

func TestEmailRow_ToDomain(t *testing.T) {
	delta := int64(3600)
	ts := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	row := emailRow{
		ID:                    7,
		Timestamp:             ts,
		Direction:             "received",
		IsReply:               true,
		CompanyName:           "Acme",
		ReplySentiment:        "positive",
		AIAgent:               "Agent Beta",
		City:                  "Tokyo",
		ReplyTimeDeltaSeconds: &delta,
	}

	email := row.toDomain()

	assert.Equal(t, int64(7), email.ID)
	assert.Equal(t, ts, email.Timestamp)
	assert.Equal(t, domain.DirectionReceived, email.Direction)
	assert.Equal(t, domain.SentimentPositive, email.ReplySentiment)
	assert.Equal(t, "Agent Beta", email.AIAgent)
	assert.Equal(t, &delta, email.ReplyTimeDeltaSeconds)
}

func TestOptions(t *testing.T) {
	cfg := &config.ClickHouse{
		Host:               "clickhouse",
		Port:               "9440",
		Database:           "email_stats",
		User:               "reader",
		Password:           "secret",
		UseTLS:             true,
		MaxOpenConns:       8,
		MaxIdleConns:       4,
		ConnMaxLifetimeSec: 600,
		QueryTimeoutSec:    30,
	}

	opts := options(cfg)

	assert.Equal(t, []string{"clickhouse:9440"}, opts.Addr)
	assert.Equal(t, "email_stats", opts.Auth.Database)
	assert.Equal(t, "reader", opts.Auth.Username)
	assert.Equal(t, 30, opts.Settings["max_execution_time"])
	assert.Equal(t, 30*time.Second, opts.ReadTimeout)
	assert.Equal(t, 10*time.Minute, opts.ConnMaxLifetime)
	assert.Equal(t, 8, opts.MaxOpenConns)
	assert.NotNil(t, opts.TLS)

	cfg.UseTLS = false
	assert.Nil(t, options(cfg).TLS)
}
