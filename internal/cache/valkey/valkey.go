package valkey

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/config"
)

// Cache is a SnapshotCache backed by Valkey (or any Redis-compatible server)
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewClient connects to Valkey and verifies the connection
func NewClient(ctx context.Context, cfg *config.Valkey, log *zap.Logger) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	log.Info("Connecting to Valkey", zap.String("address", addr), zap.Int("db", cfg.DB))

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Valkey: %w", err)
	}

	return client, nil
}

// New wraps an existing client
func New(client *redis.Client, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get returns the cached value for key
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s from Valkey: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with the configured TTL
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in Valkey: %w", key, err)
	}
	return nil
}

// Close closes the Valkey client
func (c *Cache) Close() error {
	c.log.Info("Closing Valkey connection")
	return c.client.Close()
}
