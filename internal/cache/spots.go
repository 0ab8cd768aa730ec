package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rvpark-backend/internal/domain"
)

// ErrCacheMiss indicates the snapshot for a park is not present.
var ErrCacheMiss = errors.New("cache miss")

// SpotCache stores a JSON snapshot of the spots of each park under the key
// spots_park_<id>. Readers fall back to the snapshot when the database is
// unavailable, so entries are written with a TTL rather than invalidated
// eagerly.
type SpotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSpotCache connects to Redis at addr. An empty addr returns a nil cache,
// which every method treats as a no-op.
func NewSpotCache(addr, password string, db int, ttl time.Duration) (*SpotCache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SpotCache{client: client, ttl: ttl}, nil
}

func spotKey(rvParkID int32) string {
	return fmt.Sprintf("spots_park_%d", rvParkID)
}

// GetSpots returns the cached snapshot for a park, or ErrCacheMiss.
func (c *SpotCache) GetSpots(ctx context.Context, rvParkID int32) ([]domain.Spot, error) {
	if c == nil {
		return nil, ErrCacheMiss
	}

	data, err := c.client.Get(ctx, spotKey(rvParkID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read spot snapshot: %w", err)
	}

	var spots []domain.Spot
	if err := json.Unmarshal(data, &spots); err != nil {
		return nil, fmt.Errorf("failed to decode spot snapshot: %w", err)
	}
	return spots, nil
}

// SetSpots replaces the snapshot for a park.
func (c *SpotCache) SetSpots(ctx context.Context, rvParkID int32, spots []domain.Spot) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("failed to encode spot snapshot: %w", err)
	}
	if err := c.client.Set(ctx, spotKey(rvParkID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write spot snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot for a park.
func (c *SpotCache) Invalidate(ctx context.Context, rvParkID int32) error {
	if c == nil {
		return nil
	}
	if err := c.client.Del(ctx, spotKey(rvParkID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate spot snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *SpotCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
