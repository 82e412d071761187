package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"animevote/internal/http-api/dto"

	"github.com/redis/go-redis/v9"
)

// LeaderboardCache keeps the computed top-N ranking in Redis so the
// overlay's auto-refresh polling does not hit Postgres on every tick.
// The cache is best-effort: a nil client (Redis not configured) makes
// every operation a no-op and the service falls through to the store.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache connects to Redis at redisURL. An empty URL
// returns a disabled cache rather than an error.
func NewLeaderboardCache(redisURL, password string, ttl time.Duration) (*LeaderboardCache, error) {
	if redisURL == "" {
		return &LeaderboardCache{ttl: ttl}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &LeaderboardCache{client: rdb, ttl: ttl}, nil
}

func key(n int) string {
	return fmt.Sprintf("leaderboard:top:%d", n)
}

// Get returns the cached ranking for n, or (nil, false) on miss,
// disabled cache, or any Redis error.
func (c *LeaderboardCache) Get(ctx context.Context, n int) ([]dto.RankedAnime, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key(n)).Bytes()
	if err != nil {
		return nil, false
	}

	var ranked []dto.RankedAnime
	if err := json.Unmarshal(payload, &ranked); err != nil {
		return nil, false
	}
	return ranked, true
}

// Set stores the ranking for n with the configured TTL. Errors are
// swallowed; losing a cache write only costs a future store read.
func (c *LeaderboardCache) Set(ctx context.Context, n int, ranked []dto.RankedAnime) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(ranked)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(n), payload, c.ttl)
}

// Invalidate drops every cached ranking. Called after any mutation
// that can change the ordering: a vote, or an admin catalog edit.
func (c *LeaderboardCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, "leaderboard:top:*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

// Close releases the underlying Redis connection.
func (c *LeaderboardCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
