package service

import (
	"context"
	"fmt"
	"time"

	"botshield/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AgentFilterService tracks which crawler user agents have ever been
// observed, backed by a Redis Bloom filter. It answers "is this the
// first sighting" cheaply on the hot path; false negatives on novelty
// are acceptable, false "already seen" never blocks anything.
type AgentFilterService struct {
	client    RedisClient
	capacity  int64
	errorRate float64
}

// RedisClient defines the interface for Redis client operations
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const agentFilterKey = "bs:agents:bloom"

// NewAgentFilterService creates a new Agent Filter Service
func NewAgentFilterService(client RedisClient, cfg *config.FilterConfig) *AgentFilterService {
	fs := &AgentFilterService{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}

	fs.initFilter(context.Background())

	return fs
}

// initFilter reserves the Bloom filter if it does not exist yet
func (fs *AgentFilterService) initFilter(ctx context.Context) {
	exists, err := fs.client.Exists(ctx, agentFilterKey).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check agent filter existence")
		return
	}

	if exists > 0 {
		log.Info().Msg("Agent filter already exists")
		return
	}

	cmd := fs.client.Do(ctx, "BF.RESERVE", agentFilterKey, fs.errorRate, fs.capacity)
	if err := cmd.Err(); err != nil {
		// BF.RESERVE may not be available, BF.ADD creates dynamically
		log.Warn().Err(err).Msg("BF.RESERVE not available, using dynamic filter")
	} else {
		log.Info().Msgf("Agent filter created with capacity=%d, error_rate=%f", fs.capacity, fs.errorRate)
	}
}

// Observe records a user agent sighting and reports whether it was the
// first one.
func (fs *AgentFilterService) Observe(ctx context.Context, userAgent string) (bool, error) {
	if userAgent == "" {
		return false, nil
	}

	// BF.ADD answers 1 only when the item was not already present
	cmd := fs.client.Do(ctx, "BF.ADD", agentFilterKey, userAgent)
	added, err := cmd.Int()
	if err == nil {
		return added == 1, nil
	}

	// Fallback to plain keys if the Bloom module is not loaded
	key := fs.fallbackKey(userAgent)
	novel, err := fs.client.SetNX(ctx, key, 1, 0).Result()
	if err != nil {
		return false, err
	}
	return novel, nil
}

// Fallback key when the Bloom filter is not available
func (fs *AgentFilterService) fallbackKey(userAgent string) string {
	return fmt.Sprintf("bs:agents:fb:%s", userAgent)
}

// IsAvailable checks if the Bloom filter is available
func (fs *AgentFilterService) IsAvailable(ctx context.Context) bool {
	cmd := fs.client.Do(ctx, "BF.INFO", agentFilterKey)
	return cmd.Err() == nil
}

// Reset drops the filter (use with caution)
func (fs *AgentFilterService) Reset(ctx context.Context) error {
	return fs.client.Del(ctx, agentFilterKey).Err()
}
