package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"botshield/internal/config"
	"botshield/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	PatternSnapshotKey = "bs:snapshot"
	StatsCachePrefix   = "bs:stats:"
	LiveHitsPrefix     = "bs:hits:"
	LiveBlocksPrefix   = "bs:blocks:"
	LiveCounterTTL     = 48 * time.Hour
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SetPatternSnapshot caches the serialized pattern/flag snapshot used
// on the request hot path.
func (r *RedisRepository) SetPatternSnapshot(ctx context.Context, payload string, ttl time.Duration) error {
	return r.client.Set(ctx, PatternSnapshotKey, payload, ttl).Err()
}

// GetPatternSnapshot retrieves the cached snapshot
func (r *RedisRepository) GetPatternSnapshot(ctx context.Context) (string, error) {
	return r.client.Get(ctx, PatternSnapshotKey).Result()
}

// InvalidatePatternSnapshot drops the cached snapshot so the next
// request rebuilds it from the settings store.
func (r *RedisRepository) InvalidatePatternSnapshot(ctx context.Context) error {
	return r.client.Del(ctx, PatternSnapshotKey).Err()
}

// CacheStats caches a serialized stats response for a date range
func (r *RedisRepository) CacheStats(ctx context.Context, key, payload string, ttl time.Duration) error {
	return r.client.Set(ctx, StatsCachePrefix+key, payload, ttl).Err()
}

// GetCachedStats retrieves a cached stats response
func (r *RedisRepository) GetCachedStats(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, StatsCachePrefix+key).Result()
}

// IncrementLive mirrors one counter increment into the realtime view.
// The authoritative count lives in MySQL; these keys expire on their
// own and only back the live dashboard.
func (r *RedisRepository) IncrementLive(ctx context.Context, botName, day string, blocked bool) error {
	hitsKey := r.liveKey(LiveHitsPrefix, day, botName)
	count, err := r.client.Incr(ctx, hitsKey).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		r.client.Expire(ctx, hitsKey, LiveCounterTTL)
	}

	if blocked {
		blocksKey := r.liveKey(LiveBlocksPrefix, day, botName)
		count, err = r.client.Incr(ctx, blocksKey).Result()
		if err != nil {
			return err
		}
		if count == 1 {
			r.client.Expire(ctx, blocksKey, LiveCounterTTL)
		}
	}

	return nil
}

// GetLiveCounts returns the realtime per-bot counters for one day
func (r *RedisRepository) GetLiveCounts(ctx context.Context, day string) (map[string]model.BotStat, error) {
	counts := make(map[string]model.BotStat)

	hitsPrefix := LiveHitsPrefix + day + ":"
	iter := r.client.Scan(ctx, 0, hitsPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		total, err := r.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}
		botName := strings.TrimPrefix(key, hitsPrefix)

		blocked, err := r.client.Get(ctx, r.liveKey(LiveBlocksPrefix, day, botName)).Int64()
		if err != nil && err != redis.Nil {
			blocked = 0
		}

		counts[botName] = model.BotStat{Total: total, Blocked: blocked}
	}

	return counts, iter.Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) liveKey(prefix, day, botName string) string {
	return fmt.Sprintf("%s%s:%s", prefix, day, botName)
}
