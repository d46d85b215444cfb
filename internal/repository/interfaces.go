package repository

import (
	"context"
	"time"

	"botshield/internal/model"
)

// BotStatRow is one per-bot aggregate row from the counts table
type BotStatRow struct {
	BotName string `json:"bot_name"`
	Total   int64  `json:"total"`
	Blocked int64  `json:"blocked"`
}

// DailyStatRow is one per-day aggregate row from the counts table
type DailyStatRow struct {
	DateRecorded string `json:"date_recorded"`
	Hits         int64  `json:"hits"`
	Blocks       int64  `json:"blocks"`
}

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetDB() interface{}
	IncrementDailyCount(ctx context.Context, botName, day string, blocked bool) error
	QueryBotStats(ctx context.Context, startDate, endDate string) ([]BotStatRow, error)
	QueryDailyStats(ctx context.Context, startDate, endDate string) ([]DailyStatRow, error)
	GetSetting(ctx context.Context, key string) (string, error)
	SaveSetting(ctx context.Context, key, value string) error
	SaveDetectionEvent(ctx context.Context, event *model.DetectionEvent) error
	GetRecentEvents(ctx context.Context, limit int) ([]model.DetectionEvent, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	SetPatternSnapshot(ctx context.Context, payload string, ttl time.Duration) error
	GetPatternSnapshot(ctx context.Context) (string, error)
	InvalidatePatternSnapshot(ctx context.Context) error
	CacheStats(ctx context.Context, key, payload string, ttl time.Duration) error
	GetCachedStats(ctx context.Context, key string) (string, error)
	IncrementLive(ctx context.Context, botName, day string, blocked bool) error
	GetLiveCounts(ctx context.Context, day string) (map[string]model.BotStat, error)
	Close() error
}
