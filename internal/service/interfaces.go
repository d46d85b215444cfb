package service

import (
	"context"
	"time"

	"botshield/internal/model"
	"botshield/internal/repository"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	IncrementDailyCount(ctx context.Context, botName, day string, blocked bool) error
	QueryBotStats(ctx context.Context, startDate, endDate string) ([]repository.BotStatRow, error)
	QueryDailyStats(ctx context.Context, startDate, endDate string) ([]repository.DailyStatRow, error)
	GetSetting(ctx context.Context, key string) (string, error)
	SaveSetting(ctx context.Context, key, value string) error
	SaveDetectionEvent(ctx context.Context, event *model.DetectionEvent) error
	GetRecentEvents(ctx context.Context, limit int) ([]model.DetectionEvent, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	SetPatternSnapshot(ctx context.Context, payload string, ttl time.Duration) error
	GetPatternSnapshot(ctx context.Context) (string, error)
	InvalidatePatternSnapshot(ctx context.Context) error
	CacheStats(ctx context.Context, key, payload string, ttl time.Duration) error
	GetCachedStats(ctx context.Context, key string) (string, error)
	IncrementLive(ctx context.Context, botName, day string, blocked bool) error
	GetLiveCounts(ctx context.Context, day string) (map[string]model.BotStat, error)
}

// DecisionServiceInterface defines the interface for access decisions
type DecisionServiceInterface interface {
	Decide(ctx context.Context, userAgent string) (model.AccessDecision, error)
}

// StatsServiceInterface defines the interface for stats queries
type StatsServiceInterface interface {
	GetStats(ctx context.Context, startDate, endDate string) (*model.StatsResponse, error)
	GetLiveToday(ctx context.Context) (map[string]model.BotStat, error)
}

// DirectiveServiceInterface defines the interface for directive management
type DirectiveServiceInterface interface {
	Save(ctx context.Context, content string, clear bool) (string, error)
	Current(ctx context.Context) (string, []model.BotPattern, error)
}

// SettingsServiceInterface defines the interface for runtime settings
type SettingsServiceInterface interface {
	BlockingEnabled(ctx context.Context) (bool, error)
	SetBlockingEnabled(ctx context.Context, enabled bool) error
}

// DetectionServiceInterface defines the interface for classification ingestion
type DetectionServiceInterface interface {
	Ingest(ctx context.Context, req *model.LogVisitRequest) (*model.LogVisitResponse, error)
	RecentEvents(ctx context.Context, limit int) ([]model.DetectionEvent, error)
}

// AgentFilterServiceInterface defines the interface for the user-agent
// novelty filter (for testing)
type AgentFilterServiceInterface interface {
	Observe(ctx context.Context, userAgent string) (bool, error)
	IsAvailable(ctx context.Context) bool
	Reset(ctx context.Context) error
}
