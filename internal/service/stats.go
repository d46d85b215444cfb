package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"botshield/internal/model"
	"botshield/pkg/util"

	"github.com/rs/zerolog/log"
)

// DefaultRangeDays is the trailing window used when callers omit or
// garble the date range.
const DefaultRangeDays = 30

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// StatsService answers range-aggregated counter queries
type StatsService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	cacheTTL  time.Duration
}

// NewStatsService creates a new Stats Service
func NewStatsService(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface, cacheTTL time.Duration) *StatsService {
	return &StatsService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
		cacheTTL:  cacheTTL,
	}
}

// GetStats aggregates counters over the date range grouped by bot and
// by day. Missing or malformed dates fall back to the trailing 30 days;
// an empty range yields empty aggregates, not an error.
func (s *StatsService) GetStats(ctx context.Context, startDate, endDate string) (*model.StatsResponse, error) {
	startDate, endDate = normalizeRange(startDate, endDate, time.Now().UTC())

	cacheKey := util.RangeKey(startDate, endDate)
	if s.redisRepo != nil {
		if payload, err := s.redisRepo.GetCachedStats(ctx, cacheKey); err == nil && payload != "" {
			var resp model.StatsResponse
			if err := json.Unmarshal([]byte(payload), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	botRows, err := s.mysqlRepo.QueryBotStats(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query bot stats: %w", err)
	}

	dailyRows, err := s.mysqlRepo.QueryDailyStats(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}

	resp := &model.StatsResponse{
		Success: true,
		Data: model.StatsData{
			StartDate: startDate,
			EndDate:   endDate,
			Bots:      make(map[string]model.BotStat, len(botRows)),
			Daily:     make([]model.DailyStat, 0, len(dailyRows)),
		},
	}

	for _, row := range botRows {
		if row.BotName == "" {
			continue
		}
		resp.Data.Bots[row.BotName] = model.BotStat{
			Total:   row.Total,
			Blocked: row.Blocked,
		}
	}

	for _, row := range dailyRows {
		resp.Data.Daily = append(resp.Data.Daily, model.DailyStat{
			Date:   normalizeDay(row.DateRecorded),
			Hits:   row.Hits,
			Blocks: row.Blocks,
		})
	}

	if s.redisRepo != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.redisRepo.CacheStats(ctx, cacheKey, string(payload), s.cacheTTL); err != nil {
				log.Warn().Err(err).Msg("Failed to cache stats response")
			}
		}
	}

	return resp, nil
}

// GetLiveToday returns the realtime per-bot counters for the current
// day from the redis mirror.
func (s *StatsService) GetLiveToday(ctx context.Context) (map[string]model.BotStat, error) {
	day := time.Now().UTC().Format("2006-01-02")
	counts, err := s.redisRepo.GetLiveCounts(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to read live counters: %w", err)
	}
	return counts, nil
}

// normalizeRange validates both dates and substitutes the default
// trailing window for anything invalid.
func normalizeRange(startDate, endDate string, now time.Time) (string, string) {
	if !validDate(startDate) {
		startDate = now.AddDate(0, 0, -DefaultRangeDays).Format("2006-01-02")
	}
	if !validDate(endDate) {
		endDate = now.Format("2006-01-02")
	}
	return startDate, endDate
}

func validDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// normalizeDay trims a DATE column that scanned with a time component
func normalizeDay(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
