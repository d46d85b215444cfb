package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"botshield/internal/matcher"
	"botshield/internal/model"

	"gorm.io/gorm"

	"github.com/rs/zerolog/log"
)

// ErrCountFailed reports that the access decision was made but the hit
// could not be recorded. Callers must still honor the decision.
var ErrCountFailed = errors.New("failed to record bot hit")

// ShieldSnapshot is the read-only view of the dynamic configuration a
// single decision runs against. It is rebuilt from the settings store
// when the cached copy expires, never mutated mid-request.
type ShieldSnapshot struct {
	BlockingEnabled bool               `json:"blocking_enabled"`
	Disallowed      []model.BotPattern `json:"disallowed"`
}

// DecisionService decides ALLOW/BLOCK for incoming requests and feeds
// the visit aggregator.
type DecisionService struct {
	mysqlRepo   MySQLRepositoryInterface
	redisRepo   RedisRepositoryInterface
	settings    SettingsServiceInterface
	agentFilter AgentFilterServiceInterface
	known       []model.BotPattern
	snapshotTTL time.Duration
}

// NewDecisionService creates a new Decision Service. known is the full
// bot catalogue used for analytics-only matching.
func NewDecisionService(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	settings SettingsServiceInterface,
	agentFilter AgentFilterServiceInterface,
	known []model.BotPattern,
	snapshotTTL time.Duration,
) *DecisionService {
	return &DecisionService{
		mysqlRepo:   mysqlRepo,
		redisRepo:   redisRepo,
		settings:    settings,
		agentFilter: agentFilter,
		known:       known,
		snapshotTTL: snapshotTTL,
	}
}

// Decide classifies one request. The decision is always valid; a
// non-nil error only means the matched hit could not be counted.
//
// Matching runs in two mutually exclusive phases: the disallow list
// first (blocking), then the known catalogue (analytics only). At most
// one counter increment happens per call.
func (s *DecisionService) Decide(ctx context.Context, userAgent string) (model.AccessDecision, error) {
	if userAgent == "" {
		return model.AccessDecision{}, nil
	}

	snap := s.snapshot(ctx)

	if snap.BlockingEnabled {
		if p, ok := matcher.Match(userAgent, snap.Disallowed); ok {
			err := s.record(ctx, userAgent, p.Name, true)
			return model.AccessDecision{MatchedBot: p.Name, Blocked: true}, err
		}
	}

	if p, ok := matcher.Match(userAgent, s.known); ok {
		err := s.record(ctx, userAgent, p.Name, false)
		return model.AccessDecision{MatchedBot: p.Name, Blocked: false}, err
	}

	return model.AccessDecision{}, nil
}

// record performs the single aggregator increment for a decision
func (s *DecisionService) record(ctx context.Context, userAgent, botName string, blocked bool) error {
	day := time.Now().UTC().Format("2006-01-02")

	if s.agentFilter != nil {
		if novel, err := s.agentFilter.Observe(ctx, userAgent); err == nil && novel {
			log.Info().
				Str("bot", botName).
				Str("user_agent", userAgent).
				Msg("First sighting of crawler user agent")
		}
	}

	if err := s.mysqlRepo.IncrementDailyCount(ctx, botName, day, blocked); err != nil {
		log.Error().Err(err).Str("bot", botName).Bool("blocked", blocked).Msg("Failed to increment bot count")
		return fmt.Errorf("%w: %s", ErrCountFailed, botName)
	}

	// Realtime mirror is best-effort
	if s.redisRepo != nil {
		if err := s.redisRepo.IncrementLive(ctx, botName, day, blocked); err != nil {
			log.Warn().Err(err).Str("bot", botName).Msg("Failed to update live counter")
		}
	}

	return nil
}

// snapshot returns the current pattern/flag view, preferring the cached
// copy and rebuilding it from the settings store on expiry. Lookup
// failures degrade to an empty disallow list rather than failing the
// request.
func (s *DecisionService) snapshot(ctx context.Context) ShieldSnapshot {
	if s.redisRepo != nil {
		if payload, err := s.redisRepo.GetPatternSnapshot(ctx); err == nil && payload != "" {
			var snap ShieldSnapshot
			if err := json.Unmarshal([]byte(payload), &snap); err == nil {
				return snap
			}
			log.Warn().Err(err).Msg("Discarding corrupt pattern snapshot")
		}
	}

	snap := s.buildSnapshot(ctx)

	if s.redisRepo != nil {
		if payload, err := json.Marshal(snap); err == nil {
			if err := s.redisRepo.SetPatternSnapshot(ctx, string(payload), s.snapshotTTL); err != nil {
				log.Warn().Err(err).Msg("Failed to cache pattern snapshot")
			}
		}
	}

	return snap
}

func (s *DecisionService) buildSnapshot(ctx context.Context) ShieldSnapshot {
	snap := ShieldSnapshot{}

	enabled, err := s.settings.BlockingEnabled(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load blocking flag, leaving blocking off")
	} else {
		snap.BlockingEnabled = enabled
	}

	doc, err := s.mysqlRepo.GetSetting(ctx, model.SettingDirectiveText)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("Failed to load directive document")
		}
		return snap
	}

	snap.Disallowed = parseManagedPatterns(doc)
	return snap
}
