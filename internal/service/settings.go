package service

import (
	"context"
	"errors"
	"fmt"

	"botshield/internal/model"

	"gorm.io/gorm"
)

// SettingsService owns the runtime flags persisted in the settings
// store.
type SettingsService struct {
	mysqlRepo       MySQLRepositoryInterface
	redisRepo       RedisRepositoryInterface
	blockingDefault bool
}

// NewSettingsService creates a new Settings Service. blockingDefault
// applies until an operator explicitly toggles the flag.
func NewSettingsService(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface, blockingDefault bool) *SettingsService {
	return &SettingsService{
		mysqlRepo:       mysqlRepo,
		redisRepo:       redisRepo,
		blockingDefault: blockingDefault,
	}
}

// BlockingEnabled reports whether blocking is currently on
func (s *SettingsService) BlockingEnabled(ctx context.Context) (bool, error) {
	value, err := s.mysqlRepo.GetSetting(ctx, model.SettingBlockingEnabled)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.blockingDefault, nil
		}
		return false, fmt.Errorf("failed to load blocking flag: %w", err)
	}
	return value == "1", nil
}

// SetBlockingEnabled persists the blocking flag and drops the cached
// pattern snapshot so the change takes effect within one request.
func (s *SettingsService) SetBlockingEnabled(ctx context.Context, enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}
	if err := s.mysqlRepo.SaveSetting(ctx, model.SettingBlockingEnabled, value); err != nil {
		return fmt.Errorf("failed to save blocking flag: %w", err)
	}

	if s.redisRepo != nil {
		// Best-effort; the snapshot TTL bounds staleness anyway
		_ = s.redisRepo.InvalidatePatternSnapshot(ctx)
	}
	return nil
}
