package service

import (
	"context"
	"errors"
	"fmt"

	"botshield/internal/directive"
	"botshield/internal/model"

	"gorm.io/gorm"
)

// DirectiveService manages the robots.txt-style directive document and
// its managed disallow region.
type DirectiveService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
}

// NewDirectiveService creates a new Directive Service
func NewDirectiveService(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface) *DirectiveService {
	return &DirectiveService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
	}
}

// Save replaces the managed region of the directive document with
// content and returns the resulting full document. Empty content or
// clear removes the region; text outside the markers is preserved
// untouched.
func (s *DirectiveService) Save(ctx context.Context, content string, clear bool) (string, error) {
	existing, err := s.mysqlRepo.GetSetting(ctx, model.SettingDirectiveText)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to load directive document: %w", err)
	}

	if clear {
		content = ""
	}
	final := directive.SpliceManagedRegion(existing, content)

	if err := s.mysqlRepo.SaveSetting(ctx, model.SettingDirectiveText, final); err != nil {
		return "", fmt.Errorf("failed to save directive document: %w", err)
	}

	if s.redisRepo != nil {
		// Best-effort; the snapshot TTL bounds staleness anyway
		_ = s.redisRepo.InvalidatePatternSnapshot(ctx)
	}

	return final, nil
}

// Current returns the managed region content and the disallow patterns
// parsed from it.
func (s *DirectiveService) Current(ctx context.Context) (string, []model.BotPattern, error) {
	doc, err := s.mysqlRepo.GetSetting(ctx, model.SettingDirectiveText)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("failed to load directive document: %w", err)
	}

	managed := directive.ManagedRegion(doc)
	return managed, directive.Parse(managed), nil
}

// parseManagedPatterns extracts the disallow patterns from a full
// directive document. Only the managed region contributes patterns.
func parseManagedPatterns(doc string) []model.BotPattern {
	return directive.Parse(directive.ManagedRegion(doc))
}
