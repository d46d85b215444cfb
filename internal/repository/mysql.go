package repository

import (
	"context"
	"time"

	"botshield/internal/config"
	"botshield/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.DailyCount{}, &model.Setting{}, &model.DetectionEvent{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// IncrementDailyCount records one hit for (botName, day) as a single
// atomic upsert. Concurrent callers serialize inside the database; no
// increment is ever lost and no advisory lock is taken.
func (r *MySQLRepository) IncrementDailyCount(ctx context.Context, botName, day string, blocked bool) error {
	blockedInc := int64(0)
	if blocked {
		blockedInc = 1
	}

	row := &model.DailyCount{
		BotName:      botName,
		DateRecorded: day,
		HitCount:     1,
		BlockedCount: blockedInc,
	}

	// INSERT ... ON DUPLICATE KEY UPDATE on the (bot_name, date_recorded)
	// unique key
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "bot_name"}, {Name: "date_recorded"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"hit_count":     gorm.Expr("hit_count + 1"),
			"blocked_count": gorm.Expr("blocked_count + ?", blockedInc),
		}),
	}).Create(row).Error
}

// QueryBotStats aggregates counters per bot over the date range,
// ordered by descending total.
func (r *MySQLRepository) QueryBotStats(ctx context.Context, startDate, endDate string) ([]BotStatRow, error) {
	var rows []BotStatRow
	err := r.db.WithContext(ctx).
		Model(&model.DailyCount{}).
		Select("bot_name, SUM(hit_count) AS total, SUM(blocked_count) AS blocked").
		Where("date_recorded BETWEEN ? AND ?", startDate, endDate).
		Group("bot_name").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}

// QueryDailyStats aggregates counters per day over the date range,
// ordered by ascending date.
func (r *MySQLRepository) QueryDailyStats(ctx context.Context, startDate, endDate string) ([]DailyStatRow, error) {
	var rows []DailyStatRow
	err := r.db.WithContext(ctx).
		Model(&model.DailyCount{}).
		Select("date_recorded, SUM(hit_count) AS hits, SUM(blocked_count) AS blocks").
		Where("date_recorded BETWEEN ? AND ?", startDate, endDate).
		Group("date_recorded").
		Order("date_recorded ASC").
		Scan(&rows).Error
	return rows, err
}

// GetSetting retrieves a persisted setting value
func (r *MySQLRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var s model.Setting
	err := r.db.WithContext(ctx).
		Where("`key` = ?", key).
		First(&s).Error
	if err != nil {
		return "", err
	}
	return s.Value, nil
}

// SaveSetting upserts a setting value
func (r *MySQLRepository) SaveSetting(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&model.Setting{Key: key, Value: value}).Error
}

// SaveDetectionEvent persists a finalized detection session
func (r *MySQLRepository) SaveDetectionEvent(ctx context.Context, event *model.DetectionEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetRecentEvents retrieves the most recent detection events
func (r *MySQLRepository) GetRecentEvents(ctx context.Context, limit int) ([]model.DetectionEvent, error) {
	var events []model.DetectionEvent
	query := r.db.WithContext(ctx).Order("observed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&events).Error
	return events, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
