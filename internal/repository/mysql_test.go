package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"botshield/internal/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestMySQLRepository_IncrementDailyCount(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("increment is a single upsert statement", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `bot_daily_counts` .* ON DUPLICATE KEY UPDATE").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.IncrementDailyCount(ctx, "GPTBot", "2026-08-31", false)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blocked hit increments blocked counter", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `bot_daily_counts` .* ON DUPLICATE KEY UPDATE").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.IncrementDailyCount(ctx, "GPTBot", "2026-08-31", true)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error propagates", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `bot_daily_counts`").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.IncrementDailyCount(ctx, "GPTBot", "2026-08-31", false)
		assert.Error(t, err)
	})
}

func TestMySQLRepository_QueryBotStats(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"bot_name", "total", "blocked"}).
		AddRow("GPTBot", 120, 40).
		AddRow("ClaudeBot", 80, 0)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT bot_name, SUM(hit_count) AS total, SUM(blocked_count) AS blocked FROM `bot_daily_counts` WHERE date_recorded BETWEEN ? AND ? GROUP BY `bot_name` ORDER BY total DESC")).
		WithArgs("2026-08-01", "2026-08-31").
		WillReturnRows(rows)

	stats, err := repo.QueryBotStats(ctx, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "GPTBot", stats[0].BotName)
	assert.Equal(t, int64(120), stats[0].Total)
	assert.Equal(t, int64(40), stats[0].Blocked)
	assert.Equal(t, "ClaudeBot", stats[1].BotName)
}

func TestMySQLRepository_QueryDailyStats(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"date_recorded", "hits", "blocks"}).
		AddRow("2026-08-30", 15, 5).
		AddRow("2026-08-31", 22, 8)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT date_recorded, SUM(hit_count) AS hits, SUM(blocked_count) AS blocks FROM `bot_daily_counts` WHERE date_recorded BETWEEN ? AND ? GROUP BY `date_recorded` ORDER BY date_recorded ASC")).
		WithArgs("2026-08-01", "2026-08-31").
		WillReturnRows(rows)

	stats, err := repo.QueryDailyStats(ctx, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2026-08-30", stats[0].DateRecorded)
	assert.Equal(t, int64(22), stats[1].Hits)
}

func TestMySQLRepository_GetSetting(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("existing setting", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("blocking_enabled", "1", time.Now())

		mock.ExpectQuery("SELECT \\* FROM `settings` WHERE `key` = \\?").
			WithArgs("blocking_enabled", 1).
			WillReturnRows(rows)

		value, err := repo.GetSetting(ctx, "blocking_enabled")
		require.NoError(t, err)
		assert.Equal(t, "1", value)
	})

	t.Run("missing setting returns record not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `settings` WHERE `key` = \\?").
			WithArgs("missing", 1).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

		_, err := repo.GetSetting(ctx, "missing")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestMySQLRepository_SaveSetting(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `settings` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveSetting(ctx, "blocking_enabled", "0")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepository_SaveDetectionEvent(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `detection_events`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveDetectionEvent(ctx, &model.DetectionEvent{
		EventID:    "7f9c24e8-3b2a-4d6b-9f1e-8a5c2d7b4e3f",
		UserAgent:  "Mozilla/5.0 (compatible; GPTBot/1.0)",
		BotName:    "GPTBot",
		IsBot:      true,
		Score:      95,
		ObservedAt: time.Now().UTC(),
	})
	assert.NoError(t, err)
}

func TestMySQLRepository_GetRecentEvents(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "event_id", "user_agent", "bot_name", "is_bot", "score", "observed_at"}).
		AddRow(2, "event-2", "GPTBot/1.0", "GPTBot", true, 95, time.Now()).
		AddRow(1, "event-1", "Mozilla/5.0", "", false, 10, time.Now().Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `detection_events` ORDER BY observed_at DESC LIMIT ?")).
		WithArgs(50).
		WillReturnRows(rows)

	events, err := repo.GetRecentEvents(ctx, 50)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "event-2", events[0].EventID)
	assert.True(t, events[0].IsBot)
}
