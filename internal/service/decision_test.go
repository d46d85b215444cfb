package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"botshield/internal/mocks"
	"botshield/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testCatalogue = []model.BotPattern{
	{Name: "Google-Extended"},
	{Name: "Googlebot"},
	{Name: "GPTBot"},
	{Name: "ClaudeBot"},
}

func snapshotPayload(t *testing.T, snap ShieldSnapshot) string {
	t.Helper()
	payload, err := json.Marshal(snap)
	require.NoError(t, err)
	return string(payload)
}

func TestDecisionService_Decide(t *testing.T) {
	ctx := context.Background()
	today := time.Now().UTC().Format("2006-01-02")

	gptBotUA := "Mozilla/5.0 (compatible; GPTBot/1.0; +https://openai.com/gptbot)"

	t.Run("empty user agent allows without counting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		svc := NewDecisionService(mockMySQL, mockRedis, nil, nil, testCatalogue, time.Minute)

		decision, err := svc.Decide(ctx, "")
		require.NoError(t, err)
		assert.False(t, decision.Blocked)
		assert.Empty(t, decision.MatchedBot)
	})

	t.Run("disallowed bot is blocked and counted once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockFilter := mocks.NewMockAgentFilterServiceInterface(ctrl)

		snap := ShieldSnapshot{
			BlockingEnabled: true,
			Disallowed:      []model.BotPattern{{Name: "GPTBot"}},
		}
		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return(snapshotPayload(t, snap), nil)
		mockFilter.EXPECT().Observe(gomock.Any(), gptBotUA).Return(false, nil)
		mockMySQL.EXPECT().IncrementDailyCount(gomock.Any(), "GPTBot", today, true).Return(nil)
		mockRedis.EXPECT().IncrementLive(gomock.Any(), "GPTBot", today, true).Return(nil)

		svc := NewDecisionService(mockMySQL, mockRedis, nil, mockFilter, testCatalogue, time.Minute)

		decision, err := svc.Decide(ctx, gptBotUA)
		require.NoError(t, err)
		assert.True(t, decision.Blocked)
		assert.Equal(t, "GPTBot", decision.MatchedBot)
	})

	t.Run("blocking disabled allows known bot with analytics count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockFilter := mocks.NewMockAgentFilterServiceInterface(ctrl)

		snap := ShieldSnapshot{
			BlockingEnabled: false,
			Disallowed:      []model.BotPattern{{Name: "GPTBot"}},
		}
		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return(snapshotPayload(t, snap), nil)
		mockFilter.EXPECT().Observe(gomock.Any(), gptBotUA).Return(true, nil)
		mockMySQL.EXPECT().IncrementDailyCount(gomock.Any(), "GPTBot", today, false).Return(nil)
		mockRedis.EXPECT().IncrementLive(gomock.Any(), "GPTBot", today, false).Return(nil)

		svc := NewDecisionService(mockMySQL, mockRedis, nil, mockFilter, testCatalogue, time.Minute)

		decision, err := svc.Decide(ctx, gptBotUA)
		require.NoError(t, err)
		assert.False(t, decision.Blocked)
		assert.Equal(t, "GPTBot", decision.MatchedBot)
	})

	t.Run("unmatched browser is allowed without counting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		snap := ShieldSnapshot{
			BlockingEnabled: true,
			Disallowed:      []model.BotPattern{{Name: "GPTBot"}},
		}
		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return(snapshotPayload(t, snap), nil)

		svc := NewDecisionService(mockMySQL, mockRedis, nil, nil, testCatalogue, time.Minute)

		decision, err := svc.Decide(ctx, "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0")
		require.NoError(t, err)
		assert.False(t, decision.Blocked)
		assert.Empty(t, decision.MatchedBot)
	})

	t.Run("count failure never changes the decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockFilter := mocks.NewMockAgentFilterServiceInterface(ctrl)

		snap := ShieldSnapshot{
			BlockingEnabled: true,
			Disallowed:      []model.BotPattern{{Name: "GPTBot"}},
		}
		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return(snapshotPayload(t, snap), nil)
		mockFilter.EXPECT().Observe(gomock.Any(), gptBotUA).Return(false, nil)
		mockMySQL.EXPECT().IncrementDailyCount(gomock.Any(), "GPTBot", today, true).Return(assert.AnError)

		svc := NewDecisionService(mockMySQL, mockRedis, nil, mockFilter, testCatalogue, time.Minute)

		decision, err := svc.Decide(ctx, gptBotUA)
		assert.ErrorIs(t, err, ErrCountFailed)
		assert.True(t, decision.Blocked)
		assert.Equal(t, "GPTBot", decision.MatchedBot)
	})

	t.Run("disallow phase wins over catalogue phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockFilter := mocks.NewMockAgentFilterServiceInterface(ctrl)

		// GPTBot appears in both lists; exactly one increment happens
		snap := ShieldSnapshot{
			BlockingEnabled: true,
			Disallowed:      []model.BotPattern{{Name: "GPTBot"}},
		}
		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return(snapshotPayload(t, snap), nil)
		mockFilter.EXPECT().Observe(gomock.Any(), gptBotUA).Return(false, nil)
		mockMySQL.EXPECT().IncrementDailyCount(gomock.Any(), "GPTBot", today, true).Return(nil).Times(1)
		mockRedis.EXPECT().IncrementLive(gomock.Any(), "GPTBot", today, true).Return(nil).Times(1)

		svc := NewDecisionService(mockMySQL, mockRedis, nil, mockFilter, testCatalogue, time.Minute)

		decision, err := svc.Decide(ctx, gptBotUA)
		require.NoError(t, err)
		assert.True(t, decision.Blocked)
	})

	t.Run("live counter failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockFilter := mocks.NewMockAgentFilterServiceInterface(ctrl)

		snap := ShieldSnapshot{
			BlockingEnabled: true,
			Disallowed:      []model.BotPattern{{Name: "GPTBot"}},
		}
		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return(snapshotPayload(t, snap), nil)
		mockFilter.EXPECT().Observe(gomock.Any(), gptBotUA).Return(false, nil)
		mockMySQL.EXPECT().IncrementDailyCount(gomock.Any(), "GPTBot", today, true).Return(nil)
		mockRedis.EXPECT().IncrementLive(gomock.Any(), "GPTBot", today, true).Return(assert.AnError)

		svc := NewDecisionService(mockMySQL, mockRedis, nil, mockFilter, testCatalogue, time.Minute)

		_, err := svc.Decide(ctx, gptBotUA)
		assert.NoError(t, err)
	})
}

func TestDecisionService_SnapshotRebuild(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss rebuilds from settings store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockSettings := mocks.NewMockSettingsServiceInterface(ctrl)

		doc := "# Begin BotShield\nUser-agent: GPTBot\nDisallow: /\n# End BotShield\n"

		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return("", redis.Nil)
		mockSettings.EXPECT().BlockingEnabled(gomock.Any()).Return(true, nil)
		mockMySQL.EXPECT().GetSetting(gomock.Any(), model.SettingDirectiveText).Return(doc, nil)
		mockRedis.EXPECT().SetPatternSnapshot(gomock.Any(), gomock.Any(), time.Minute).Return(nil)

		svc := NewDecisionService(mockMySQL, mockRedis, mockSettings, nil, testCatalogue, time.Minute)

		snap := svc.snapshot(ctx)
		assert.True(t, snap.BlockingEnabled)
		require.Len(t, snap.Disallowed, 1)
		assert.Equal(t, "GPTBot", snap.Disallowed[0].Name)
	})

	t.Run("missing directive document degrades to empty disallow list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockSettings := mocks.NewMockSettingsServiceInterface(ctrl)

		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return("", redis.Nil)
		mockSettings.EXPECT().BlockingEnabled(gomock.Any()).Return(true, nil)
		mockMySQL.EXPECT().GetSetting(gomock.Any(), model.SettingDirectiveText).Return("", gorm.ErrRecordNotFound)
		mockRedis.EXPECT().SetPatternSnapshot(gomock.Any(), gomock.Any(), time.Minute).Return(nil)

		svc := NewDecisionService(mockMySQL, mockRedis, mockSettings, nil, testCatalogue, time.Minute)

		snap := svc.snapshot(ctx)
		assert.True(t, snap.BlockingEnabled)
		assert.Empty(t, snap.Disallowed)
	})

	t.Run("corrupt cached snapshot is rebuilt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockSettings := mocks.NewMockSettingsServiceInterface(ctrl)

		mockRedis.EXPECT().GetPatternSnapshot(gomock.Any()).Return("{not json", nil)
		mockSettings.EXPECT().BlockingEnabled(gomock.Any()).Return(false, nil)
		mockMySQL.EXPECT().GetSetting(gomock.Any(), model.SettingDirectiveText).Return("", gorm.ErrRecordNotFound)
		mockRedis.EXPECT().SetPatternSnapshot(gomock.Any(), gomock.Any(), time.Minute).Return(nil)

		svc := NewDecisionService(mockMySQL, mockRedis, mockSettings, nil, testCatalogue, time.Minute)

		snap := svc.snapshot(ctx)
		assert.False(t, snap.BlockingEnabled)
	})
}
