package service

import (
	"context"
	"testing"

	"botshield/internal/mocks"
	"botshield/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSettingsService_BlockingEnabled(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		blockingDefault bool
		storedValue     string
		storedErr       error
		want            bool
		wantErr         bool
	}{
		{
			name:        "stored on",
			storedValue: "1",
			want:        true,
		},
		{
			name:        "stored off",
			storedValue: "0",
			want:        false,
		},
		{
			name:            "unset falls back to default on",
			blockingDefault: true,
			storedErr:       gorm.ErrRecordNotFound,
			want:            true,
		},
		{
			name:            "unset falls back to default off",
			blockingDefault: false,
			storedErr:       gorm.ErrRecordNotFound,
			want:            false,
		},
		{
			name:      "store failure propagates",
			storedErr: assert.AnError,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
			mockMySQL.EXPECT().GetSetting(gomock.Any(), model.SettingBlockingEnabled).
				Return(tt.storedValue, tt.storedErr)

			svc := NewSettingsService(mockMySQL, nil, tt.blockingDefault)

			got, err := svc.BlockingEnabled(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_SetBlockingEnabled(t *testing.T) {
	ctx := context.Background()

	t.Run("enable persists and invalidates snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		mockMySQL.EXPECT().SaveSetting(gomock.Any(), model.SettingBlockingEnabled, "1").Return(nil)
		mockRedis.EXPECT().InvalidatePatternSnapshot(gomock.Any()).Return(nil)

		svc := NewSettingsService(mockMySQL, mockRedis, false)

		assert.NoError(t, svc.SetBlockingEnabled(ctx, true))
	})

	t.Run("disable persists zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		mockMySQL.EXPECT().SaveSetting(gomock.Any(), model.SettingBlockingEnabled, "0").Return(nil)
		mockRedis.EXPECT().InvalidatePatternSnapshot(gomock.Any()).Return(nil)

		svc := NewSettingsService(mockMySQL, mockRedis, true)

		assert.NoError(t, svc.SetBlockingEnabled(ctx, false))
	})

	t.Run("save failure propagates without invalidation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		mockMySQL.EXPECT().SaveSetting(gomock.Any(), model.SettingBlockingEnabled, "1").Return(assert.AnError)

		svc := NewSettingsService(mockMySQL, mockRedis, false)

		assert.Error(t, svc.SetBlockingEnabled(ctx, true))
	})

	t.Run("snapshot invalidation failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		mockMySQL.EXPECT().SaveSetting(gomock.Any(), model.SettingBlockingEnabled, "1").Return(nil)
		mockRedis.EXPECT().InvalidatePatternSnapshot(gomock.Any()).Return(assert.AnError)

		svc := NewSettingsService(mockMySQL, mockRedis, false)

		assert.NoError(t, svc.SetBlockingEnabled(ctx, true))
	})
}
