//go:build unit

package wallet_test

import (
	"testing"
	"time"

	"stamppass/internal/domain/wallet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampCardFill(t *testing.T) {
	card, err := wallet.NewStampCard(uuid.New(), uuid.New(), uuid.New(), 10)
	require.NoError(t, err)

	completed, err := card.AddStamps(1)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, int32(1), card.StampCount())

	completed, err = card.AddStamps(9)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.True(t, card.IsCompleted())
	assert.Equal(t, int32(10), card.StampCount())

	_, err = card.AddStamps(1)
	assert.ErrorIs(t, err, wallet.ErrCardCompleted)
}

func TestStampCardOvershootCapped(t *testing.T) {
	card, err := wallet.NewStampCard(uuid.New(), uuid.New(), uuid.New(), 5)
	require.NoError(t, err)

	completed, err := card.AddStamps(8)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, int32(5), card.StampCount())
}

func TestStampCardValidation(t *testing.T) {
	_, err := wallet.NewStampCard(uuid.New(), uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, wallet.ErrInvalidGoalCount)

	card, err := wallet.NewStampCard(uuid.New(), uuid.New(), uuid.New(), 10)
	require.NoError(t, err)
	_, err = card.AddStamps(0)
	assert.ErrorIs(t, err, wallet.ErrInvalidStampAdd)
	_, err = card.AddStamps(-3)
	assert.ErrorIs(t, err, wallet.ErrInvalidStampAdd)
}

func TestRewardUse(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reward := wallet.NewReward(uuid.New(), uuid.New(), "아메리카노 1잔", nil)

	require.True(t, reward.IsActive(now))
	require.NoError(t, reward.Use(now))
	assert.Equal(t, wallet.RewardStatusUsed, reward.Status())
	require.NotNil(t, reward.UsedAt())

	assert.ErrorIs(t, reward.Use(now.Add(time.Second)), wallet.ErrRewardUsed)
}

func TestRewardExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	exp := now.Add(24 * time.Hour)
	reward := wallet.NewReward(uuid.New(), uuid.New(), "쿠키 세트", &exp)

	assert.True(t, reward.IsActive(now))
	assert.False(t, reward.IsActive(exp))
	assert.ErrorIs(t, reward.Use(exp), wallet.ErrRewardExpired)
}
