package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/domain/wallet"
	"stamppass/internal/infra/db"
	"stamppass/internal/pkg/errs"
)

// mintRewardAndFreshCard handles goal completion: mints the design's reward,
// starts the customer on a fresh card of the same design, and enqueues the
// reward-issued push job. Returns the reward name for the response message.
func mintRewardAndFreshCard(
	ctx context.Context,
	tx db.DBTX,
	walletRepo WalletRepository,
	storeRepo StoreRepository,
	notificationRepo NotificationRepository,
	card *wallet.StampCard,
	now time.Time,
) (string, error) {
	design, err := storeRepo.FindDesignByID(ctx, card.DesignID())
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	reward := wallet.NewReward(card.CustomerID(), card.ID(), design.RewardName, nil)
	if err := walletRepo.CreateReward(ctx, tx, reward); err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	freshCard, err := wallet.NewStampCard(card.CustomerID(), card.StoreID(), design.ID, design.GoalCount)
	if err != nil {
		return "", errs.Mark(err, ErrDomainValidation)
	}
	if err := walletRepo.CreateCard(ctx, tx, freshCard); err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := createRewardNotification(ctx, tx, notificationRepo, card.CustomerID(), reward.ID(), design.RewardName, now); err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return design.RewardName, nil
}

func createRewardNotification(
	ctx context.Context,
	tx db.DBTX,
	notificationRepo NotificationRepository,
	customerID, rewardID uuid.UUID,
	rewardName string,
	now time.Time,
) error {
	payload, err := json.Marshal(map[string]any{
		"customer_id": customerID,
		"reward_id":   rewardID,
		"reward_name": rewardName,
		"type":        "reward_issued",
	})
	if err != nil {
		return err
	}
	return notificationRepo.CreateJob(ctx, tx, "push", "reward_issued", payload, now)
}
