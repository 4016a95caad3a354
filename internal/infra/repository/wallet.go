package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/domain/wallet"
	"stamppass/internal/infra"
	"stamppass/internal/infra/db"
)

const walletCardColumns = `
	id, customer_id, store_id, stamp_card_id, stamp_count, goal_count,
	is_completed, created_at, updated_at`

const rewardColumns = `
	id, customer_id, wallet_stamp_card_id, name, status, used_at, expires_at, created_at`

type WalletRepository struct {
	db *pgxpool.Pool
}

func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: pool}
}

func (r *WalletRepository) FindCard(ctx context.Context, id uuid.UUID) (*wallet.StampCard, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+walletCardColumns+` FROM wallet_stamp_cards WHERE id = $1`, id)
	return scanStampCard(row)
}

func (r *WalletRepository) FindCardForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*wallet.StampCard, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+walletCardColumns+` FROM wallet_stamp_cards WHERE id = $1 FOR UPDATE`, id)
	return scanStampCard(row)
}

func (r *WalletRepository) FindActiveCardForUpdate(ctx context.Context, tx db.DBTX, customerID, storeID uuid.UUID) (*wallet.StampCard, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+walletCardColumns+`
		 FROM wallet_stamp_cards
		 WHERE customer_id = $1 AND store_id = $2 AND is_completed = FALSE
		 ORDER BY created_at DESC
		 LIMIT 1
		 FOR UPDATE`,
		customerID, storeID)
	return scanStampCard(row)
}

func (r *WalletRepository) CreateCard(ctx context.Context, tx db.DBTX, card *wallet.StampCard) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO wallet_stamp_cards (
			id, customer_id, store_id, stamp_card_id, stamp_count, goal_count, is_completed
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.ID(), card.CustomerID(), card.StoreID(), card.DesignID(),
		card.StampCount(), card.GoalCount(), card.IsCompleted(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create wallet stamp card", err)
	}
	return nil
}

func (r *WalletRepository) UpdateCard(ctx context.Context, tx db.DBTX, card *wallet.StampCard) error {
	tag, err := tx.Exec(ctx, `
		UPDATE wallet_stamp_cards
		SET stamp_count = $2, is_completed = $3, updated_at = now()
		WHERE id = $1`,
		card.ID(), card.StampCount(), card.IsCompleted(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update wallet stamp card", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "wallet stamp card not found for update")
	}
	return nil
}

func (r *WalletRepository) FindReward(ctx context.Context, id uuid.UUID) (*wallet.Reward, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+rewardColumns+` FROM rewards WHERE id = $1`, id)
	return scanReward(row)
}

func (r *WalletRepository) FindRewardForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*wallet.Reward, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+rewardColumns+` FROM rewards WHERE id = $1 FOR UPDATE`, id)
	return scanReward(row)
}

func (r *WalletRepository) CreateReward(ctx context.Context, tx db.DBTX, reward *wallet.Reward) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO rewards (
			id, customer_id, wallet_stamp_card_id, name, status, used_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reward.ID(), reward.CustomerID(), reward.WalletStampCardID(), reward.Name(),
		string(reward.Status()), reward.UsedAt(), reward.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reward", err)
	}
	return nil
}

func (r *WalletRepository) UpdateReward(ctx context.Context, tx db.DBTX, reward *wallet.Reward) error {
	tag, err := tx.Exec(ctx, `
		UPDATE rewards
		SET status = $2, used_at = $3
		WHERE id = $1`,
		reward.ID(), string(reward.Status()), reward.UsedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reward", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reward not found for update")
	}
	return nil
}

func scanStampCard(row interface{ Scan(dest ...any) error }) (*wallet.StampCard, error) {
	var (
		id, customerID, storeID, designID uuid.UUID
		stampCount, goalCount             int32
		isCompleted                       bool
		createdAt, updatedAt              time.Time
	)
	err := row.Scan(&id, &customerID, &storeID, &designID,
		&stampCount, &goalCount, &isCompleted, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan wallet stamp card", err)
	}
	return wallet.ReconstructStampCard(
		id, customerID, storeID, designID,
		stampCount, goalCount, isCompleted,
		createdAt, updatedAt,
	), nil
}

func scanReward(row interface{ Scan(dest ...any) error }) (*wallet.Reward, error) {
	var (
		id, customerID, cardID uuid.UUID
		name, status           string
		usedAt, expiresAt      *time.Time
		createdAt              time.Time
	)
	err := row.Scan(&id, &customerID, &cardID, &name, &status, &usedAt, &expiresAt, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reward", err)
	}
	return wallet.ReconstructReward(
		id, customerID, cardID, name,
		wallet.RewardStatus(status),
		usedAt, expiresAt, createdAt,
	), nil
}
