package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/infra"
	"stamppass/internal/usecase/queries"
)

type WalletReadStore struct {
	db *pgxpool.Pool
}

func NewWalletReadStore(pool *pgxpool.Pool) *WalletReadStore {
	return &WalletReadStore{db: pool}
}

func (r *WalletReadStore) FindStampCardsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.WalletStampCardView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT wc.id, wc.store_id, s.name, wc.stamp_card_id, sc.name, sc.reward_name,
		       sc.design, wc.stamp_count, wc.goal_count, wc.is_completed,
		       wc.created_at, wc.updated_at
		FROM wallet_stamp_cards wc
		JOIN stores s ON s.id = wc.store_id
		JOIN stamp_cards sc ON sc.id = wc.stamp_card_id
		WHERE wc.customer_id = $1
		ORDER BY wc.is_completed ASC, wc.created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find wallet stamp cards", err)
	}
	defer rows.Close()

	cards := make([]*queries.WalletStampCardView, 0)
	for rows.Next() {
		var view queries.WalletStampCardView
		if err := rows.Scan(&view.ID, &view.StoreID, &view.StoreName, &view.DesignID,
			&view.DesignName, &view.RewardName, &view.Design, &view.StampCount,
			&view.GoalCount, &view.IsCompleted, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wallet stamp card", err)
		}
		cards = append(cards, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate wallet stamp cards", err)
	}
	return cards, nil
}

func (r *WalletReadStore) FindStampCardByID(ctx context.Context, cardID uuid.UUID) (*queries.WalletStampCardView, uuid.UUID, error) {
	var (
		view    queries.WalletStampCardView
		ownerID uuid.UUID
	)
	err := r.db.QueryRow(ctx, `
		SELECT wc.id, wc.customer_id, wc.store_id, s.name, wc.stamp_card_id, sc.name,
		       sc.reward_name, sc.design, wc.stamp_count, wc.goal_count,
		       wc.is_completed, wc.created_at, wc.updated_at
		FROM wallet_stamp_cards wc
		JOIN stores s ON s.id = wc.store_id
		JOIN stamp_cards sc ON sc.id = wc.stamp_card_id
		WHERE wc.id = $1`,
		cardID,
	).Scan(&view.ID, &ownerID, &view.StoreID, &view.StoreName, &view.DesignID,
		&view.DesignName, &view.RewardName, &view.Design, &view.StampCount,
		&view.GoalCount, &view.IsCompleted, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find wallet stamp card by ID", err)
	}
	return &view, ownerID, nil
}

func (r *WalletReadStore) FindRewardsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.RewardView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rw.id, s.name, rw.name, rw.status, rw.used_at, rw.expires_at, rw.created_at
		FROM rewards rw
		JOIN wallet_stamp_cards wc ON wc.id = rw.wallet_stamp_card_id
		JOIN stores s ON s.id = wc.store_id
		WHERE rw.customer_id = $1
		ORDER BY (rw.status = 'active') DESC, rw.created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rewards", err)
	}
	defer rows.Close()

	rewards := make([]*queries.RewardView, 0)
	for rows.Next() {
		var view queries.RewardView
		if err := rows.Scan(&view.ID, &view.StoreName, &view.Name, &view.Status,
			&view.UsedAt, &view.ExpiresAt, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reward", err)
		}
		rewards = append(rewards, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rewards", err)
	}
	return rewards, nil
}
