package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/infra"
	"stamppass/internal/usecase/commands"
)

type StoreRepository struct {
	db *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{db: pool}
}

func (r *StoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.StoreSnapshot, error) {
	var snap commands.StoreSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, name, is_active FROM stores WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Name, &snap.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find store", err)
	}
	return &snap, nil
}

// FindCurrentDesign returns the store's newest design; new wallet cards and
// migration credits are minted from it.
func (r *StoreRepository) FindCurrentDesign(ctx context.Context, storeID uuid.UUID) (*commands.CardDesignSnapshot, error) {
	var snap commands.CardDesignSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, store_id, name, goal_count, reward_name
		FROM stamp_cards
		WHERE store_id = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		storeID,
	).Scan(&snap.ID, &snap.StoreID, &snap.Name, &snap.GoalCount, &snap.RewardName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find current stamp card design", err)
	}
	return &snap, nil
}

func (r *StoreRepository) FindDesignByID(ctx context.Context, designID uuid.UUID) (*commands.CardDesignSnapshot, error) {
	var snap commands.CardDesignSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, store_id, name, goal_count, reward_name
		FROM stamp_cards
		WHERE id = $1`,
		designID,
	).Scan(&snap.ID, &snap.StoreID, &snap.Name, &snap.GoalCount, &snap.RewardName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stamp card design", err)
	}
	return &snap, nil
}
