package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/infra"
	"stamppass/internal/usecase/queries"
)

type IssuanceReadStore struct {
	db *pgxpool.Pool
}

func NewIssuanceReadStore(pool *pgxpool.Pool) *IssuanceReadStore {
	return &IssuanceReadStore{db: pool}
}

func (r *IssuanceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.IssuanceRequestView, error) {
	var view queries.IssuanceRequestView
	err := r.db.QueryRow(ctx, `
		SELECT ir.id, ir.store_id, ir.wallet_stamp_card_id, ir.customer_id,
		       ir.status, ir.stamp_count_snapshot, ir.rewards_issued,
		       ir.expires_at, ir.resolved_at, ir.created_at
		FROM issuance_requests ir
		WHERE ir.id = $1`,
		id,
	).Scan(&view.ID, &view.StoreID, &view.WalletStampCardID, &view.CustomerID,
		&view.Status, &view.CurrentStampCount, &view.RewardsIssued,
		&view.ExpiresAt, &view.ResolvedAt, &view.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find issuance request by ID", err)
	}
	return &view, nil
}

func (r *IssuanceReadStore) FindPendingByStore(ctx context.Context, storeID uuid.UUID) ([]*queries.PendingIssuanceItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ir.id, ir.wallet_stamp_card_id, u.email,
		       wc.stamp_count, wc.goal_count, ir.expires_at, ir.created_at
		FROM issuance_requests ir
		JOIN users u ON u.id = ir.customer_id
		JOIN wallet_stamp_cards wc ON wc.id = ir.wallet_stamp_card_id
		WHERE ir.store_id = $1 AND ir.status = 'PENDING' AND ir.expires_at > now()
		ORDER BY ir.created_at ASC`,
		storeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending issuance requests", err)
	}
	defer rows.Close()

	items := make([]*queries.PendingIssuanceItem, 0)
	for rows.Next() {
		var item queries.PendingIssuanceItem
		if err := rows.Scan(&item.ID, &item.WalletStampCardID, &item.CustomerEmail,
			&item.CurrentStampCount, &item.GoalCount, &item.ExpiresAt, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending issuance request", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending issuance requests", err)
	}
	return items, nil
}

func (r *IssuanceReadStore) FindProcessedByStore(ctx context.Context, storeID uuid.UUID, limit int32) ([]*queries.ProcessedIssuanceItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ir.id, u.email, ir.status, ir.rewards_issued, ir.resolved_at, ir.created_at
		FROM issuance_requests ir
		JOIN users u ON u.id = ir.customer_id
		WHERE ir.store_id = $1 AND ir.status <> 'PENDING'
		ORDER BY ir.resolved_at DESC NULLS LAST
		LIMIT $2`,
		storeID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find processed issuance requests", err)
	}
	defer rows.Close()

	items := make([]*queries.ProcessedIssuanceItem, 0)
	for rows.Next() {
		var item queries.ProcessedIssuanceItem
		if err := rows.Scan(&item.ID, &item.CustomerEmail, &item.Status,
			&item.RewardsIssued, &item.ResolvedAt, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan processed issuance request", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate processed issuance requests", err)
	}
	return items, nil
}
