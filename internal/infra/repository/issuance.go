package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/domain/issuance"
	"stamppass/internal/infra"
	"stamppass/internal/infra/db"
)

type IssuanceRepository struct {
	db *pgxpool.Pool
}

func NewIssuanceRepository(pool *pgxpool.Pool) *IssuanceRepository {
	return &IssuanceRepository{db: pool}
}

func (r *IssuanceRepository) Create(ctx context.Context, tx db.DBTX, req *issuance.Request) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO issuance_requests (
			id, store_id, wallet_stamp_card_id, customer_id, status,
			stamp_count_snapshot, rewards_issued, expires_at, resolved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.ID(), req.StoreID(), req.WalletStampCardID(), req.CustomerID(), req.Status().String(),
		req.StampCountSnapshot(), req.RewardsIssued(), req.ExpiresAt(), req.ResolvedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create issuance request", err)
	}
	return nil
}

func (r *IssuanceRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*issuance.Request, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, store_id, wallet_stamp_card_id, customer_id, status,
		       stamp_count_snapshot, rewards_issued, expires_at, resolved_at,
		       created_at, updated_at
		FROM issuance_requests
		WHERE id = $1
		FOR UPDATE`,
		id,
	)
	return scanIssuanceRequest(row)
}

func (r *IssuanceRepository) Update(ctx context.Context, tx db.DBTX, req *issuance.Request) error {
	tag, err := tx.Exec(ctx, `
		UPDATE issuance_requests
		SET status = $2, stamp_count_snapshot = $3, rewards_issued = $4,
		    resolved_at = $5, updated_at = now()
		WHERE id = $1`,
		req.ID(), req.Status().String(), req.StampCountSnapshot(), req.RewardsIssued(), req.ResolvedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update issuance request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "issuance request not found for update")
	}
	return nil
}

func (r *IssuanceRepository) HasLivePending(ctx context.Context, walletStampCardID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM issuance_requests
			WHERE wallet_stamp_card_id = $1 AND status = 'PENDING' AND expires_at > $2
		)`,
		walletStampCardID, now,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check live pending issuance request", err)
	}
	return exists, nil
}

func scanIssuanceRequest(row interface{ Scan(dest ...any) error }) (*issuance.Request, error) {
	var (
		id, storeID, cardID, customerID uuid.UUID
		status                          string
		stampCountSnapshot              int32
		rewardsIssued                   int32
		expiresAt, createdAt, updatedAt time.Time
		resolvedAt                      *time.Time
	)
	err := row.Scan(&id, &storeID, &cardID, &customerID, &status,
		&stampCountSnapshot, &rewardsIssued, &expiresAt, &resolvedAt,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan issuance request", err)
	}
	return issuance.ReconstructRequest(
		id, storeID, cardID, customerID,
		issuance.Status(status),
		stampCountSnapshot, rewardsIssued,
		expiresAt, resolvedAt, createdAt, updatedAt,
	), nil
}
