package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/domain/migration"
	"stamppass/internal/infra"
	"stamppass/internal/infra/db"
)

type MigrationRepository struct {
	db *pgxpool.Pool
}

func NewMigrationRepository(pool *pgxpool.Pool) *MigrationRepository {
	return &MigrationRepository{db: pool}
}

func (r *MigrationRepository) Create(ctx context.Context, tx db.DBTX, req *migration.Request) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO migration_requests (
			id, store_id, customer_id, claimed_stamp_count, proof_image_url, status, resolved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID(), req.StoreID(), req.CustomerID(), req.ClaimedStampCount(),
		req.ProofImageURL(), req.Status().String(), req.ResolvedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create migration request", err)
	}
	return nil
}

func (r *MigrationRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*migration.Request, error) {
	var (
		reqID, storeID, customerID uuid.UUID
		claimedStampCount          int32
		proofImageURL, status      string
		resolvedAt                 *time.Time
		createdAt, updatedAt       time.Time
	)
	err := tx.QueryRow(ctx, `
		SELECT id, store_id, customer_id, claimed_stamp_count, proof_image_url,
		       status, resolved_at, created_at, updated_at
		FROM migration_requests
		WHERE id = $1
		FOR UPDATE`,
		id,
	).Scan(&reqID, &storeID, &customerID, &claimedStampCount, &proofImageURL,
		&status, &resolvedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find migration request", err)
	}
	return migration.ReconstructRequest(
		reqID, storeID, customerID, claimedStampCount, proofImageURL,
		migration.Status(status), resolvedAt, createdAt, updatedAt,
	), nil
}

func (r *MigrationRepository) Update(ctx context.Context, tx db.DBTX, req *migration.Request) error {
	tag, err := tx.Exec(ctx, `
		UPDATE migration_requests
		SET status = $2, resolved_at = $3, updated_at = now()
		WHERE id = $1`,
		req.ID(), req.Status().String(), req.ResolvedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update migration request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "migration request not found for update")
	}
	return nil
}
