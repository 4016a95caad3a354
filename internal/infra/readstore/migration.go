package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/infra"
	"stamppass/internal/usecase/queries"
)

const migrationViewSelect = `
	SELECT mr.id, mr.store_id, s.name, mr.claimed_stamp_count, mr.proof_image_url,
	       mr.status, mr.resolved_at, mr.created_at
	FROM migration_requests mr
	JOIN stores s ON s.id = mr.store_id`

type MigrationReadStore struct {
	db *pgxpool.Pool
}

func NewMigrationReadStore(pool *pgxpool.Pool) *MigrationReadStore {
	return &MigrationReadStore{db: pool}
}

func (r *MigrationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MigrationRequestView, uuid.UUID, error) {
	var (
		view       queries.MigrationRequestView
		customerID uuid.UUID
	)
	err := r.db.QueryRow(ctx, `
		SELECT mr.id, mr.customer_id, mr.store_id, s.name, mr.claimed_stamp_count,
		       mr.proof_image_url, mr.status, mr.resolved_at, mr.created_at
		FROM migration_requests mr
		JOIN stores s ON s.id = mr.store_id
		WHERE mr.id = $1`,
		id,
	).Scan(&view.ID, &customerID, &view.StoreID, &view.StoreName, &view.ClaimedStampCount,
		&view.ProofImageURL, &view.Status, &view.ResolvedAt, &view.CreatedAt)
	if err != nil {
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find migration request by ID", err)
	}
	return &view, customerID, nil
}

func (r *MigrationReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.MigrationRequestView, error) {
	rows, err := r.db.Query(ctx,
		migrationViewSelect+` WHERE mr.customer_id = $1 ORDER BY mr.created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find migration requests by customer", err)
	}
	return collectMigrationViews(rows)
}

func (r *MigrationReadStore) FindSubmittedByStore(ctx context.Context, storeID uuid.UUID) ([]*queries.MigrationRequestView, error) {
	rows, err := r.db.Query(ctx,
		migrationViewSelect+` WHERE mr.store_id = $1 AND mr.status = 'SUBMITTED' ORDER BY mr.created_at ASC`,
		storeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find submitted migration requests", err)
	}
	return collectMigrationViews(rows)
}

func collectMigrationViews(rows pgx.Rows) ([]*queries.MigrationRequestView, error) {
	defer rows.Close()

	views := make([]*queries.MigrationRequestView, 0)
	for rows.Next() {
		var view queries.MigrationRequestView
		if err := rows.Scan(&view.ID, &view.StoreID, &view.StoreName, &view.ClaimedStampCount,
			&view.ProofImageURL, &view.Status, &view.ResolvedAt, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan migration request", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate migration requests", err)
	}
	return views, nil
}
