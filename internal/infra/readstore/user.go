package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/infra"
	"stamppass/internal/usecase/queries"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, store_id, is_active
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.Email, &view.Role, &view.StoreID, &view.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, store_id, is_active, password_hash
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&view.ID, &view.Email, &view.Role, &view.StoreID, &view.IsActive, &passwordHash)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}
