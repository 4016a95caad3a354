package queries

import (
	"context"

	"github.com/google/uuid"

	"stamppass/internal/infra"
	"stamppass/internal/pkg/errs"
)

var ErrMigrationNotFound = errs.New("migration request not found")

type MigrationQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*MigrationRequestView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*MigrationRequestView, error)
	ListSubmittedByStore(ctx context.Context, storeID uuid.UUID) ([]*MigrationRequestView, error)
}

type MigrationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MigrationRequestView, uuid.UUID, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*MigrationRequestView, error)
	// FindSubmittedByStore returns unresolved requests, oldest first.
	FindSubmittedByStore(ctx context.Context, storeID uuid.UUID) ([]*MigrationRequestView, error)
}

type migrationQueriesImpl struct {
	readStore MigrationReadStore
}

func NewMigrationQueries(readStore MigrationReadStore) MigrationQueries {
	return &migrationQueriesImpl{
		readStore: readStore,
	}
}

func (q *migrationQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*MigrationRequestView, error) {
	view, customerID, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMigrationNotFound
		}
		return nil, err
	}
	if customerID != actor {
		return nil, ErrMigrationNotFound
	}
	return view, nil
}

func (q *migrationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*MigrationRequestView, error) {
	return q.readStore.FindByCustomer(ctx, customerID)
}

func (q *migrationQueriesImpl) ListSubmittedByStore(ctx context.Context, storeID uuid.UUID) ([]*MigrationRequestView, error) {
	return q.readStore.FindSubmittedByStore(ctx, storeID)
}
