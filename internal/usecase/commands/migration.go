package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/domain/migration"
	"stamppass/internal/domain/wallet"
	reqdto "stamppass/internal/handler/dto/request"
	"stamppass/internal/infra"
	"stamppass/internal/infra/db"
	"stamppass/internal/pkg/clock"
	"stamppass/internal/pkg/errs"
	"stamppass/internal/usecase/queries"
)

var (
	ErrMigrationNotFound  = errs.New("migration request not found")
	ErrMigrationDuplicate = errs.New("migration request already submitted for store")
	ErrMigrationResolved  = errs.New("migration request already resolved")
)

type MigrationCommands interface {
	Submit(ctx context.Context, req reqdto.SubmitMigrationRequest, customerID uuid.UUID) (*queries.MigrationRequestView, error)
	// Approve credits min(claimed, goal) stamps onto a fresh wallet card of
	// the store's current design.
	Approve(ctx context.Context, storeID, migrationID uuid.UUID) (*queries.MigrationRequestView, error)
	Reject(ctx context.Context, storeID, migrationID uuid.UUID) (*queries.MigrationRequestView, error)
}

type migrationUseCaseImpl struct {
	migrationRepo    MigrationRepository
	walletRepo       WalletRepository
	storeRepo        StoreRepository
	notificationRepo NotificationRepository
	migrationQueries queries.MigrationQueries
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewMigrationUseCase(
	migrationRepo MigrationRepository,
	walletRepo WalletRepository,
	storeRepo StoreRepository,
	notificationRepo NotificationRepository,
	migrationQueries queries.MigrationQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) MigrationCommands {
	return &migrationUseCaseImpl{
		migrationRepo:    migrationRepo,
		walletRepo:       walletRepo,
		storeRepo:        storeRepo,
		notificationRepo: notificationRepo,
		migrationQueries: migrationQueries,
		db:               db,
		clock:            clock,
	}
}

func (u *migrationUseCaseImpl) Submit(
	ctx context.Context,
	req reqdto.SubmitMigrationRequest,
	customerID uuid.UUID,
) (*queries.MigrationRequestView, error) {
	store, err := u.storeRepo.FindByID(ctx, req.StoreID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !store.IsActive {
		return nil, ErrStoreInactive
	}

	request, err := migration.NewRequest(req.StoreID, customerID, req.ClaimedStampCount, req.TrimmedProofImageURL())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := u.migrationRepo.Create(ctx, tx, request); err != nil {
		// One migration request per store per customer, ever
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrMigrationDuplicate
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return u.migrationQueries.GetByID(ctx, customerID, request.ID())
}

func (u *migrationUseCaseImpl) Approve(ctx context.Context, storeID, migrationID uuid.UUID) (*queries.MigrationRequestView, error) {
	return u.resolve(ctx, storeID, migrationID, true)
}

func (u *migrationUseCaseImpl) Reject(ctx context.Context, storeID, migrationID uuid.UUID) (*queries.MigrationRequestView, error) {
	return u.resolve(ctx, storeID, migrationID, false)
}

func (u *migrationUseCaseImpl) resolve(
	ctx context.Context,
	storeID, migrationID uuid.UUID,
	approve bool,
) (*queries.MigrationRequestView, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	request, err := u.migrationRepo.FindByIDForUpdate(ctx, tx, migrationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMigrationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if request.StoreID() != storeID {
		return nil, ErrMigrationNotFound
	}

	now := u.clock.Now()
	if approve {
		if err := request.Approve(now); err != nil {
			return nil, mapMigrationDomainErr(err)
		}
		if err := u.creditClaimedStamps(ctx, tx, request, now); err != nil {
			return nil, err
		}
	} else {
		if err := request.Reject(now); err != nil {
			return nil, mapMigrationDomainErr(err)
		}
	}

	if err := u.migrationRepo.Update(ctx, tx, request); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return u.migrationQueries.GetByID(ctx, request.CustomerID(), request.ID())
}

// creditClaimedStamps materializes the paper-card balance as a fresh wallet
// card. The credit is capped at the design's goal; a full paper card completes
// the fresh card and mints its reward like any other completion.
func (u *migrationUseCaseImpl) creditClaimedStamps(
	ctx context.Context,
	tx db.DBTX,
	request *migration.Request,
	now time.Time,
) error {
	design, err := u.storeRepo.FindCurrentDesign(ctx, request.StoreID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrStoreNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	card, err := wallet.NewStampCard(request.CustomerID(), request.StoreID(), design.ID, design.GoalCount)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	credit := request.ClaimedStampCount()
	if credit > design.GoalCount {
		credit = design.GoalCount
	}
	completed, err := card.AddStamps(credit)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := u.walletRepo.CreateCard(ctx, tx, card); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if completed {
		if _, err := mintRewardAndFreshCard(ctx, tx, u.walletRepo, u.storeRepo, u.notificationRepo, card, now); err != nil {
			return err
		}
	}
	return nil
}

func mapMigrationDomainErr(err error) error {
	if errors.Is(err, migration.ErrAlreadyResolved) {
		return ErrMigrationResolved
	}
	return errs.Mark(err, ErrDomainValidation)
}
