package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/domain/issuance"
	reqdto "stamppass/internal/handler/dto/request"
	"stamppass/internal/infra"
	"stamppass/internal/infra/db"
	"stamppass/internal/pkg/clock"
	"stamppass/internal/pkg/config"
	"stamppass/internal/pkg/errs"
	"stamppass/internal/usecase/queries"
)

var (
	ErrStoreNotFound           = errs.New("store not found")
	ErrStoreInactive           = errs.New("store inactive")
	ErrWalletCardNotFound      = errs.New("wallet stamp card not found")
	ErrWalletCardCompleted     = errs.New("wallet stamp card already completed")
	ErrIssuanceRequestNotFound = errs.New("issuance request not found")
	ErrIssuanceNotPending      = errs.New("issuance request is not pending")
	ErrIssuanceExpired         = errs.New("issuance request expired")
	ErrDuplicateIssuance       = errs.New("duplicate issuance request")
	ErrIssuancePendingExists   = errs.New("live pending issuance request exists for card")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateIssuanceResult struct {
	Request    *queries.IssuanceRequestView
	IsReplayed bool
}

type ResolveIssuanceResult struct {
	Request      *queries.IssuanceRequestView
	RewardIssued bool
	RewardName   string
}

type IssuanceCommands interface {
	RequestStamp(ctx context.Context, req reqdto.CreateIssuanceRequest, customerID uuid.UUID) (*CreateIssuanceResult, error)
	Approve(ctx context.Context, storeID, requestID uuid.UUID) (*ResolveIssuanceResult, error)
	Reject(ctx context.Context, storeID, requestID uuid.UUID) (*ResolveIssuanceResult, error)
}

type issuanceUseCaseImpl struct {
	issuanceRepo     IssuanceRepository
	walletRepo       WalletRepository
	storeRepo        StoreRepository
	idempotencyRepo  IdempotencyRepository
	notificationRepo NotificationRepository
	issuanceQueries  queries.IssuanceQueries
	protocol         config.ProtocolConfig
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewIssuanceUseCase(
	issuanceRepo IssuanceRepository,
	walletRepo WalletRepository,
	storeRepo StoreRepository,
	idempotencyRepo IdempotencyRepository,
	notificationRepo NotificationRepository,
	issuanceQueries queries.IssuanceQueries,
	protocol config.ProtocolConfig,
	db *pgxpool.Pool,
	clock clock.Clock,
) IssuanceCommands {
	return &issuanceUseCaseImpl{
		issuanceRepo:     issuanceRepo,
		walletRepo:       walletRepo,
		storeRepo:        storeRepo,
		idempotencyRepo:  idempotencyRepo,
		notificationRepo: notificationRepo,
		issuanceQueries:  issuanceQueries,
		protocol:         protocol,
		db:               db,
		clock:            clock,
	}
}

func (u *issuanceUseCaseImpl) RequestStamp(
	ctx context.Context,
	req reqdto.CreateIssuanceRequest,
	customerID uuid.UUID,
) (*CreateIssuanceResult, error) {
	requestHash := u.calculateRequestHash(req)
	keyExpiresAt := u.clock.Now().Add(u.protocol.IdempotencyTTL)

	existing, err := u.handleIdempotency(ctx, req.IdempotencyKey, customerID, requestHash, keyExpiresAt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &CreateIssuanceResult{Request: existing, IsReplayed: true}, nil
	}

	view, err := u.createNewRequest(ctx, req, customerID)
	if err != nil {
		return nil, err
	}
	return &CreateIssuanceResult{Request: view, IsReplayed: false}, nil
}

func (u *issuanceUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, customerID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.IssuanceRequestView, error) {
	if err := u.idempotencyRepo.TryInsert(ctx, idempotencyKey, customerID, "POST /issuance-requests", requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	existing, err := u.idempotencyRepo.Get(ctx, idempotencyKey, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultRequestID != nil {
			// Use system-level access for idempotency replay
			return u.issuanceQueries.GetByIDSystem(ctx, *existing.ResultRequestID)
		}
		return nil, errs.New("completed idempotency key missing result request ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateIssuance
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (u *issuanceUseCaseImpl) createNewRequest(
	ctx context.Context,
	req reqdto.CreateIssuanceRequest,
	customerID uuid.UUID,
) (*queries.IssuanceRequestView, error) {
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

	card, err := u.walletRepo.FindCard(ctx, req.WalletStampCardID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWalletCardNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if card.CustomerID() != customerID || card.StoreID() != req.StoreID {
		// Hide existence of other customers' cards
		return nil, ErrWalletCardNotFound
	}
	if card.IsCompleted() {
		return nil, ErrWalletCardCompleted
	}

	now := u.clock.Now()
	hasPending, err := u.issuanceRepo.HasLivePending(ctx, card.ID(), now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if hasPending {
		return nil, ErrIssuancePendingExists
	}

	request := issuance.NewRequest(req.StoreID, card.ID(), customerID, now, u.protocol.IssuanceTTL)

	return u.executeCreateTransaction(ctx, request, req.IdempotencyKey, customerID)
}

func (u *issuanceUseCaseImpl) executeCreateTransaction(
	ctx context.Context,
	request *issuance.Request,
	idempotencyKey, customerID uuid.UUID,
) (*queries.IssuanceRequestView, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := u.issuanceRepo.Create(ctx, tx, request); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, customerID, request.ID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the view the customer will poll against
	view, err := u.issuanceQueries.GetByIDSystem(ctx, request.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *issuanceUseCaseImpl) Approve(ctx context.Context, storeID, requestID uuid.UUID) (*ResolveIssuanceResult, error) {
	return u.resolve(ctx, storeID, requestID, true)
}

func (u *issuanceUseCaseImpl) Reject(ctx context.Context, storeID, requestID uuid.UUID) (*ResolveIssuanceResult, error) {
	return u.resolve(ctx, storeID, requestID, false)
}

func (u *issuanceUseCaseImpl) resolve(
	ctx context.Context,
	storeID, requestID uuid.UUID,
	approve bool,
) (*ResolveIssuanceResult, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	request, err := u.issuanceRepo.FindByIDForUpdate(ctx, tx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrIssuanceRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if request.StoreID() != storeID {
		return nil, ErrIssuanceRequestNotFound
	}

	now := u.clock.Now()
	if request.IsPending() && request.HasExpired(now) {
		// Persist the lazy expiry so the processed list reflects it
		if expireErr := u.expireRequest(ctx, tx, request, now); expireErr != nil {
			return nil, expireErr
		}
		return nil, ErrIssuanceExpired
	}

	rewardIssued := false
	rewardName := ""
	if approve {
		rewardIssued, rewardName, err = u.approveRequest(ctx, tx, request, now)
	} else {
		err = u.rejectRequest(request, now)
	}
	if err != nil {
		return nil, err
	}

	if err := u.issuanceRepo.Update(ctx, tx, request); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	view, err := u.issuanceQueries.GetByIDSystem(ctx, request.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &ResolveIssuanceResult{
		Request:      view,
		RewardIssued: rewardIssued,
		RewardName:   rewardName,
	}, nil
}

// approveRequest mutates the wallet card and, on goal completion, mints the
// reward and starts the customer on a fresh card of the same design.
func (u *issuanceUseCaseImpl) approveRequest(
	ctx context.Context,
	tx db.DBTX,
	request *issuance.Request,
	now time.Time,
) (rewardIssued bool, rewardName string, err error) {
	card, err := u.walletRepo.FindCardForUpdate(ctx, tx, request.WalletStampCardID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, "", ErrWalletCardNotFound
		}
		return false, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	completed, err := card.AddStamps(1)
	if err != nil {
		return false, "", errs.Mark(err, ErrDomainValidation)
	}

	rewardsIssued := int32(0)
	if completed {
		rewardName, err = mintRewardAndFreshCard(ctx, tx, u.walletRepo, u.storeRepo, u.notificationRepo, card, now)
		if err != nil {
			return false, "", err
		}
		rewardsIssued = 1
		rewardIssued = true
	}

	if err := request.Approve(now, card.StampCount(), rewardsIssued); err != nil {
		return false, "", mapIssuanceDomainErr(err)
	}

	if err := u.walletRepo.UpdateCard(ctx, tx, card); err != nil {
		return false, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rewardIssued, rewardName, nil
}

func (u *issuanceUseCaseImpl) rejectRequest(request *issuance.Request, now time.Time) error {
	if err := request.Reject(now); err != nil {
		return mapIssuanceDomainErr(err)
	}
	return nil
}

func (u *issuanceUseCaseImpl) expireRequest(
	ctx context.Context,
	tx pgx.Tx,
	request *issuance.Request,
	now time.Time,
) error {
	if err := request.Expire(now); err != nil {
		return mapIssuanceDomainErr(err)
	}
	if err := u.issuanceRepo.Update(ctx, tx, request); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *issuanceUseCaseImpl) calculateRequestHash(req reqdto.CreateIssuanceRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func mapIssuanceDomainErr(err error) error {
	switch {
	case errors.Is(err, issuance.ErrNotPending):
		return ErrIssuanceNotPending
	case errors.Is(err, issuance.ErrExpired):
		return ErrIssuanceExpired
	case errors.Is(err, issuance.ErrInvalidTransition):
		return ErrIssuanceNotPending
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
