package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stamppass/internal/domain/redemption"
	"stamppass/internal/domain/wallet"
	"stamppass/internal/infra"
	"stamppass/internal/pkg/clock"
	"stamppass/internal/pkg/config"
	"stamppass/internal/pkg/errs"
)

var (
	ErrRewardNotFound        = errs.New("reward not found")
	ErrRewardNotActive       = errs.New("reward is not active")
	ErrRedeemSessionGone     = errs.New("redeem session consumed or expired")
	ErrRedeemSessionNotOwned = errs.New("redeem session belongs to another customer")
)

type StartSessionResult struct {
	SessionID        uuid.UUID
	RemainingSeconds int32
}

type RedemptionCommands interface {
	StartSession(ctx context.Context, customerID, walletRewardID uuid.UUID) (*StartSessionResult, error)
	// CompleteSession consumes the session and marks the reward used. The
	// Redis GETDEL makes a second call, or any call after the TTL, fail.
	CompleteSession(ctx context.Context, customerID, sessionID uuid.UUID) error
}

type redemptionUseCaseImpl struct {
	walletRepo   WalletRepository
	sessionStore RedeemSessionStore
	protocol     config.ProtocolConfig
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewRedemptionUseCase(
	walletRepo WalletRepository,
	sessionStore RedeemSessionStore,
	protocol config.ProtocolConfig,
	db *pgxpool.Pool,
	clock clock.Clock,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		walletRepo:   walletRepo,
		sessionStore: sessionStore,
		protocol:     protocol,
		db:           db,
		clock:        clock,
	}
}

func (u *redemptionUseCaseImpl) StartSession(
	ctx context.Context,
	customerID, walletRewardID uuid.UUID,
) (*StartSessionResult, error) {
	reward, err := u.walletRepo.FindReward(ctx, walletRewardID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if reward.CustomerID() != customerID {
		return nil, ErrRewardNotFound
	}

	now := u.clock.Now()
	if !reward.IsActive(now) {
		return nil, ErrRewardNotActive
	}

	session := redemption.NewSession(walletRewardID, customerID, now, u.protocol.RedeemTTL)
	if err := u.sessionStore.Put(ctx, session, u.protocol.RedeemTTL); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &StartSessionResult{
		SessionID:        session.ID(),
		RemainingSeconds: session.RemainingSeconds(now),
	}, nil
}

func (u *redemptionUseCaseImpl) CompleteSession(ctx context.Context, customerID, sessionID uuid.UUID) error {
	session, err := u.sessionStore.Consume(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRedeemSessionGone
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !session.BelongsTo(customerID) {
		// The session is already consumed at this point. That is intentional:
		// a hijack attempt burns the window instead of leaving it open.
		return ErrRedeemSessionNotOwned
	}

	return u.markRewardUsed(ctx, session)
}

func (u *redemptionUseCaseImpl) markRewardUsed(ctx context.Context, session *redemption.Session) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	reward, err := u.walletRepo.FindRewardForUpdate(ctx, tx, session.WalletRewardID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRewardNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := reward.Use(u.clock.Now()); err != nil {
		switch {
		case errors.Is(err, wallet.ErrRewardUsed), errors.Is(err, wallet.ErrRewardExpired):
			return ErrRewardNotActive
		default:
			return errs.Mark(err, ErrDomainValidation)
		}
	}

	if err := u.walletRepo.UpdateReward(ctx, tx, reward); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return nil
}
