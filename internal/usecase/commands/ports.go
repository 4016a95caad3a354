package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/domain/issuance"
	"stamppass/internal/domain/migration"
	"stamppass/internal/domain/redemption"
	"stamppass/internal/domain/wallet"
	"stamppass/internal/infra/db"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type StoreSnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

// CardDesignSnapshot is a store's current card design: the template wallet
// cards are instantiated from.
type CardDesignSnapshot struct {
	ID         uuid.UUID
	StoreID    uuid.UUID
	Name       string
	GoalCount  int32
	RewardName string
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultRequestID *uuid.UUID
	ExpiresAt       time.Time
}

type IssuanceRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *issuance.Request) error
	// FindByIDForUpdate locks the row so the guarded PENDING transition is
	// serialized across terminals.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*issuance.Request, error)
	Update(ctx context.Context, tx db.DBTX, req *issuance.Request) error
	// HasLivePending reports whether the wallet card already has an
	// unexpired PENDING request.
	HasLivePending(ctx context.Context, walletStampCardID uuid.UUID, now time.Time) (bool, error)
}

type WalletRepository interface {
	FindCard(ctx context.Context, id uuid.UUID) (*wallet.StampCard, error)
	FindCardForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*wallet.StampCard, error)
	// FindActiveCardForUpdate returns the customer's incomplete card for the
	// store, locked, or KindNotFound.
	FindActiveCardForUpdate(ctx context.Context, tx db.DBTX, customerID, storeID uuid.UUID) (*wallet.StampCard, error)
	CreateCard(ctx context.Context, tx db.DBTX, card *wallet.StampCard) error
	UpdateCard(ctx context.Context, tx db.DBTX, card *wallet.StampCard) error
	FindReward(ctx context.Context, id uuid.UUID) (*wallet.Reward, error)
	FindRewardForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*wallet.Reward, error)
	CreateReward(ctx context.Context, tx db.DBTX, reward *wallet.Reward) error
	UpdateReward(ctx context.Context, tx db.DBTX, reward *wallet.Reward) error
}

type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StoreSnapshot, error)
	// FindCurrentDesign returns the design new wallet cards are minted from.
	FindCurrentDesign(ctx context.Context, storeID uuid.UUID) (*CardDesignSnapshot, error)
	FindDesignByID(ctx context.Context, designID uuid.UUID) (*CardDesignSnapshot, error)
}

type MigrationRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *migration.Request) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*migration.Request, error)
	Update(ctx context.Context, tx db.DBTX, req *migration.Request) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, userID uuid.UUID, resultRequestID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// RedeemSessionStore keeps sessions in Redis: the key's TTL is the session's
// lifetime and Consume is an atomic GETDEL, so completion happens at most once.
type RedeemSessionStore interface {
	Put(ctx context.Context, session *redemption.Session, ttl time.Duration) error
	Consume(ctx context.Context, id uuid.UUID) (*redemption.Session, error)
}
