package queries

import (
	"context"

	"github.com/google/uuid"

	"stamppass/internal/infra"
	"stamppass/internal/pkg/errs"
)

var (
	ErrWalletCardNotFound = errs.New("wallet stamp card not found")
	ErrRewardNotFound     = errs.New("reward not found")
)

type WalletQueries interface {
	ListStampCards(ctx context.Context, customerID uuid.UUID) ([]*WalletStampCardView, error)
	GetStampCard(ctx context.Context, customerID, cardID uuid.UUID) (*WalletStampCardView, error)
	ListRewards(ctx context.Context, customerID uuid.UUID) ([]*RewardView, error)
}

type WalletReadStore interface {
	// FindStampCardsByCustomer returns the customer's cards, active first,
	// newest first within each group.
	FindStampCardsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*WalletStampCardView, error)
	FindStampCardByID(ctx context.Context, cardID uuid.UUID) (*WalletStampCardView, uuid.UUID, error)
	// FindRewardsByCustomer returns active rewards first, then used ones,
	// newest first within each group.
	FindRewardsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*RewardView, error)
}

type walletQueriesImpl struct {
	readStore WalletReadStore
}

func NewWalletQueries(readStore WalletReadStore) WalletQueries {
	return &walletQueriesImpl{
		readStore: readStore,
	}
}

func (q *walletQueriesImpl) ListStampCards(ctx context.Context, customerID uuid.UUID) ([]*WalletStampCardView, error) {
	return q.readStore.FindStampCardsByCustomer(ctx, customerID)
}

func (q *walletQueriesImpl) GetStampCard(ctx context.Context, customerID, cardID uuid.UUID) (*WalletStampCardView, error) {
	view, ownerID, err := q.readStore.FindStampCardByID(ctx, cardID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWalletCardNotFound
		}
		return nil, err
	}
	if ownerID != customerID {
		return nil, ErrWalletCardNotFound
	}
	return view, nil
}

func (q *walletQueriesImpl) ListRewards(ctx context.Context, customerID uuid.UUID) ([]*RewardView, error) {
	return q.readStore.FindRewardsByCustomer(ctx, customerID)
}
