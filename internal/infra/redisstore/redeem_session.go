package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"stamppass/internal/domain/redemption"
	"stamppass/internal/infra"
)

const sessionKeyPrefix = "redeem_session:"

// RedeemSessionStore keeps redeem sessions in Redis. The key TTL is the
// session's entire lifecycle: existence means valid, GETDEL is the one
// atomic consume, and expiry needs no sweeper.
type RedeemSessionStore struct {
	client *redis.Client
}

func NewRedeemSessionStore(client *redis.Client) *RedeemSessionStore {
	return &RedeemSessionStore{client: client}
}

type sessionRecord struct {
	WalletRewardID uuid.UUID `json:"wallet_reward_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (s *RedeemSessionStore) Put(ctx context.Context, session *redemption.Session, ttl time.Duration) error {
	record := sessionRecord{
		WalletRewardID: session.WalletRewardID(),
		CustomerID:     session.CustomerID(),
		ExpiresAt:      session.ExpiresAt(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal redeem session", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID()), data, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store redeem session", err)
	}
	return nil
}

func (s *RedeemSessionStore) Consume(ctx context.Context, id uuid.UUID) (*redemption.Session, error) {
	data, err := s.client.GetDel(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "redeem session not found or expired")
		}
		return nil, infra.WrapRepoErr("failed to consume redeem session", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal redeem session", err)
	}
	return redemption.ReconstructSession(id, record.WalletRewardID, record.CustomerID, record.ExpiresAt), nil
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}
