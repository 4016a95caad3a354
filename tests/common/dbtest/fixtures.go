//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stamppass/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultStoreName   = "Seoul Roasters"
	DefaultDesignName  = "Americano stamp card"
	DefaultGoalCount   = 10
	DefaultRewardName  = "Free americano"
	DefaultPassword   = "password123"
	DefaultOwnerEmail = "owner@seoulroasters.example"
)

var (
	hashOnce            sync.Once
	defaultPasswordHash string
)

// defaultHash hashes DefaultPassword once per process; bcrypt is too slow to
// run per fixture call.
func defaultHash() string {
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		if err != nil {
			panic(fmt.Sprintf("failed to hash fixture password: %v", err))
		}
		defaultPasswordHash = h
	})
	return defaultPasswordHash
}

// SeedReferenceData inserts the baseline rows every e2e test assumes: one
// store with an owner and one live card design.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	ownerID := uuid.New()
	if _, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, 'owner', true)
		ON CONFLICT (email) DO NOTHING`,
		ownerID, DefaultOwnerEmail, defaultHash()); err != nil {
		return err
	}
	if err := pool.QueryRow(ctx,
		"SELECT id FROM users WHERE email = $1", DefaultOwnerEmail).Scan(&ownerID); err != nil {
		return err
	}

	storeID := uuid.New()
	tag, err := pool.Exec(ctx, `
		INSERT INTO stores (id, owner_id, name, is_active)
		SELECT $1, $2, $3, true
		WHERE NOT EXISTS (SELECT 1 FROM stores WHERE name = $3)`,
		storeID, ownerID, DefaultStoreName)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if err := pool.QueryRow(ctx,
			"SELECT id FROM stores WHERE name = $1", DefaultStoreName).Scan(&storeID); err != nil {
			return err
		}
	}

	if _, err := pool.Exec(ctx,
		"UPDATE users SET store_id = $1 WHERE id = $2", storeID, ownerID); err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO stamp_cards (store_id, name, goal_count, reward_name, design)
		SELECT $1, $2, $3, $4, '{"theme": "espresso"}'::jsonb
		WHERE NOT EXISTS (SELECT 1 FROM stamp_cards WHERE store_id = $1 AND name = $2)`,
		storeID, DefaultDesignName, DefaultGoalCount, DefaultRewardName)
	return err
}

// DefaultStoreID looks up the seeded store.
func DefaultStoreID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM stores WHERE name = $1", DefaultStoreName).Scan(&id)
	require.NoError(t, err)
	return id
}

// DefaultDesignID looks up the seeded card design for the store.
func DefaultDesignID(t *testing.T, db DBLike, storeID uuid.UUID) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM stamp_cards WHERE store_id = $1 ORDER BY created_at DESC LIMIT 1", storeID).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestUser inserts a user with the shared fixture password. Staff and
// owner roles must carry a store.
func CreateTestUser(t *testing.T, db DBLike, email, role string, storeID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, store_id, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, defaultHash(), role, storeID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}
	return userID
}

// CreateWalletCard mints a wallet stamp card at the given count for a
// customer.
func CreateWalletCard(t *testing.T, db DBLike, customerID, storeID, designID uuid.UUID, stampCount int32) uuid.UUID {
	t.Helper()

	cardID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO wallet_stamp_cards (id, customer_id, store_id, stamp_card_id, stamp_count, goal_count)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		cardID, customerID, storeID, designID, stampCount, DefaultGoalCount)
	require.NoError(t, err)
	return cardID
}

// CreateActiveReward inserts a redeemable reward for a customer.
func CreateActiveReward(t *testing.T, db DBLike, customerID, walletCardID uuid.UUID) uuid.UUID {
	t.Helper()

	rewardID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO rewards (id, customer_id, wallet_stamp_card_id, name, status)
		VALUES ($1, $2, $3, $4, 'active')`,
		rewardID, customerID, walletCardID, DefaultRewardName)
	require.NoError(t, err)
	return rewardID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table and reseeds reference data so subtests start
// from a known state.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
