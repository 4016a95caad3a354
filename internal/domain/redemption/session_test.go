//go:build unit

package redemption_test

import (
	"testing"
	"time"

	"stamppass/internal/domain/redemption"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionValidityWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := uuid.New()
	s := redemption.NewSession(uuid.New(), customerID, now, 60*time.Second)

	assert.Equal(t, int32(60), s.RemainingSeconds(now))
	assert.Equal(t, int32(30), s.RemainingSeconds(now.Add(30*time.Second)))
	assert.False(t, s.HasExpired(now.Add(59*time.Second)))

	// Boundary: at exactly expiresAt the session is gone.
	assert.True(t, s.HasExpired(now.Add(60*time.Second)))
	assert.Equal(t, int32(0), s.RemainingSeconds(now.Add(60*time.Second)))
	assert.Equal(t, int32(0), s.RemainingSeconds(now.Add(2*time.Minute)))

	assert.True(t, s.BelongsTo(customerID))
	assert.False(t, s.BelongsTo(uuid.New()))
}
