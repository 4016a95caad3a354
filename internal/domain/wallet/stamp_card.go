package wallet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGoalCount = errors.New("goal count must be positive")
	ErrCardCompleted    = errors.New("stamp card already completed")
	ErrInvalidStampAdd  = errors.New("stamps added must be positive")
)

// StampCard is a customer-held instance of a store's card design. It fills
// toward goalCount; completing it mints a reward and the customer continues
// on a fresh card.
type StampCard struct {
	id          uuid.UUID
	customerID  uuid.UUID
	storeID     uuid.UUID
	designID    uuid.UUID
	stampCount  int32
	goalCount   int32
	isCompleted bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStampCard(customerID, storeID, designID uuid.UUID, goalCount int32) (*StampCard, error) {
	if goalCount <= 0 {
		return nil, ErrInvalidGoalCount
	}
	return &StampCard{
		id:         uuid.New(),
		customerID: customerID,
		storeID:    storeID,
		designID:   designID,
		goalCount:  goalCount,
	}, nil
}

func ReconstructStampCard(
	id, customerID, storeID, designID uuid.UUID,
	stampCount, goalCount int32,
	isCompleted bool,
	createdAt, updatedAt time.Time,
) *StampCard {
	return &StampCard{
		id:          id,
		customerID:  customerID,
		storeID:     storeID,
		designID:    designID,
		stampCount:  stampCount,
		goalCount:   goalCount,
		isCompleted: isCompleted,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *StampCard) ID() uuid.UUID         { return c.id }
func (c *StampCard) CustomerID() uuid.UUID { return c.customerID }
func (c *StampCard) StoreID() uuid.UUID    { return c.storeID }
func (c *StampCard) DesignID() uuid.UUID   { return c.designID }
func (c *StampCard) StampCount() int32     { return c.stampCount }
func (c *StampCard) GoalCount() int32      { return c.goalCount }
func (c *StampCard) IsCompleted() bool     { return c.isCompleted }
func (c *StampCard) CreatedAt() time.Time  { return c.createdAt }
func (c *StampCard) UpdatedAt() time.Time  { return c.updatedAt }

// AddStamps fills the card and reports whether it reached its goal. The count
// is capped at goalCount; overshoot does not roll onto the next card (the
// terminal approves one stamp at a time, migration credits are pre-capped).
func (c *StampCard) AddStamps(n int32) (completed bool, err error) {
	if c.isCompleted {
		return false, ErrCardCompleted
	}
	if n <= 0 {
		return false, ErrInvalidStampAdd
	}
	c.stampCount += n
	if c.stampCount >= c.goalCount {
		c.stampCount = c.goalCount
		c.isCompleted = true
	}
	return c.isCompleted, nil
}
