package shared

import (
	"time"

	"github.com/google/uuid"
)

// DiscountSnapshot is the write-side read model returned by repositories.
// Values reflect the row at the time of the enclosing transaction.
type DiscountSnapshot struct {
	ID           uuid.UUID
	BrandID      uuid.UUID
	Code         string
	Description  string
	Quantity     int32
	ClaimedCount int32
	Hide         bool
	Enable       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s DiscountSnapshot) Balance() int32 {
	if s.ClaimedCount >= s.Quantity {
		return 0
	}
	return s.Quantity - s.ClaimedCount
}

type BrandSnapshot struct {
	ID        uuid.UUID
	Name      string
	Website   string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserSnapshot struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}
