package sqldb

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID           uuid.UUID
	Name         string
	Website      string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Discount struct {
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

type Claim struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DiscountID uuid.UUID
	CreatedAt  time.Time
}

type ConfigParameter struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// PublicDiscountRow joins a discount with its owning brand for listings.
type PublicDiscountRow struct {
	ID           uuid.UUID
	Code         string
	Description  string
	BrandID      uuid.UUID
	BrandName    string
	BrandWebsite string
}

// ClaimHistoryRow joins a claim with claimant display data.
type ClaimHistoryRow struct {
	ClaimID        uuid.UUID
	DiscountID     uuid.UUID
	UserID         uuid.UUID
	UserFirstName  string
	UserEmail      string
	ClaimedAt      time.Time
}

// UserClaimRow joins a user's claim with the discount and brand.
type UserClaimRow struct {
	ClaimID      uuid.UUID
	DiscountID   uuid.UUID
	Code         string
	Description  string
	BrandID      uuid.UUID
	BrandName    string
	BrandWebsite string
	ClaimedAt    time.Time
}
