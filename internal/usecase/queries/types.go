package queries

import (
	"time"

	"github.com/google/uuid"
)

// PublicDiscountView is what anonymous browsers see: no quantity,
// no claim counters.
type PublicDiscountView struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	BrandID      uuid.UUID `json:"brand_id"`
	BrandName    string    `json:"brand_name"`
	BrandWebsite string    `json:"brand_website"`
}

// BrandDiscountView includes the allocation counters visible to the
// owning brand and to staff.
type BrandDiscountView struct {
	ID           uuid.UUID `json:"id"`
	BrandID      uuid.UUID `json:"brand_id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	Quantity     int32     `json:"quantity"`
	ClaimedCount int32     `json:"claimed_count"`
	Balance      int32     `json:"balance"`
	Hide         bool      `json:"hide"`
	Enable       bool      `json:"enable"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClaimHistoryItem is one row of a discount's claim audit trail.
type ClaimHistoryItem struct {
	ClaimID       uuid.UUID `json:"claim_id"`
	UserID        uuid.UUID `json:"user_id"`
	UserFirstName string    `json:"user_first_name"`
	UserEmail     string    `json:"user_email"`
	ClaimedAt     time.Time `json:"claimed_at"`
}

// UserClaimItem is one discount a user has claimed.
type UserClaimItem struct {
	ClaimID      uuid.UUID `json:"claim_id"`
	DiscountID   uuid.UUID `json:"discount_id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	BrandID      uuid.UUID `json:"brand_id"`
	BrandName    string    `json:"brand_name"`
	BrandWebsite string    `json:"brand_website"`
	ClaimedAt    time.Time `json:"claimed_at"`
}

// AuthorizedUserView carries what middleware needs to authorize a request.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type BrandView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Cursor struct {
	After string
}
