package shared

import (
	"context"

	"discount-hub/internal/domain/brand"
	"discount-hub/internal/domain/discount"
	"discount-hub/internal/domain/user"
	"discount-hub/internal/infra/sqldb"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqldb.DBTX) error) error
}

type Tx interface {
	Discounts() DiscountRepository
	Claims() ClaimRepository
	Users() UserRepository
	Brands() BrandRepository
	DB() sqldb.DBTX
}

type DiscountRepository interface {
	Create(ctx context.Context, db sqldb.DBTX, d *discount.Discount) (uuid.UUID, error)
	// FindForUpdate takes the discount row lock; claims for the same
	// discount serialize behind it.
	FindForUpdate(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (*DiscountSnapshot, error)
	Update(ctx context.Context, db sqldb.DBTX, d *discount.Discount) (*DiscountSnapshot, error)
	IncrementClaimed(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (int64, error)
}

type ClaimRepository interface {
	// Insert returns the number of rows written: zero means the
	// (user, discount) pair already holds a claim.
	Insert(ctx context.Context, db sqldb.DBTX, userID, discountID uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, db sqldb.DBTX, u *user.User) (uuid.UUID, error)
	SetActive(ctx context.Context, db sqldb.DBTX, id uuid.UUID, isActive bool) error
	SetRole(ctx context.Context, db sqldb.DBTX, id uuid.UUID, role user.Role) error
}

type BrandRepository interface {
	Create(ctx context.Context, db sqldb.DBTX, b *brand.Brand) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, db sqldb.DBTX, id uuid.UUID, name, website string) (*BrandSnapshot, error)
}
