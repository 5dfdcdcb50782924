package repository

import (
	"context"

	"discount-hub/internal/domain/discount"
	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type DiscountWriteQueries interface {
	CreateDiscount(ctx context.Context, db sqldb.DBTX, arg sqldb.CreateDiscountParams) (sqldb.Discount, error)
	GetDiscountForClaim(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Discount, error)
	UpdateDiscount(ctx context.Context, db sqldb.DBTX, arg sqldb.UpdateDiscountParams) (sqldb.Discount, error)
	IncrementClaimedCount(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (int64, error)
}

type DiscountRepository struct {
	queries DiscountWriteQueries
}

func NewDiscountRepository(queries DiscountWriteQueries) *DiscountRepository {
	return &DiscountRepository{queries: queries}
}

func (r *DiscountRepository) Create(ctx context.Context, db sqldb.DBTX, d *discount.Discount) (uuid.UUID, error) {
	row, err := r.queries.CreateDiscount(ctx, db, sqldb.CreateDiscountParams{
		ID:          d.ID(),
		BrandID:     d.BrandID(),
		Code:        d.Code().String(),
		Description: d.Description().Value(),
		Quantity:    int32(d.Quantity().Value()),
		Hide:        d.Hidden(),
		Enable:      d.Enabled(),
	})
	if err != nil {
		switch {
		case infra.IsUniqueViolation(err):
			return uuid.Nil, infra.WrapRepoErr("discount code already exists for brand", err, infra.KindDuplicateKey)
		case infra.IsForeignKeyViolation(err):
			return uuid.Nil, infra.WrapRepoErr("brand does not exist", err, infra.KindForeignKeyViolated)
		default:
			return uuid.Nil, infra.WrapRepoErr("failed to create discount", err)
		}
	}
	return row.ID, nil
}

// FindForUpdate locks the discount row until the enclosing transaction
// ends. Callers must run inside UnitOfWork.Within.
func (r *DiscountRepository) FindForUpdate(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (*shared.DiscountSnapshot, error) {
	row, err := r.queries.GetDiscountForClaim(ctx, db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock discount", err)
	}
	return toDiscountSnapshot(row), nil
}

func (r *DiscountRepository) Update(ctx context.Context, db sqldb.DBTX, d *discount.Discount) (*shared.DiscountSnapshot, error) {
	row, err := r.queries.UpdateDiscount(ctx, db, sqldb.UpdateDiscountParams{
		ID:          d.ID(),
		Code:        d.Code().String(),
		Description: d.Description().Value(),
		Quantity:    int32(d.Quantity().Value()),
		Hide:        d.Hidden(),
		Enable:      d.Enabled(),
	})
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		if infra.IsCheckViolation(err) {
			return nil, infra.WrapRepoErr("quantity below claimed count", err, infra.KindDBFailure)
		}
		return nil, infra.WrapRepoErr("failed to update discount", err)
	}
	return toDiscountSnapshot(row), nil
}

// IncrementClaimed bumps claimed_count only while it is below quantity.
// Zero affected rows means the discount is exhausted.
func (r *DiscountRepository) IncrementClaimed(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (int64, error) {
	affected, err := r.queries.IncrementClaimedCount(ctx, db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment claimed count", err)
	}
	return affected, nil
}

func toDiscountSnapshot(row sqldb.Discount) *shared.DiscountSnapshot {
	return &shared.DiscountSnapshot{
		ID:           row.ID,
		BrandID:      row.BrandID,
		Code:         row.Code,
		Description:  row.Description,
		Quantity:     row.Quantity,
		ClaimedCount: row.ClaimedCount,
		Hide:         row.Hide,
		Enable:       row.Enable,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
