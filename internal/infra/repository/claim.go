package repository

import (
	"context"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"

	"github.com/google/uuid"
)

type ClaimWriteQueries interface {
	InsertClaim(ctx context.Context, db sqldb.DBTX, arg sqldb.InsertClaimParams) (int64, error)
}

type ClaimRepository struct {
	queries ClaimWriteQueries
}

func NewClaimRepository(queries ClaimWriteQueries) *ClaimRepository {
	return &ClaimRepository{queries: queries}
}

// Insert relies on the unique (user_id, discount_id) pair: a conflicting
// insert affects zero rows instead of failing, which keeps the claim
// transaction alive for the caller to translate into a domain error.
func (r *ClaimRepository) Insert(ctx context.Context, db sqldb.DBTX, userID, discountID uuid.UUID) (int64, error) {
	affected, err := r.queries.InsertClaim(ctx, db, sqldb.InsertClaimParams{
		ID:         uuid.New(),
		UserID:     userID,
		DiscountID: discountID,
	})
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("user or discount does not exist", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to insert claim", err)
	}
	return affected, nil
}
