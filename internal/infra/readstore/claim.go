package readstore

import (
	"context"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimViewQueries interface {
	ListClaimsByDiscount(ctx context.Context, db sqldb.DBTX, discountID uuid.UUID) ([]sqldb.ClaimHistoryRow, error)
	ListClaimsByUser(ctx context.Context, db sqldb.DBTX, userID uuid.UUID) ([]sqldb.UserClaimRow, error)
}

type ClaimReadStore struct {
	queries ClaimViewQueries
	db      sqldb.DBTX
}

func NewClaimReadStore(queries ClaimViewQueries, db sqldb.DBTX) *ClaimReadStore {
	return &ClaimReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClaimReadStore) FindByDiscount(ctx context.Context, discountID uuid.UUID) ([]*queries.ClaimHistoryItem, error) {
	rows, err := r.queries.ListClaimsByDiscount(ctx, r.db, discountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims by discount", err)
	}

	result := make([]*queries.ClaimHistoryItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ClaimHistoryItem{
			ClaimID:       row.ClaimID,
			UserID:        row.UserID,
			UserFirstName: row.UserFirstName,
			UserEmail:     row.UserEmail,
			ClaimedAt:     row.ClaimedAt,
		}
	}
	return result, nil
}

func (r *ClaimReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserClaimItem, error) {
	rows, err := r.queries.ListClaimsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims by user", err)
	}

	result := make([]*queries.UserClaimItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.UserClaimItem{
			ClaimID:      row.ClaimID,
			DiscountID:   row.DiscountID,
			Code:         row.Code,
			Description:  row.Description,
			BrandID:      row.BrandID,
			BrandName:    row.BrandName,
			BrandWebsite: row.BrandWebsite,
			ClaimedAt:    row.ClaimedAt,
		}
	}
	return result, nil
}
