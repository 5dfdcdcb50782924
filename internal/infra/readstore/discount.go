package readstore

import (
	"context"
	"strings"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type DiscountViewQueries interface {
	ListPublicDiscounts(ctx context.Context, db sqldb.DBTX, arg sqldb.ListPublicDiscountsParams) ([]sqldb.PublicDiscountRow, error)
	ListBrandDiscounts(ctx context.Context, db sqldb.DBTX, brandID uuid.UUID) ([]sqldb.Discount, error)
	GetDiscountByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Discount, error)
}

type DiscountReadStore struct {
	queries DiscountViewQueries
	db      sqldb.DBTX
}

func NewDiscountReadStore(queries DiscountViewQueries, db sqldb.DBTX) *DiscountReadStore {
	return &DiscountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DiscountReadStore) FindPublic(ctx context.Context, filter queries.PublicFilter, afterCode *string, afterID *uuid.UUID, limit int32) ([]*queries.PublicDiscountView, error) {
	rows, err := r.queries.ListPublicDiscounts(ctx, r.db, sqldb.ListPublicDiscountsParams{
		IDs:       filter.IDs,
		Website:   filter.Website,
		Search:    escapeLikePattern(filter.Search),
		AfterCode: afterCode,
		AfterID:   afterID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list public discounts", err)
	}

	result := make([]*queries.PublicDiscountView, len(rows))
	for i, row := range rows {
		result[i] = &queries.PublicDiscountView{
			ID:           row.ID,
			Code:         row.Code,
			Description:  row.Description,
			BrandID:      row.BrandID,
			BrandName:    row.BrandName,
			BrandWebsite: row.BrandWebsite,
		}
	}
	return result, nil
}

func (r *DiscountReadStore) FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*queries.BrandDiscountView, error) {
	rows, err := r.queries.ListBrandDiscounts(ctx, r.db, brandID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list brand discounts", err)
	}

	result := make([]*queries.BrandDiscountView, len(rows))
	for i, row := range rows {
		result[i] = rowToBrandDiscountView(row)
	}
	return result, nil
}

func (r *DiscountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BrandDiscountView, error) {
	row, err := r.queries.GetDiscountByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount by ID", err)
	}
	return rowToBrandDiscountView(row), nil
}

// escapeLikePattern neutralizes LIKE metacharacters so a search for
// "50%_off" matches that literal text instead of acting as a wildcard.
func escapeLikePattern(search *string) *string {
	if search == nil {
		return nil
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(*search)
	return &escaped
}

func rowToBrandDiscountView(row sqldb.Discount) *queries.BrandDiscountView {
	balance := row.Quantity - row.ClaimedCount
	if balance < 0 {
		balance = 0
	}
	return &queries.BrandDiscountView{
		ID:           row.ID,
		BrandID:      row.BrandID,
		Code:         row.Code,
		Description:  row.Description,
		Quantity:     row.Quantity,
		ClaimedCount: row.ClaimedCount,
		Balance:      balance,
		Hide:         row.Hide,
		Enable:       row.Enable,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
