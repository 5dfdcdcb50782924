package readstore

import (
	"context"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BrandViewQueries interface {
	GetBrandByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Brand, error)
	GetBrandByEmail(ctx context.Context, db sqldb.DBTX, email string) (sqldb.Brand, error)
}

type BrandReadStore struct {
	queries BrandViewQueries
	db      sqldb.DBTX
}

func NewBrandReadStore(queries BrandViewQueries, db sqldb.DBTX) *BrandReadStore {
	return &BrandReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BrandReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BrandView, error) {
	row, err := r.queries.GetBrandByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("brand not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find brand by ID", err)
	}
	return rowToBrandView(row), nil
}

func (r *BrandReadStore) FindByEmailWithHash(ctx context.Context, email string) (*queries.BrandView, string, error) {
	row, err := r.queries.GetBrandByEmail(ctx, r.db, email)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("brand not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find brand by email", err)
	}
	return rowToBrandView(row), row.PasswordHash, nil
}

func rowToBrandView(row sqldb.Brand) *queries.BrandView {
	return &queries.BrandView{
		ID:        row.ID,
		Name:      row.Name,
		Website:   row.Website,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
