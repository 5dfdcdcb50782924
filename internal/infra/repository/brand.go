package repository

import (
	"context"

	"discount-hub/internal/domain/brand"
	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type BrandWriteQueries interface {
	CreateBrand(ctx context.Context, db sqldb.DBTX, arg sqldb.CreateBrandParams) (uuid.UUID, error)
	UpdateBrandProfile(ctx context.Context, db sqldb.DBTX, arg sqldb.UpdateBrandProfileParams) (sqldb.Brand, error)
}

type BrandRepository struct {
	queries BrandWriteQueries
}

func NewBrandRepository(queries BrandWriteQueries) *BrandRepository {
	return &BrandRepository{queries: queries}
}

func (r *BrandRepository) Create(ctx context.Context, db sqldb.DBTX, b *brand.Brand) (uuid.UUID, error) {
	id, err := r.queries.CreateBrand(ctx, db, sqldb.CreateBrandParams{
		ID:           b.ID(),
		Name:         b.Name().Value(),
		Website:      b.Website().Value(),
		Email:        b.Email().Value(),
		PasswordHash: b.PasswordHash(),
	})
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("brand email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create brand", err)
	}
	return id, nil
}

func (r *BrandRepository) UpdateProfile(ctx context.Context, db sqldb.DBTX, id uuid.UUID, name, website string) (*shared.BrandSnapshot, error) {
	row, err := r.queries.UpdateBrandProfile(ctx, db, sqldb.UpdateBrandProfileParams{
		ID:      id,
		Name:    name,
		Website: website,
	})
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("brand not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update brand profile", err)
	}
	return &shared.BrandSnapshot{
		ID:        row.ID,
		Name:      row.Name,
		Website:   row.Website,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
