package queries

import (
	"context"

	"github.com/google/uuid"
)

type BrandQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BrandView, error)
}

type BrandViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BrandView, error)
}

type brandQueriesImpl struct {
	repo BrandViewRepo
}

func NewBrandQueries(repo BrandViewRepo) BrandQueries {
	return &brandQueriesImpl{repo: repo}
}

func (q *brandQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BrandView, error) {
	return q.repo.FindByID(ctx, id)
}
