package queries

import (
	"context"

	"github.com/google/uuid"
)

type ClaimQueries interface {
	HistoryByDiscount(ctx context.Context, discountID uuid.UUID) ([]*ClaimHistoryItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserClaimItem, error)
}

type ClaimViewRepo interface {
	FindByDiscount(ctx context.Context, discountID uuid.UUID) ([]*ClaimHistoryItem, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*UserClaimItem, error)
}

type claimQueriesImpl struct {
	repo ClaimViewRepo
}

func NewClaimQueries(repo ClaimViewRepo) ClaimQueries {
	return &claimQueriesImpl{repo: repo}
}

func (q *claimQueriesImpl) HistoryByDiscount(ctx context.Context, discountID uuid.UUID) ([]*ClaimHistoryItem, error) {
	return q.repo.FindByDiscount(ctx, discountID)
}

func (q *claimQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserClaimItem, error) {
	return q.repo.FindByUser(ctx, userID)
}
