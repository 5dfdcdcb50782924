package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserViewRepo interface {
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.repo.FindAuthorizedByID(ctx, id)
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	return q.repo.FindByID(ctx, id)
}
