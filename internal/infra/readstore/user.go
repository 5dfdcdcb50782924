package readstore

import (
	"context"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserViewQueries interface {
	GetUserByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.User, error)
	GetUserByEmail(ctx context.Context, db sqldb.DBTX, email string) (sqldb.User, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqldb.DBTX
}

func NewUserReadStore(queries UserViewQueries, db sqldb.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &queries.UserView{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}, nil
}

// FindByEmailWithHash returns the view plus the stored password hash for
// credential checks.
func (r *UserReadStore) FindByEmailWithHash(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}, row.PasswordHash, nil
}
