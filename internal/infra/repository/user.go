package repository

import (
	"context"

	"discount-hub/internal/domain/user"
	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqldb.DBTX, arg sqldb.CreateUserParams) (uuid.UUID, error)
	SetUserActive(ctx context.Context, db sqldb.DBTX, id uuid.UUID, isActive bool) (int64, error)
	SetUserRole(ctx context.Context, db sqldb.DBTX, id uuid.UUID, role string) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, db sqldb.DBTX, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, db, sqldb.CreateUserParams{
		ID:           u.ID(),
		FirstName:    u.FirstName().Value(),
		LastName:     u.LastName().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
	})
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) SetActive(ctx context.Context, db sqldb.DBTX, id uuid.UUID, isActive bool) error {
	affected, err := r.queries.SetUserActive(ctx, db, id, isActive)
	if err != nil {
		return infra.WrapRepoErr("failed to update user active flag", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetRole(ctx context.Context, db sqldb.DBTX, id uuid.UUID, role user.Role) error {
	affected, err := r.queries.SetUserRole(ctx, db, id, string(role))
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
