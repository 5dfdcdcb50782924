package sqldb

import (
	"context"

	"github.com/google/uuid"
)

const createUser = `
INSERT INTO users (id, first_name, last_name, email, password_hash, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type CreateUserParams struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createUser,
		arg.ID, arg.FirstName, arg.LastName, arg.Email, arg.PasswordHash, arg.Role).Scan(&id)
	return id, err
}

const getUserByID = `
SELECT id, first_name, last_name, email, password_hash, role, is_active, created_at, updated_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	row := db.QueryRow(ctx, getUserByID, id)
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByEmail = `
SELECT id, first_name, last_name, email, password_hash, role, is_active, created_at, updated_at
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	row := db.QueryRow(ctx, getUserByEmail, email)
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const setUserActive = `
UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1
`

func (q *Queries) SetUserActive(ctx context.Context, db DBTX, id uuid.UUID, isActive bool) (int64, error) {
	tag, err := db.Exec(ctx, setUserActive, id, isActive)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const setUserRole = `
UPDATE users SET role = $2, updated_at = now() WHERE id = $1
`

func (q *Queries) SetUserRole(ctx context.Context, db DBTX, id uuid.UUID, role string) (int64, error) {
	tag, err := db.Exec(ctx, setUserRole, id, role)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
