package sqldb

import (
	"context"

	"github.com/google/uuid"
)

const createBrand = `
INSERT INTO brands (id, name, website, email, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

type CreateBrandParams struct {
	ID           uuid.UUID
	Name         string
	Website      string
	Email        string
	PasswordHash string
}

func (q *Queries) CreateBrand(ctx context.Context, db DBTX, arg CreateBrandParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createBrand,
		arg.ID, arg.Name, arg.Website, arg.Email, arg.PasswordHash).Scan(&id)
	return id, err
}

const getBrandByID = `
SELECT id, name, website, email, password_hash, is_active, created_at, updated_at
FROM brands
WHERE id = $1
`

func (q *Queries) GetBrandByID(ctx context.Context, db DBTX, id uuid.UUID) (Brand, error) {
	row := db.QueryRow(ctx, getBrandByID, id)
	var b Brand
	err := row.Scan(&b.ID, &b.Name, &b.Website, &b.Email, &b.PasswordHash, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const getBrandByEmail = `
SELECT id, name, website, email, password_hash, is_active, created_at, updated_at
FROM brands
WHERE email = $1
`

func (q *Queries) GetBrandByEmail(ctx context.Context, db DBTX, email string) (Brand, error) {
	row := db.QueryRow(ctx, getBrandByEmail, email)
	var b Brand
	err := row.Scan(&b.ID, &b.Name, &b.Website, &b.Email, &b.PasswordHash, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const updateBrandProfile = `
UPDATE brands
SET name       = COALESCE(NULLIF($2, ''), name),
    website    = COALESCE(NULLIF($3, ''), website),
    updated_at = now()
WHERE id = $1
RETURNING id, name, website, email, password_hash, is_active, created_at, updated_at
`

type UpdateBrandProfileParams struct {
	ID      uuid.UUID
	Name    string
	Website string
}

func (q *Queries) UpdateBrandProfile(ctx context.Context, db DBTX, arg UpdateBrandProfileParams) (Brand, error) {
	row := db.QueryRow(ctx, updateBrandProfile, arg.ID, arg.Name, arg.Website)
	var b Brand
	err := row.Scan(&b.ID, &b.Name, &b.Website, &b.Email, &b.PasswordHash, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}
