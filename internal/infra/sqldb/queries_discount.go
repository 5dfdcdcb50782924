package sqldb

import (
	"context"

	"github.com/google/uuid"
)

const createDiscount = `
INSERT INTO discounts (id, brand_id, code, description, quantity, hide, enable)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, brand_id, code, description, quantity, claimed_count, hide, enable, created_at, updated_at
`

type CreateDiscountParams struct {
	ID          uuid.UUID
	BrandID     uuid.UUID
	Code        string
	Description string
	Quantity    int32
	Hide        bool
	Enable      bool
}

func (q *Queries) CreateDiscount(ctx context.Context, db DBTX, arg CreateDiscountParams) (Discount, error) {
	row := db.QueryRow(ctx, createDiscount,
		arg.ID, arg.BrandID, arg.Code, arg.Description, arg.Quantity, arg.Hide, arg.Enable)
	var d Discount
	err := row.Scan(&d.ID, &d.BrandID, &d.Code, &d.Description, &d.Quantity, &d.ClaimedCount,
		&d.Hide, &d.Enable, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const getDiscountByID = `
SELECT id, brand_id, code, description, quantity, claimed_count, hide, enable, created_at, updated_at
FROM discounts
WHERE id = $1
`

func (q *Queries) GetDiscountByID(ctx context.Context, db DBTX, id uuid.UUID) (Discount, error) {
	row := db.QueryRow(ctx, getDiscountByID, id)
	var d Discount
	err := row.Scan(&d.ID, &d.BrandID, &d.Code, &d.Description, &d.Quantity, &d.ClaimedCount,
		&d.Hide, &d.Enable, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const getDiscountForClaim = `
SELECT id, brand_id, code, description, quantity, claimed_count, hide, enable, created_at, updated_at
FROM discounts
WHERE id = $1
FOR UPDATE
`

// GetDiscountForClaim takes a row-level exclusive lock so concurrent claims
// for the same discount serialize on the discount row.
func (q *Queries) GetDiscountForClaim(ctx context.Context, db DBTX, id uuid.UUID) (Discount, error) {
	row := db.QueryRow(ctx, getDiscountForClaim, id)
	var d Discount
	err := row.Scan(&d.ID, &d.BrandID, &d.Code, &d.Description, &d.Quantity, &d.ClaimedCount,
		&d.Hide, &d.Enable, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const updateDiscount = `
UPDATE discounts
SET code = $2, description = $3, quantity = $4, hide = $5, enable = $6, updated_at = now()
WHERE id = $1
RETURNING id, brand_id, code, description, quantity, claimed_count, hide, enable, created_at, updated_at
`

type UpdateDiscountParams struct {
	ID          uuid.UUID
	Code        string
	Description string
	Quantity    int32
	Hide        bool
	Enable      bool
}

func (q *Queries) UpdateDiscount(ctx context.Context, db DBTX, arg UpdateDiscountParams) (Discount, error) {
	row := db.QueryRow(ctx, updateDiscount,
		arg.ID, arg.Code, arg.Description, arg.Quantity, arg.Hide, arg.Enable)
	var d Discount
	err := row.Scan(&d.ID, &d.BrandID, &d.Code, &d.Description, &d.Quantity, &d.ClaimedCount,
		&d.Hide, &d.Enable, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const incrementClaimedCount = `
UPDATE discounts
SET claimed_count = claimed_count + 1, updated_at = now()
WHERE id = $1 AND claimed_count < quantity
`

// IncrementClaimedCount is the decrement-if-positive guard on the balance:
// it affects zero rows when the discount is already exhausted.
func (q *Queries) IncrementClaimedCount(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, incrementClaimedCount, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listPublicDiscounts = `
SELECT d.id, d.code, d.description, b.id, b.name, b.website
FROM discounts d
JOIN brands b ON b.id = d.brand_id
WHERE d.hide = false AND d.enable = true
  AND ($1::uuid[] IS NULL OR d.id = ANY($1))
  AND ($2::text IS NULL OR b.website = $2)
  AND ($3::text IS NULL OR b.name ILIKE '%' || $3 || '%')
  AND (($4::text IS NULL AND $5::uuid IS NULL) OR (d.code, d.id) > ($4, $5))
ORDER BY d.code ASC, d.id ASC
LIMIT $6
`

type ListPublicDiscountsParams struct {
	IDs         []uuid.UUID
	Website     *string
	Search      *string
	AfterCode   *string
	AfterID     *uuid.UUID
	Limit       int32
}

func (q *Queries) ListPublicDiscounts(ctx context.Context, db DBTX, arg ListPublicDiscountsParams) ([]PublicDiscountRow, error) {
	rows, err := db.Query(ctx, listPublicDiscounts,
		arg.IDs, arg.Website, arg.Search, arg.AfterCode, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PublicDiscountRow
	for rows.Next() {
		var r PublicDiscountRow
		if err := rows.Scan(&r.ID, &r.Code, &r.Description, &r.BrandID, &r.BrandName, &r.BrandWebsite); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listBrandDiscounts = `
SELECT id, brand_id, code, description, quantity, claimed_count, hide, enable, created_at, updated_at
FROM discounts
WHERE brand_id = $1
ORDER BY code ASC, id ASC
`

func (q *Queries) ListBrandDiscounts(ctx context.Context, db DBTX, brandID uuid.UUID) ([]Discount, error) {
	rows, err := db.Query(ctx, listBrandDiscounts, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Discount
	for rows.Next() {
		var d Discount
		if err := rows.Scan(&d.ID, &d.BrandID, &d.Code, &d.Description, &d.Quantity, &d.ClaimedCount,
			&d.Hide, &d.Enable, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
