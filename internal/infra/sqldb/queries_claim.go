package sqldb

import (
	"context"

	"github.com/google/uuid"
)

const insertClaim = `
INSERT INTO claims (id, user_id, discount_id)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, discount_id) DO NOTHING
`

type InsertClaimParams struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DiscountID uuid.UUID
}

// InsertClaim relies on the (user_id, discount_id) unique constraint:
// zero rows affected means the user already holds this discount.
func (q *Queries) InsertClaim(ctx context.Context, db DBTX, arg InsertClaimParams) (int64, error) {
	tag, err := db.Exec(ctx, insertClaim, arg.ID, arg.UserID, arg.DiscountID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listClaimsByDiscount = `
SELECT c.id, c.discount_id, c.user_id, u.first_name, u.email, c.created_at
FROM claims c
JOIN users u ON u.id = c.user_id
WHERE c.discount_id = $1
ORDER BY c.created_at ASC, c.id ASC
`

func (q *Queries) ListClaimsByDiscount(ctx context.Context, db DBTX, discountID uuid.UUID) ([]ClaimHistoryRow, error) {
	rows, err := db.Query(ctx, listClaimsByDiscount, discountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ClaimHistoryRow
	for rows.Next() {
		var r ClaimHistoryRow
		if err := rows.Scan(&r.ClaimID, &r.DiscountID, &r.UserID, &r.UserFirstName, &r.UserEmail, &r.ClaimedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listClaimsByUser = `
SELECT c.id, d.id, d.code, d.description, b.id, b.name, b.website, c.created_at
FROM claims c
JOIN discounts d ON d.id = c.discount_id
JOIN brands b ON b.id = d.brand_id
WHERE c.user_id = $1
ORDER BY c.created_at DESC, c.id DESC
`

func (q *Queries) ListClaimsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]UserClaimRow, error) {
	rows, err := db.Query(ctx, listClaimsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []UserClaimRow
	for rows.Next() {
		var r UserClaimRow
		if err := rows.Scan(&r.ClaimID, &r.DiscountID, &r.Code, &r.Description, &r.BrandID, &r.BrandName, &r.BrandWebsite, &r.ClaimedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
