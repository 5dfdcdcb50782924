package queries

import (
	"context"

	"discount-hub/internal/infra/dynconfig"
	"discount-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// PublicFilter narrows the public listing. Zero value means no filtering.
type PublicFilter struct {
	IDs     []uuid.UUID
	Website *string
	Search  *string
}

type DiscountQueries interface {
	ListPublic(ctx context.Context, filter PublicFilter, after *Cursor, limit int) ([]*PublicDiscountView, *Cursor, error)
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*BrandDiscountView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BrandDiscountView, error)
}

type DiscountViewRepo interface {
	FindPublic(ctx context.Context, filter PublicFilter, afterCode *string, afterID *uuid.UUID, limit int32) ([]*PublicDiscountView, error)
	FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*BrandDiscountView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BrandDiscountView, error)
}

// PageSettings supplies the operator-tunable default page size.
type PageSettings interface {
	GetInt(ctx context.Context, key string, fallback int) (int, error)
}

type discountQueriesImpl struct {
	repo     DiscountViewRepo
	settings PageSettings
}

func NewDiscountQueries(repo DiscountViewRepo, settings PageSettings) DiscountQueries {
	return &discountQueriesImpl{repo: repo, settings: settings}
}

func (q *discountQueriesImpl) ListPublic(ctx context.Context, filter PublicFilter, after *Cursor, limit int) ([]*PublicDiscountView, *Cursor, error) {
	if limit <= 0 {
		limit = q.defaultPageSize(ctx)
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	var afterCode *string
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		code, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterCode = &code
		afterID = &id
	}

	// Fetch one extra row to detect whether another page exists.
	items, err := q.repo.FindPublic(ctx, filter, afterCode, afterID, int32(limit)+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.Code, last.ID)}
	}

	return items, next, nil
}

// defaultPageSize reads public_page_size; GetInt already falls back to
// the compiled-in default when the store is unreachable.
func (q *discountQueriesImpl) defaultPageSize(ctx context.Context) int {
	size, _ := q.settings.GetInt(ctx, dynconfig.KeyPublicPageSize, DefaultListLimit)
	if size <= 0 {
		return DefaultListLimit
	}
	return size
}

func (q *discountQueriesImpl) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*BrandDiscountView, error) {
	return q.repo.FindByBrand(ctx, brandID)
}

func (q *discountQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BrandDiscountView, error) {
	return q.repo.FindByID(ctx, id)
}
