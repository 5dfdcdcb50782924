//go:build unit || e2e

package builder

import (
	"time"

	domdiscount "discount-hub/internal/domain/discount"
	reqdto "discount-hub/internal/handler/dto/request"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/usecase/queries"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type DiscountBuilder struct {
	ID           uuid.UUID
	BrandID      uuid.UUID
	BrandName    string
	BrandWebsite string
	Code         string
	Description  string
	Quantity     int
	ClaimedCount int
	Hide         bool
	Enable       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewDiscountBuilder() *DiscountBuilder {
	now := time.Now()
	return &DiscountBuilder{
		ID:           uuid.New(),
		BrandID:      uuid.New(),
		BrandName:    "Acme Outfitters",
		BrandWebsite: "https://acme.example.com",
		Code:         "SUMMER-2026",
		Description:  "20% off all summer gear",
		Quantity:     100,
		ClaimedCount: 0,
		Hide:         false,
		Enable:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (d *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(d)
	return d
}

// Build methods
func (d *DiscountBuilder) BuildDomain() (*domdiscount.Discount, error) {
	code, err := domdiscount.NewCode(d.Code)
	if err != nil {
		return nil, err
	}
	description, err := domdiscount.NewDescription(d.Description)
	if err != nil {
		return nil, err
	}
	quantity, err := domdiscount.NewQuantity(d.Quantity)
	if err != nil {
		return nil, err
	}
	return domdiscount.NewDiscount(d.BrandID, code, description, quantity, d.Hide, d.Enable), nil
}

func (d *DiscountBuilder) BuildReconstructed() (*domdiscount.Discount, error) {
	code, err := domdiscount.NewCode(d.Code)
	if err != nil {
		return nil, err
	}
	description, err := domdiscount.NewDescription(d.Description)
	if err != nil {
		return nil, err
	}
	quantity, err := domdiscount.NewQuantity(d.Quantity)
	if err != nil {
		return nil, err
	}
	return domdiscount.Reconstruct(d.ID, d.BrandID, code, description, quantity, d.ClaimedCount, d.Hide, d.Enable, d.CreatedAt, d.UpdatedAt), nil
}

func (d *DiscountBuilder) BuildInfra() sqldb.Discount {
	return sqldb.Discount{
		ID:           d.ID,
		BrandID:      d.BrandID,
		Code:         d.Code,
		Description:  d.Description,
		Quantity:     int32(d.Quantity),
		ClaimedCount: int32(d.ClaimedCount),
		Hide:         d.Hide,
		Enable:       d.Enable,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (d *DiscountBuilder) BuildSnapshot() *shared.DiscountSnapshot {
	return &shared.DiscountSnapshot{
		ID:           d.ID,
		BrandID:      d.BrandID,
		Code:         d.Code,
		Description:  d.Description,
		Quantity:     int32(d.Quantity),
		ClaimedCount: int32(d.ClaimedCount),
		Hide:         d.Hide,
		Enable:       d.Enable,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (d *DiscountBuilder) BuildPublicView() *queries.PublicDiscountView {
	return &queries.PublicDiscountView{
		ID:           d.ID,
		Code:         d.Code,
		Description:  d.Description,
		BrandID:      d.BrandID,
		BrandName:    d.BrandName,
		BrandWebsite: d.BrandWebsite,
	}
}

func (d *DiscountBuilder) BuildBrandView() *queries.BrandDiscountView {
	balance := int32(d.Quantity - d.ClaimedCount)
	if balance < 0 {
		balance = 0
	}
	return &queries.BrandDiscountView{
		ID:           d.ID,
		BrandID:      d.BrandID,
		Code:         d.Code,
		Description:  d.Description,
		Quantity:     int32(d.Quantity),
		ClaimedCount: int32(d.ClaimedCount),
		Balance:      balance,
		Hide:         d.Hide,
		Enable:       d.Enable,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (d *DiscountBuilder) BuildCreateRequestDTO() reqdto.CreateDiscountRequest {
	return reqdto.CreateDiscountRequest{
		Code:        d.Code,
		Description: d.Description,
		Quantity:    d.Quantity,
		Hide:        d.Hide,
		Enable:      d.Enable,
	}
}

func (d *DiscountBuilder) BuildUpdateRequestDTO() reqdto.UpdateDiscountRequest {
	description := d.Description
	quantity := d.Quantity
	hide := d.Hide
	enable := d.Enable
	return reqdto.UpdateDiscountRequest{
		Description: &description,
		Quantity:    &quantity,
		Hide:        &hide,
		Enable:      &enable,
	}
}

// Fluent builder methods
func (d *DiscountBuilder) WithID(id uuid.UUID) *DiscountBuilder {
	d.ID = id
	return d
}

func (d *DiscountBuilder) WithBrandID(brandID uuid.UUID) *DiscountBuilder {
	d.BrandID = brandID
	return d
}

func (d *DiscountBuilder) WithCode(code string) *DiscountBuilder {
	d.Code = code
	return d
}

func (d *DiscountBuilder) WithDescription(description string) *DiscountBuilder {
	d.Description = description
	return d
}

func (d *DiscountBuilder) WithQuantity(quantity int) *DiscountBuilder {
	d.Quantity = quantity
	return d
}

func (d *DiscountBuilder) WithClaimedCount(claimed int) *DiscountBuilder {
	d.ClaimedCount = claimed
	return d
}

func (d *DiscountBuilder) AsHidden() *DiscountBuilder {
	d.Hide = true
	return d
}

func (d *DiscountBuilder) AsDisabled() *DiscountBuilder {
	d.Enable = false
	return d
}

func (d *DiscountBuilder) AsExhausted() *DiscountBuilder {
	d.ClaimedCount = d.Quantity
	return d
}
