package discount

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuantityBelowClaimed = errors.New("quantity cannot be lower than already claimed count")
)

// Discount is a claimable code owned by a brand. claimedCount is maintained
// exclusively through the allocation engine's commit path and never exceeds
// quantity.
type Discount struct {
	id           uuid.UUID
	brandID      uuid.UUID
	code         Code
	description  Description
	quantity     Quantity
	claimedCount int
	hide         bool
	enable       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewDiscount(brandID uuid.UUID, code Code, description Description, quantity Quantity, hide, enable bool) *Discount {
	return &Discount{
		id:          uuid.New(),
		brandID:     brandID,
		code:        code,
		description: description,
		quantity:    quantity,
		hide:        hide,
		enable:      enable,
	}
}

// Reconstruct rebuilds a Discount from persisted state.
func Reconstruct(id, brandID uuid.UUID, code Code, description Description, quantity Quantity, claimedCount int, hide, enable bool, createdAt, updatedAt time.Time) *Discount {
	return &Discount{
		id:           id,
		brandID:      brandID,
		code:         code,
		description:  description,
		quantity:     quantity,
		claimedCount: claimedCount,
		hide:         hide,
		enable:       enable,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ChangeQuantity rejects updates that would leave more claims outstanding
// than the new quantity allows.
func (d *Discount) ChangeQuantity(quantity Quantity) error {
	if quantity.Value() < d.claimedCount {
		return ErrQuantityBelowClaimed
	}
	d.quantity = quantity
	return nil
}

func (d *Discount) ChangeDescription(description Description) {
	d.description = description
}

func (d *Discount) SetHidden(hide bool)    { d.hide = hide }
func (d *Discount) SetEnabled(enable bool) { d.enable = enable }

// Balance is the number of units still claimable.
func (d *Discount) Balance() int {
	return d.quantity.Value() - d.claimedCount
}

func (d *Discount) IsExhausted() bool {
	return d.claimedCount >= d.quantity.Value()
}

func (d *Discount) ID() uuid.UUID           { return d.id }
func (d *Discount) BrandID() uuid.UUID      { return d.brandID }
func (d *Discount) Code() Code              { return d.code }
func (d *Discount) Description() Description { return d.description }
func (d *Discount) Quantity() Quantity      { return d.quantity }
func (d *Discount) ClaimedCount() int       { return d.claimedCount }
func (d *Discount) Hidden() bool            { return d.hide }
func (d *Discount) Enabled() bool           { return d.enable }
func (d *Discount) CreatedAt() time.Time    { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time    { return d.updatedAt }
