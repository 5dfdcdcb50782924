package request

import (
	"discount-hub/internal/domain/discount"

	"github.com/google/uuid"
)

type CreateDiscountRequest struct {
	Code        string `json:"code" binding:"required,min=3,max=60"`
	Description string `json:"description" binding:"max=60"`
	Quantity    int    `json:"quantity" binding:"min=0"`
	Hide        bool   `json:"hide"`
	Enable      bool   `json:"enable"`
}

func (r *CreateDiscountRequest) ToDomain(brandID uuid.UUID) (*discount.Discount, error) {
	code, err := discount.NewCode(r.Code)
	if err != nil {
		return nil, err
	}
	description, err := discount.NewDescription(r.Description)
	if err != nil {
		return nil, err
	}
	quantity, err := discount.NewQuantity(r.Quantity)
	if err != nil {
		return nil, err
	}
	return discount.NewDiscount(brandID, code, description, quantity, r.Hide, r.Enable), nil
}

// UpdateDiscountRequest carries a partial update; nil fields keep their
// stored value. Codes are immutable once issued.
type UpdateDiscountRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,max=60"`
	Quantity    *int    `json:"quantity,omitempty" binding:"omitempty,min=0"`
	Hide        *bool   `json:"hide,omitempty"`
	Enable      *bool   `json:"enable,omitempty"`
}
