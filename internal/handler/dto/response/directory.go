package response

import (
	"time"

	"discount-hub/internal/usecase/queries"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisteredResponse struct {
	ID uuid.UUID `json:"id"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
		Role:      v.Role,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}

type BrandResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBrandView(v *queries.BrandView) *BrandResponse {
	return &BrandResponse{
		ID:        v.ID,
		Name:      v.Name,
		Website:   v.Website,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromBrandSnapshot(s *shared.BrandSnapshot) *BrandResponse {
	return &BrandResponse{
		ID:        s.ID,
		Name:      s.Name,
		Website:   s.Website,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
