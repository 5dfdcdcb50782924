//go:build unit || e2e

package builder

import (
	"time"

	"discount-hub/internal/domain/brand"
	reqdto "discount-hub/internal/handler/dto/request"
	"discount-hub/internal/usecase/queries"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type BrandBuilder struct {
	ID           uuid.UUID
	Name         string
	Website      string
	Email        string
	Password     string
	PasswordHash string
}

func NewBrandBuilder() *BrandBuilder {
	return &BrandBuilder{
		ID:           uuid.New(),
		Name:         "Acme Outfitters",
		Website:      "https://acme.example.com",
		Email:        "contact@acme.example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
	}
}

func (b *BrandBuilder) With(mutate func(*BrandBuilder)) *BrandBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BrandBuilder) BuildDomain() (*brand.Brand, error) {
	name, err := brand.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	website, err := brand.NewWebsite(b.Website)
	if err != nil {
		return nil, err
	}
	email, err := brand.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return brand.NewBrand(name, website, email, b.PasswordHash), nil
}

func (b *BrandBuilder) BuildSnapshot() *shared.BrandSnapshot {
	now := time.Now()
	return &shared.BrandSnapshot{
		ID:        b.ID,
		Name:      b.Name,
		Website:   b.Website,
		Email:     b.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BrandBuilder) BuildView() *queries.BrandView {
	now := time.Now()
	return &queries.BrandView{
		ID:        b.ID,
		Name:      b.Name,
		Website:   b.Website,
		Email:     b.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BrandBuilder) BuildRegisterRequestDTO() reqdto.RegisterBrandRequest {
	return reqdto.RegisterBrandRequest{
		Name:     b.Name,
		Website:  b.Website,
		Email:    b.Email,
		Password: b.Password,
	}
}

// Fluent builder methods
func (b *BrandBuilder) WithID(id uuid.UUID) *BrandBuilder {
	b.ID = id
	return b
}

func (b *BrandBuilder) WithName(name string) *BrandBuilder {
	b.Name = name
	return b
}

func (b *BrandBuilder) WithWebsite(website string) *BrandBuilder {
	b.Website = website
	return b
}

func (b *BrandBuilder) WithEmail(email string) *BrandBuilder {
	b.Email = email
	return b
}
