package brand

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the tenant that owns and issues discounts. Identity is immutable
// once created; profile fields are mutable through UpdateProfile.
type Brand struct {
	id           uuid.UUID
	name         Name
	website      Website
	email        Email
	passwordHash string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBrand(name Name, website Website, email Email, passwordHash string) *Brand {
	return &Brand{
		id:           uuid.New(),
		name:         name,
		website:      website,
		email:        email,
		passwordHash: passwordHash,
		isActive:     true,
	}
}

func (b *Brand) UpdateProfile(name Name, website Website) {
	b.name = name
	b.website = website
}

func (b *Brand) ID() uuid.UUID        { return b.id }
func (b *Brand) Name() Name           { return b.name }
func (b *Brand) Website() Website     { return b.website }
func (b *Brand) Email() Email         { return b.email }
func (b *Brand) PasswordHash() string { return b.passwordHash }
func (b *Brand) IsActive() bool       { return b.isActive }
func (b *Brand) CreatedAt() time.Time { return b.createdAt }
func (b *Brand) UpdatedAt() time.Time { return b.updatedAt }
