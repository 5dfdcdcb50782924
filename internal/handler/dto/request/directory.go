package request

import (
	"discount-hub/internal/domain/brand"
	"discount-hub/internal/domain/user"
)

type RegisterUserRequest struct {
	FirstName string `json:"first_name" binding:"required,max=60"`
	LastName  string `json:"last_name" binding:"required,max=60"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

func (r *RegisterUserRequest) ToDomain(passwordHash string) (*user.User, error) {
	firstName, err := user.NewName(r.FirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := user.NewName(r.LastName)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(firstName, lastName, email, passwordHash, user.RoleUser), nil
}

type RegisterBrandRequest struct {
	Name     string `json:"name" binding:"required,max=60"`
	Website  string `json:"website" binding:"required,url"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterBrandRequest) ToDomain(passwordHash string) (*brand.Brand, error) {
	name, err := brand.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	website, err := brand.NewWebsite(r.Website)
	if err != nil {
		return nil, err
	}
	email, err := brand.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	return brand.NewBrand(name, website, email, passwordHash), nil
}

type UpdateBrandRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=60"`
	Website *string `json:"website,omitempty" binding:"omitempty,url"`
}
