//go:build unit || e2e

package builder

import (
	"time"

	"discount-hub/internal/domain/user"
	reqdto "discount-hub/internal/handler/dto/request"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Password     string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		FirstName:    "Taro",
		LastName:     "Tester",
		Email:        "taro@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "user",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	firstName, err := user.NewName(u.FirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := user.NewName(u.LastName)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(firstName, lastName, email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildInfra() sqldb.User {
	now := time.Now()
	return sqldb.User{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) AsStaff() *UserBuilder {
	u.Role = "staff"
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
