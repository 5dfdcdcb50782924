package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an end-user identity in the directory. Brands are a separate
// aggregate; staff and admin accounts live here with elevated roles.
type User struct {
	id           uuid.UUID
	firstName    Name
	lastName     Name
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(firstName, lastName Name, email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FirstName() Name      { return u.firstName }
func (u *User) LastName() Name       { return u.lastName }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// DisplayName is what the notifier and history views show for a user.
func (u *User) DisplayName() string {
	if u.lastName.Value() == "" {
		return u.firstName.Value()
	}
	return u.firstName.Value() + " " + u.lastName.Value()
}
