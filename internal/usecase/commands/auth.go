package commands

import (
	"context"

	"discount-hub/internal/domain/user"
	reqdto "discount-hub/internal/handler/dto/request"
	"discount-hub/internal/pkg/errs"
	"discount-hub/internal/pkg/jwt"
	"discount-hub/internal/pkg/password"
	"discount-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAccountInactive      = errs.New("account inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	SubjectID   uuid.UUID
	Role        string
	AccessToken string
}

// UserAuthReadStore and BrandAuthReadStore expose the credential lookup
// the login flow needs without dragging in the full read side.
type UserAuthReadStore interface {
	FindByEmailWithHash(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type BrandAuthReadStore interface {
	FindByEmailWithHash(ctx context.Context, email string) (*queries.BrandView, string, error)
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      UserAuthReadStore
	brands     BrandAuthReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(users UserAuthReadStore, brands BrandAuthReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		brands:     brands,
		jwtService: jwtService,
	}
}

// Login authenticates against the user directory first and falls back to
// brand accounts: both share one token namespace, distinguished by role.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	subjectID, role, err := a.authenticate(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(subjectID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		SubjectID:   subjectID,
		Role:        role.String(),
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) authenticate(ctx context.Context, credentials user.Credentials) (uuid.UUID, user.Role, error) {
	email := credentials.Email().Value()

	if userView, hash, err := a.users.FindByEmailWithHash(ctx, email); err == nil {
		if !userView.IsActive {
			return uuid.Nil, "", ErrAccountInactive
		}
		if password.ComparePassword(hash, credentials.Password().Value()) != nil {
			// Same error as an unknown email to prevent account enumeration
			return uuid.Nil, "", ErrInvalidCredentials
		}
		role, err := user.NewRole(userView.Role)
		if err != nil {
			return uuid.Nil, "", errs.Mark(err, ErrAuthenticationFailed)
		}
		return userView.ID, role, nil
	}

	brandView, hash, err := a.brands.FindByEmailWithHash(ctx, email)
	if err != nil {
		return uuid.Nil, "", ErrInvalidCredentials
	}
	if password.ComparePassword(hash, credentials.Password().Value()) != nil {
		return uuid.Nil, "", ErrInvalidCredentials
	}
	return brandView.ID, user.RoleBrand, nil
}
