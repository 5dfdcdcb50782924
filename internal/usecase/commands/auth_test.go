//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"discount-hub/internal/infra"
	"discount-hub/internal/pkg/jwt"
	"discount-hub/internal/pkg/password"
	"discount-hub/internal/usecase/commands"
	"discount-hub/tests/common/builder"
	commandsmock "discount-hub/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthFixture(t *testing.T) (*commandsmock.MockUserAuthReadStore, *commandsmock.MockBrandAuthReadStore, commands.AuthCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := commandsmock.NewMockUserAuthReadStore(ctrl)
	brands := commandsmock.NewMockBrandAuthReadStore(ctrl)
	svc := jwt.NewService("test-secret", time.Hour)
	return users, brands, commands.NewAuthCommands(users, brands, svc)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	plain := "password123"
	hash, err := password.HashPassword(plain)
	require.NoError(t, err)

	t.Run("user login issues a token carrying the role", func(t *testing.T) {
		users, _, auth := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildAuthorizedView()
		req := builder.NewUserBuilder().WithPassword(plain).BuildLoginRequestDTO()

		users.EXPECT().FindByEmailWithHash(gomock.Any(), req.Email).Return(view, hash, nil)

		result, err := auth.Login(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, view.ID, result.SubjectID)
		assert.Equal(t, "user", result.Role)
		assert.NotEmpty(t, result.AccessToken)

		svc := jwt.NewService("test-secret", time.Hour)
		claims, err := svc.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("falls back to brand accounts", func(t *testing.T) {
		users, brands, auth := newAuthFixture(t)
		brandView := builder.NewBrandBuilder().BuildView()
		req := builder.NewUserBuilder().WithEmail(brandView.Email).WithPassword(plain).BuildLoginRequestDTO()

		users.EXPECT().FindByEmailWithHash(gomock.Any(), brandView.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
		brands.EXPECT().FindByEmailWithHash(gomock.Any(), brandView.Email).Return(brandView, hash, nil)

		result, err := auth.Login(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, brandView.ID, result.SubjectID)
		assert.Equal(t, "brand", result.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		users, _, auth := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildAuthorizedView()
		req := builder.NewUserBuilder().WithPassword("wrong-password").BuildLoginRequestDTO()

		users.EXPECT().FindByEmailWithHash(gomock.Any(), req.Email).Return(view, hash, nil)

		result, err := auth.Login(ctx, req)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.Nil(t, result)
	})

	t.Run("unknown email reports the same error as a wrong password", func(t *testing.T) {
		users, brands, auth := newAuthFixture(t)
		req := builder.NewUserBuilder().WithEmail("ghost@example.com").WithPassword(plain).BuildLoginRequestDTO()

		users.EXPECT().FindByEmailWithHash(gomock.Any(), req.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
		brands.EXPECT().FindByEmailWithHash(gomock.Any(), req.Email).
			Return(nil, "", infra.WrapRepoErr("brand not found", nil, infra.KindNotFound))

		result, err := auth.Login(ctx, req)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.Nil(t, result)
	})

	t.Run("blocked account", func(t *testing.T) {
		users, _, auth := newAuthFixture(t)
		view := builder.NewUserBuilder().AsInactive().BuildAuthorizedView()
		req := builder.NewUserBuilder().WithPassword(plain).BuildLoginRequestDTO()

		users.EXPECT().FindByEmailWithHash(gomock.Any(), req.Email).Return(view, hash, nil)

		result, err := auth.Login(ctx, req)
		require.ErrorIs(t, err, commands.ErrAccountInactive)
		assert.Nil(t, result)
	})

	t.Run("malformed email never reaches the stores", func(t *testing.T) {
		_, _, auth := newAuthFixture(t)
		req := builder.NewUserBuilder().BuildLoginRequestDTO()
		req.Email = "not-an-email"

		result, err := auth.Login(ctx, req)
		require.ErrorIs(t, err, commands.ErrAuthenticationFailed)
		assert.Nil(t, result)
	})
}
