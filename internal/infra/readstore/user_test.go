//go:build unit

package readstore

import (
	"context"
	"testing"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserViewQueries struct {
	mock.Mock
}

func (m *MockUserViewQueries) GetUserByID(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqldb.User), args.Error(1)
}

func (m *MockUserViewQueries) GetUserByEmail(ctx context.Context, db sqldb.DBTX, email string) (sqldb.User, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqldb.User), args.Error(1)
}

func TestUserFindByEmailWithHash(t *testing.T) {
	activeUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().WithEmail("blocked@example.com").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqldb.User
		mockError  error
		wantHash   string
		wantActive bool
		wantError  bool
	}{
		{
			name:       "active user",
			email:      activeUser.Email,
			mockReturn: activeUser,
			wantHash:   activeUser.PasswordHash,
			wantActive: true,
		},
		{
			name:       "inactive user is still returned for validation",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
			wantActive: false,
		},
		{
			name:      "user not found",
			email:     "notfound@example.com",
			mockError: pgx.ErrNoRows,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserViewQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			view, hash, err := store.FindByEmailWithHash(context.Background(), tt.email)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, view.ID)
				assert.Equal(t, tt.wantHash, hash)
				assert.Equal(t, tt.wantActive, view.IsActive)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserFindAuthorizedByID(t *testing.T) {
	row := builder.NewUserBuilder().AsStaff().BuildInfra()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserViewQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		store := NewUserReadStore(mockQueries, nil)
		view, err := store.FindAuthorizedByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, "staff", view.Role)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockUserViewQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, id).Return(sqldb.User{}, pgx.ErrNoRows)

		store := NewUserReadStore(mockQueries, nil)
		view, err := store.FindAuthorizedByID(context.Background(), id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}
