//go:build unit

package repository

import (
	"context"
	"testing"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDiscountWriteQueries struct {
	mock.Mock
}

func (m *MockDiscountWriteQueries) CreateDiscount(ctx context.Context, db sqldb.DBTX, arg sqldb.CreateDiscountParams) (sqldb.Discount, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqldb.Discount), args.Error(1)
}

func (m *MockDiscountWriteQueries) GetDiscountForClaim(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (sqldb.Discount, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqldb.Discount), args.Error(1)
}

func (m *MockDiscountWriteQueries) UpdateDiscount(ctx context.Context, db sqldb.DBTX, arg sqldb.UpdateDiscountParams) (sqldb.Discount, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqldb.Discount), args.Error(1)
}

func (m *MockDiscountWriteQueries) IncrementClaimedCount(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// sqldb.DBTX implementation for MockDiscountWriteQueries
func (m *MockDiscountWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDiscountWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDiscountWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestDiscountRepositoryCreate(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:      "success",
			mockError: nil,
		},
		{
			name:      "duplicate code for brand",
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "brand does not exist",
			mockError: &pgconn.PgError{Code: "23503"},
			wantKind:  infra.KindForeignKeyViolated,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, err := builder.NewDiscountBuilder().BuildDomain()
			require.NoError(t, err)
			row := sqldb.Discount{ID: entity.ID()}

			mockQueries := new(MockDiscountWriteQueries)
			mockQueries.On("CreateDiscount", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqldb.CreateDiscountParams) bool {
				return arg.ID == entity.ID() && arg.Code == entity.Code().String()
			})).Return(row, tt.mockError)

			repo := NewDiscountRepository(mockQueries)
			id, err := repo.Create(context.Background(), mockQueries, entity)

			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, entity.ID(), id)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, uuid.Nil, id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestDiscountRepositoryFindForUpdate(t *testing.T) {
	discountID := uuid.New()

	t.Run("success", func(t *testing.T) {
		row := builder.NewDiscountBuilder().WithID(discountID).WithClaimedCount(3).BuildInfra()

		mockQueries := new(MockDiscountWriteQueries)
		mockQueries.On("GetDiscountForClaim", mock.Anything, mock.Anything, discountID).Return(row, nil)

		repo := NewDiscountRepository(mockQueries)
		snap, err := repo.FindForUpdate(context.Background(), mockQueries, discountID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, snap.ID)
		assert.Equal(t, row.Code, snap.Code)
		assert.Equal(t, row.ClaimedCount, snap.ClaimedCount)
		mockQueries.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockDiscountWriteQueries)
		mockQueries.On("GetDiscountForClaim", mock.Anything, mock.Anything, discountID).Return(sqldb.Discount{}, pgx.ErrNoRows)

		repo := NewDiscountRepository(mockQueries)
		snap, err := repo.FindForUpdate(context.Background(), mockQueries, discountID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, snap)
	})
}

func TestDiscountRepositoryIncrementClaimed(t *testing.T) {
	discountID := uuid.New()

	tests := []struct {
		name         string
		mockAffected int64
		mockError    error
		wantError    bool
	}{
		{name: "bumped", mockAffected: 1},
		{name: "at quantity limit", mockAffected: 0},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockDiscountWriteQueries)
			mockQueries.On("IncrementClaimedCount", mock.Anything, mock.Anything, discountID).Return(tt.mockAffected, tt.mockError)

			repo := NewDiscountRepository(mockQueries)
			affected, err := repo.IncrementClaimed(context.Background(), mockQueries, discountID)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockAffected, affected)
			}
		})
	}
}
