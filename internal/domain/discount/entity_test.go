//go:build unit

package discount_test

import (
	"strings"
	"testing"

	"discount-hub/internal/domain/discount"
	"discount-hub/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(discount.Discount{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.DiscountBuilder)
	errIs  error
}

func TestDiscount(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewDiscountBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		code, _ := discount.NewCode("SUMMER-2026")
		description, _ := discount.NewDescription("20% off all summer gear")
		quantity, _ := discount.NewQuantity(100)
		expected := discount.NewDiscount(actual.BrandID(), code, description, quantity, false, true)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Discount mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "SUMMER-2026", actual.Code().String())
		assert.Equal(t, 100, actual.Quantity().Value())
		assert.Equal(t, 0, actual.ClaimedCount())
		assert.True(t, actual.Enabled())
		assert.False(t, actual.Hidden())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length code",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("ABC") },
			},
			{
				name:   "maximum length code",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode(strings.Repeat("A", 60)) },
			},
			{
				name:   "code with digits and hyphens",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("WINTER-10-OFF") },
			},
			{
				name:   "code below minimum length",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("AB") },
				errIs:  discount.ErrInvalidCode,
			},
			{
				name:   "code exceeds maximum length",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode(strings.Repeat("A", 61)) },
				errIs:  discount.ErrInvalidCode,
			},
			{
				name:   "code with invalid characters",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("SUMMER 2026") },
				errIs:  discount.ErrInvalidCode,
			},
			{
				name:   "empty code",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("") },
				errIs:  discount.ErrInvalidCode,
			},
		})
	})

	t.Run("code normalization", func(t *testing.T) {
		code, err := discount.NewCode("  summer-2026  ")
		require.NoError(t, err)
		assert.Equal(t, "SUMMER-2026", code.String())
	})

	t.Run("description validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty description",
				mutate: func(b *builder.DiscountBuilder) { b.WithDescription("") },
			},
			{
				name:   "maximum length description",
				mutate: func(b *builder.DiscountBuilder) { b.WithDescription(strings.Repeat("a", discount.MaxDescriptionLength)) },
			},
			{
				name:   "description exceeds maximum length",
				mutate: func(b *builder.DiscountBuilder) { b.WithDescription(strings.Repeat("a", discount.MaxDescriptionLength+1)) },
				errIs:  discount.ErrDescriptionTooLong,
			},
		})
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.DiscountBuilder) { b.WithQuantity(0) },
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.DiscountBuilder) { b.WithQuantity(-1) },
				errIs:  discount.ErrNegativeQuantity,
			},
		})
	})
}

func TestDiscountChangeQuantity(t *testing.T) {
	t.Run("raise quantity", func(t *testing.T) {
		d, err := builder.NewDiscountBuilder().WithQuantity(10).WithClaimedCount(5).BuildReconstructed()
		require.NoError(t, err)

		q, err := discount.NewQuantity(20)
		require.NoError(t, err)
		require.NoError(t, d.ChangeQuantity(q))
		assert.Equal(t, 20, d.Quantity().Value())
	})

	t.Run("lower quantity to claimed count", func(t *testing.T) {
		d, err := builder.NewDiscountBuilder().WithQuantity(10).WithClaimedCount(5).BuildReconstructed()
		require.NoError(t, err)

		q, err := discount.NewQuantity(5)
		require.NoError(t, err)
		require.NoError(t, d.ChangeQuantity(q))
		assert.True(t, d.IsExhausted())
	})

	t.Run("lower quantity below claimed count", func(t *testing.T) {
		d, err := builder.NewDiscountBuilder().WithQuantity(10).WithClaimedCount(5).BuildReconstructed()
		require.NoError(t, err)

		q, err := discount.NewQuantity(4)
		require.NoError(t, err)
		err = d.ChangeQuantity(q)
		require.ErrorIs(t, err, discount.ErrQuantityBelowClaimed)
		assert.Equal(t, 10, d.Quantity().Value())
	})
}

func TestDiscountBalance(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		claimedCount int
		wantBalance  int
		wantEmpty    bool
	}{
		{name: "untouched", quantity: 100, claimedCount: 0, wantBalance: 100},
		{name: "partially claimed", quantity: 100, claimedCount: 40, wantBalance: 60},
		{name: "one left", quantity: 100, claimedCount: 99, wantBalance: 1},
		{name: "exhausted", quantity: 100, claimedCount: 100, wantBalance: 0, wantEmpty: true},
		{name: "zero quantity", quantity: 0, claimedCount: 0, wantBalance: 0, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := builder.NewDiscountBuilder().
				WithQuantity(tt.quantity).
				WithClaimedCount(tt.claimedCount).
				BuildReconstructed()
			require.NoError(t, err)

			assert.Equal(t, tt.wantBalance, d.Balance())
			assert.Equal(t, tt.wantEmpty, d.IsExhausted())
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewDiscountBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
