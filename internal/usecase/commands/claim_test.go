//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"discount-hub/internal/domain/discount"
	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/pkg/clock"
	"discount-hub/internal/usecase/commands"
	"discount-hub/internal/usecase/queries"
	"discount-hub/internal/usecase/shared"
	"discount-hub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore emulates the transactional claim path in memory. Within holds
// the store mutex for the whole callback, which mirrors the row lock
// serializing concurrent claims, and restores the previous state when the
// callback fails, which mirrors rollback.
type fakeStore struct {
	mu        sync.Mutex
	discounts map[uuid.UUID]shared.DiscountSnapshot
	claims    map[claimKey]struct{}
}

type claimKey struct {
	userID     uuid.UUID
	discountID uuid.UUID
}

func newFakeStore(discounts ...*shared.DiscountSnapshot) *fakeStore {
	s := &fakeStore{
		discounts: make(map[uuid.UUID]shared.DiscountSnapshot),
		claims:    make(map[claimKey]struct{}),
	}
	for _, d := range discounts {
		s.discounts[d.ID] = *d
	}
	return s
}

func (s *fakeStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	savedDiscounts := make(map[uuid.UUID]shared.DiscountSnapshot, len(s.discounts))
	for k, v := range s.discounts {
		savedDiscounts[k] = v
	}
	savedClaims := make(map[claimKey]struct{}, len(s.claims))
	for k := range s.claims {
		savedClaims[k] = struct{}{}
	}

	if err := fn(ctx, &fakeTx{store: s}); err != nil {
		s.discounts = savedDiscounts
		s.claims = savedClaims
		return err
	}
	return nil
}

func (s *fakeStore) WithDB(ctx context.Context, fn func(ctx context.Context, db sqldb.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *fakeStore) claimCount(discountID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.claims {
		if k.discountID == discountID {
			n++
		}
	}
	return n
}

func (s *fakeStore) claimedCount(discountID uuid.UUID) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discounts[discountID].ClaimedCount
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Discounts() shared.DiscountRepository { return &fakeDiscountRepo{store: t.store} }
func (t *fakeTx) Claims() shared.ClaimRepository       { return &fakeClaimRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository         { panic("not used in claim tests") }
func (t *fakeTx) Brands() shared.BrandRepository       { panic("not used in claim tests") }
func (t *fakeTx) DB() sqldb.DBTX                       { return nil }

type fakeDiscountRepo struct {
	store *fakeStore
}

func (r *fakeDiscountRepo) Create(ctx context.Context, db sqldb.DBTX, d *discount.Discount) (uuid.UUID, error) {
	panic("not used in claim tests")
}

func (r *fakeDiscountRepo) Update(ctx context.Context, db sqldb.DBTX, d *discount.Discount) (*shared.DiscountSnapshot, error) {
	panic("not used in claim tests")
}

func (r *fakeDiscountRepo) FindForUpdate(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (*shared.DiscountSnapshot, error) {
	snap, ok := r.store.discounts[id]
	if !ok {
		return nil, infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	copied := snap
	return &copied, nil
}

func (r *fakeDiscountRepo) IncrementClaimed(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (int64, error) {
	snap := r.store.discounts[id]
	if snap.ClaimedCount >= snap.Quantity {
		return 0, nil
	}
	snap.ClaimedCount++
	r.store.discounts[id] = snap
	return 1, nil
}

type fakeClaimRepo struct {
	store *fakeStore
}

func (r *fakeClaimRepo) Insert(ctx context.Context, db sqldb.DBTX, userID, discountID uuid.UUID) (int64, error) {
	key := claimKey{userID: userID, discountID: discountID}
	if _, exists := r.store.claims[key]; exists {
		return 0, nil
	}
	r.store.claims[key] = struct{}{}
	return 1, nil
}

type capturingNotifier struct {
	events chan commands.ClaimEvent
}

func newCapturingNotifier() *capturingNotifier {
	return &capturingNotifier{events: make(chan commands.ClaimEvent, 64)}
}

func (n *capturingNotifier) NotifyClaimed(ctx context.Context, event commands.ClaimEvent) error {
	n.events <- event
	return nil
}

type stubUserQueries struct {
	view *queries.UserView
}

func (s *stubUserQueries) GetAuthorized(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	panic("not used in claim tests")
}

func (s *stubUserQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	return s.view, nil
}

type stubBrandQueries struct {
	view *queries.BrandView
}

func (s *stubBrandQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.BrandView, error) {
	return s.view, nil
}

// stubSettings answers every GetBool with a fixed value, or errors when
// broken is set.
type stubSettings struct {
	notifyEnabled bool
	broken        bool
}

func (s *stubSettings) GetBool(ctx context.Context, key string) (bool, error) {
	if s.broken {
		return false, errors.New("config store unavailable")
	}
	return s.notifyEnabled, nil
}

func newClaimUseCase(store *fakeStore, notifier commands.ClaimNotifier, now time.Time) commands.ClaimCommands {
	return newClaimUseCaseWithSettings(store, notifier, &stubSettings{notifyEnabled: true}, now)
}

func newClaimUseCaseWithSettings(store *fakeStore, notifier commands.ClaimNotifier, settings commands.RuntimeConfig, now time.Time) commands.ClaimCommands {
	return commands.NewClaimUseCase(
		store,
		notifier,
		&stubUserQueries{view: builder.NewUserBuilder().BuildView()},
		&stubBrandQueries{view: builder.NewBrandBuilder().BuildView()},
		settings,
		clock.NewMockClock(now),
	)
}

func TestClaim(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success allocates one unit and reports the code", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().WithQuantity(10).BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		userID := uuid.New()
		result, err := uc.Claim(context.Background(), userID, snap.ID)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, snap.ID, result.DiscountID)
		assert.Equal(t, snap.Code, result.Code)
		assert.Equal(t, snap.Description, result.Description)
		assert.Equal(t, int32(1), store.claimedCount(snap.ID))
		assert.Equal(t, 1, store.claimCount(snap.ID))
	})

	t.Run("notifies after commit with claim details", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().WithQuantity(10).BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		userID := uuid.New()
		_, err := uc.Claim(context.Background(), userID, snap.ID)
		require.NoError(t, err)

		select {
		case event := <-notifier.events:
			assert.Equal(t, snap.ID, event.DiscountID)
			assert.Equal(t, snap.Code, event.DiscountCode)
			assert.Equal(t, userID, event.UserID)
			assert.Equal(t, now, event.ClaimedAt)
			assert.NotEmpty(t, event.UserName)
			assert.NotEmpty(t, event.BrandName)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a claim notification")
		}
	})

	t.Run("notification muted by runtime config", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().WithQuantity(10).BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCaseWithSettings(store, notifier, &stubSettings{notifyEnabled: false}, now)

		_, err := uc.Claim(context.Background(), uuid.New(), snap.ID)
		require.NoError(t, err)

		select {
		case <-notifier.events:
			t.Fatal("notification should be suppressed when muted")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("config read failure does not mute notifications", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().WithQuantity(10).BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCaseWithSettings(store, notifier, &stubSettings{broken: true}, now)

		_, err := uc.Claim(context.Background(), uuid.New(), snap.ID)
		require.NoError(t, err)

		select {
		case <-notifier.events:
		case <-time.After(2 * time.Second):
			t.Fatal("expected a claim notification despite the config failure")
		}
	})

	t.Run("unknown discount", func(t *testing.T) {
		store := newFakeStore()
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		result, err := uc.Claim(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, commands.ErrDiscountNotFound)
		assert.Nil(t, result)
	})

	t.Run("disabled discount", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().AsDisabled().BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		result, err := uc.Claim(context.Background(), uuid.New(), snap.ID)
		require.ErrorIs(t, err, commands.ErrDiscountDisabled)
		assert.Nil(t, result)
		assert.Equal(t, 0, store.claimCount(snap.ID))
	})

	t.Run("disabled wins over exhausted", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().AsDisabled().AsExhausted().BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		_, err := uc.Claim(context.Background(), uuid.New(), snap.ID)
		require.ErrorIs(t, err, commands.ErrDiscountDisabled)
	})

	t.Run("repeat claim by the same user", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().WithQuantity(10).BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		userID := uuid.New()
		_, err := uc.Claim(context.Background(), userID, snap.ID)
		require.NoError(t, err)

		result, err := uc.Claim(context.Background(), userID, snap.ID)
		require.ErrorIs(t, err, commands.ErrAlreadyClaimed)
		assert.Nil(t, result)

		// the repeat attempt must not move the counter
		assert.Equal(t, int32(1), store.claimedCount(snap.ID))
		assert.Equal(t, 1, store.claimCount(snap.ID))
	})

	t.Run("exhausted discount", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().WithQuantity(2).AsExhausted().BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		result, err := uc.Claim(context.Background(), uuid.New(), snap.ID)
		require.ErrorIs(t, err, commands.ErrDiscountExhausted)
		assert.Nil(t, result)

		// the rejected claim row must roll back with the transaction
		assert.Equal(t, 0, store.claimCount(snap.ID))
		assert.Equal(t, int32(2), store.claimedCount(snap.ID))
	})

	t.Run("exhausted discount stays claimable by nobody", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().WithQuantity(1).BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		_, err := uc.Claim(context.Background(), uuid.New(), snap.ID)
		require.NoError(t, err)

		_, err = uc.Claim(context.Background(), uuid.New(), snap.ID)
		require.ErrorIs(t, err, commands.ErrDiscountExhausted)
	})
}

func TestClaimConcurrency(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never allocates beyond quantity", func(t *testing.T) {
		const quantity = 10
		const claimers = 50

		snap := builder.NewDiscountBuilder().WithQuantity(quantity).BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		var wg sync.WaitGroup
		results := make(chan error, claimers)
		for i := 0; i < claimers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.Claim(context.Background(), uuid.New(), snap.ID)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		exhausted := 0
		for err := range results {
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, commands.ErrDiscountExhausted):
				exhausted++
			}
		}

		assert.Equal(t, quantity, succeeded)
		assert.Equal(t, claimers-quantity, exhausted)
		assert.Equal(t, int32(quantity), store.claimedCount(snap.ID))
		assert.Equal(t, quantity, store.claimCount(snap.ID))
	})

	t.Run("same user racing itself gets exactly one claim", func(t *testing.T) {
		snap := builder.NewDiscountBuilder().WithQuantity(100).BuildSnapshot()
		store := newFakeStore(snap)
		notifier := newCapturingNotifier()
		uc := newClaimUseCase(store, notifier, now)

		userID := uuid.New()
		const attempts = 20

		var wg sync.WaitGroup
		results := make(chan error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.Claim(context.Background(), userID, snap.ID)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, commands.ErrAlreadyClaimed)
			}
		}

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, int32(1), store.claimedCount(snap.ID))
	})
}
