package commands

import (
	"context"
	"log/slog"
	"time"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/dynconfig"
	"discount-hub/internal/pkg/clock"
	"discount-hub/internal/pkg/errs"
	"discount-hub/internal/usecase/queries"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDiscountNotFound  = errs.New("discount not found")
	ErrDiscountDisabled  = errs.New("discount disabled")
	ErrAlreadyClaimed    = errs.New("discount already claimed by user")
	ErrDiscountExhausted = errs.New("discount exhausted")
)

const notifyTimeout = 5 * time.Second

// ClaimEvent is what leaves the system after a successful claim.
type ClaimEvent struct {
	DiscountID   uuid.UUID `json:"discount_id"`
	DiscountCode string    `json:"discount_code"`
	BrandName    string    `json:"brand_name"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	ClaimedAt    time.Time `json:"claimed_at"`
}

type ClaimNotifier interface {
	NotifyClaimed(ctx context.Context, event ClaimEvent) error
}

// RuntimeConfig exposes operator-tunable switches backed by
// config_parameters.
type RuntimeConfig interface {
	GetBool(ctx context.Context, key string) (bool, error)
}

type ClaimResult struct {
	DiscountID  uuid.UUID
	Code        string
	Description string
}

type ClaimCommands interface {
	Claim(ctx context.Context, userID, discountID uuid.UUID) (*ClaimResult, error)
}

type claimUseCaseImpl struct {
	uow          shared.UnitOfWork
	notifier     ClaimNotifier
	userQueries  queries.UserQueries
	brandQueries queries.BrandQueries
	settings     RuntimeConfig
	clock        clock.Clock
}

func NewClaimUseCase(
	uow shared.UnitOfWork,
	notifier ClaimNotifier,
	userQueries queries.UserQueries,
	brandQueries queries.BrandQueries,
	settings RuntimeConfig,
	clock clock.Clock,
) ClaimCommands {
	return &claimUseCaseImpl{
		uow:          uow,
		notifier:     notifier,
		userQueries:  userQueries,
		brandQueries: brandQueries,
		settings:     settings,
		clock:        clock,
	}
}

// Claim allocates one unit of a discount to a user. The whole
// check-and-insert runs in a single transaction: the discount row lock
// serializes concurrent claims, the unique (user, discount) pair rejects
// repeats, and the conditional counter bump stops allocation at quantity.
// Precondition failures surface in a fixed order: not found, disabled,
// already claimed, exhausted.
func (c *claimUseCaseImpl) Claim(ctx context.Context, userID, discountID uuid.UUID) (*ClaimResult, error) {
	var snap *shared.DiscountSnapshot

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snap, err = tx.Discounts().FindForUpdate(ctx, tx.DB(), discountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDiscountNotFound)
			}
			return err
		}

		if !snap.Enable {
			return ErrDiscountDisabled
		}

		inserted, err := tx.Claims().Insert(ctx, tx.DB(), userID, discountID)
		if err != nil {
			return err
		}
		if inserted == 0 {
			return ErrAlreadyClaimed
		}

		bumped, err := tx.Discounts().IncrementClaimed(ctx, tx.DB(), discountID)
		if err != nil {
			return err
		}
		if bumped == 0 {
			return ErrDiscountExhausted
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	c.dispatchNotification(ctx, userID, snap)

	return &ClaimResult{
		DiscountID:  snap.ID,
		Code:        snap.Code,
		Description: snap.Description,
	}, nil
}

// dispatchNotification is fire-and-forget: a delivery failure never
// affects the committed claim.
func (c *claimUseCaseImpl) dispatchNotification(ctx context.Context, userID uuid.UUID, snap *shared.DiscountSnapshot) {
	// Operators can mute notifications at runtime. Only an explicit
	// "false" suppresses: a config read failure keeps the default behavior.
	if enabled, err := c.settings.GetBool(ctx, dynconfig.KeyClaimNotifyEnabled); err == nil && !enabled {
		slog.Debug("claim notification suppressed by runtime config", "discount_id", snap.ID)
		return
	}

	claimedAt := c.clock.Now()
	ctx = context.WithoutCancel(ctx)

	go func() {
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()

		event := ClaimEvent{
			DiscountID:   snap.ID,
			DiscountCode: snap.Code,
			UserID:       userID,
			ClaimedAt:    claimedAt,
		}

		if userView, err := c.userQueries.GetByID(ctx, userID); err == nil {
			event.UserName = userView.FirstName
		} else {
			slog.Warn("claim notification: failed to resolve user", "user_id", userID, "error", err.Error())
		}

		if brandView, err := c.brandQueries.GetByID(ctx, snap.BrandID); err == nil {
			event.BrandName = brandView.Name
		} else {
			slog.Warn("claim notification: failed to resolve brand", "brand_id", snap.BrandID, "error", err.Error())
		}

		if err := c.notifier.NotifyClaimed(ctx, event); err != nil {
			slog.Error("claim notification failed",
				"discount_id", event.DiscountID,
				"user_id", event.UserID,
				"error", err.Error())
		}
	}()
}
