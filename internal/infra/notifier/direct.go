package notifier

import (
	"context"
	"log/slog"

	"discount-hub/internal/usecase/commands"
)

// DirectNotifier is the broker-less fallback: it writes the event to the
// structured log and keeps the claim path identical in both modes.
type DirectNotifier struct{}

func NewDirectNotifier() *DirectNotifier {
	return &DirectNotifier{}
}

func (n *DirectNotifier) NotifyClaimed(_ context.Context, event commands.ClaimEvent) error {
	slog.Info("discount claimed",
		"discount_id", event.DiscountID,
		"discount_code", event.DiscountCode,
		"brand_name", event.BrandName,
		"user_id", event.UserID,
		"user_name", event.UserName,
		"claimed_at", event.ClaimedAt)
	return nil
}
