package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"discount-hub/internal/pkg/errs"
	"discount-hub/internal/usecase/commands"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

const TopicDiscountClaimed = "discount.claimed"

// KafkaNotifier publishes claim events for downstream consumers
// (mailers, analytics). Delivery is best effort.
type KafkaNotifier struct {
	client *kgo.Client
}

func NewKafkaNotifier(client *kgo.Client) *KafkaNotifier {
	return &KafkaNotifier{client: client}
}

// NotifyClaimed keys records by discount ID so events for one discount
// stay ordered within a partition.
func (n *KafkaNotifier) NotifyClaimed(ctx context.Context, event commands.ClaimEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode claim event")
	}

	record := &kgo.Record{
		Topic: TopicDiscountClaimed,
		Key:   []byte(event.DiscountID.String()),
		Value: payload,
	}

	if err := n.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errs.Wrap(err, "failed to produce claim event")
	}

	slog.Debug("claim event published",
		"topic", TopicDiscountClaimed,
		"discount_id", event.DiscountID,
		"user_id", event.UserID)
	return nil
}

func EnsureTopics(ctx context.Context, client *kgo.Client) error {
	adm := kadm.NewClient(client)

	resp, err := adm.CreateTopics(ctx, 1, 1, nil, TopicDiscountClaimed)
	if err != nil {
		return fmt.Errorf("failed to create topic %s: %w", TopicDiscountClaimed, err)
	}
	for _, detail := range resp {
		if detail.Err != nil && !strings.Contains(detail.Err.Error(), "already exists") {
			return fmt.Errorf("failed to create topic %s: %w", detail.Topic, detail.Err)
		}
	}
	return nil
}
