package bootstrap

import (
	"context"
	"log/slog"

	"discount-hub/internal/infra/notifier"
	"discount-hub/internal/pkg/config"
	"discount-hub/internal/usecase/commands"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewClaimNotifier,
	),
)

// NewClaimNotifier wires the Kafka publisher when a broker is configured
// and falls back to the log-only notifier otherwise.
func NewClaimNotifier(lc fx.Lifecycle, cfg config.Config) (commands.ClaimNotifier, error) {
	if !cfg.Kafka.Enabled {
		slog.Info("kafka disabled, using direct notifier")
		return notifier.NewDirectNotifier(), nil
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Kafka.Brokers...),
		kgo.ClientID(cfg.Kafka.ClientID),
	)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return notifier.EnsureTopics(ctx, client)
		},
		OnStop: func(_ context.Context) error {
			client.Close()
			return nil
		},
	})

	return notifier.NewKafkaNotifier(client), nil
}
