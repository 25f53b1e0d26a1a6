package bootstrap

import (
	"context"
	"log/slog"

	"workshop-booking/internal/infra/notify"
	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier wires the lifecycle hook publisher. Without an AMQP URL the
// service degrades to log-only notifications instead of refusing to start.
func NewNotifier(lc fx.Lifecycle, cfg config.Config) (commands.Notifier, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, booking notifications will be logged only")
		return notify.NewLogNotifier(), nil
	}

	notifier, err := notify.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			notifier.Close()
			return nil
		},
	})

	return notifier, nil
}
