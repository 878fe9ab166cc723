package components

import (
	"context"
	"log/slog"

	"fulfillment-core/internal/infra/gateway"
	"fulfillment-core/internal/infra/notify"
	"fulfillment-core/internal/infra/provider"
	"fulfillment-core/internal/pkg/clock"
	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/jwt"
	"fulfillment-core/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
		fx.Annotate(
			NewProviderClient,
			fx.As(new(usecase.ProviderClient)),
		),
		NewEventPublisher,
		NewReconciler,
		NewWebhookProcessor,
		NewAdmin,
	),
)

func NewPaymentGateway(cfg config.Config) *gateway.Client {
	return gateway.NewClient(cfg.Gateway)
}

func NewProviderClient(cfg config.Config) *provider.Client {
	return provider.NewClient(cfg.Provider)
}

// NewEventPublisher connects to the broker when AMQP is enabled and drops
// events otherwise, so a broker is optional in small deployments.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.EventPublisher, error) {
	if !cfg.AMQP.Enabled {
		logger.Info("AMQP disabled, downstream events will be dropped")
		return notify.NopPublisher{}, nil
	}

	publisher, cleanup, err := notify.NewPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return publisher, nil
}

func NewReconciler(
	transactions usecase.TransactionStore,
	orders usecase.OrderStore,
	locks usecase.LockStore,
	jobs usecase.QueueStore,
	txLogs usecase.TransactionLogStore,
	providerClient usecase.ProviderClient,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *usecase.Reconciler {
	return usecase.NewReconciler(transactions, orders, locks, jobs, txLogs, providerClient, clk, logger, cfg.Reconcile, cfg.Provider)
}

func NewWebhookProcessor(
	transactions usecase.TransactionStore,
	webhookLogs usecase.WebhookLogStore,
	txLogs usecase.TransactionLogStore,
	jobs usecase.QueueStore,
	paymentGateway usecase.PaymentGateway,
	reconciler *usecase.Reconciler,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *usecase.WebhookProcessor {
	return usecase.NewWebhookProcessor(transactions, webhookLogs, txLogs, jobs, paymentGateway, reconciler, clk, logger, cfg.Gateway, cfg.Queue)
}

func NewAdmin(
	transactions usecase.TransactionStore,
	orders usecase.OrderStore,
	locks usecase.LockStore,
	jobs usecase.QueueStore,
	webhookLogs usecase.WebhookLogStore,
	txLogs usecase.TransactionLogStore,
	reconciler *usecase.Reconciler,
	jwtService *jwt.Service,
	cfg config.Config,
) *usecase.Admin {
	return usecase.NewAdmin(transactions, orders, locks, jobs, webhookLogs, txLogs, reconciler, jwtService, cfg.Admin, cfg.Reconcile)
}
