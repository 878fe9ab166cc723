package components

import (
	"fulfillment-core/internal/infra/db"
	repo_impl "fulfillment-core/internal/infra/repository"
	"fulfillment-core/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewTransactionRepository,
			fx.As(new(usecase.TransactionStore)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderStore)),
		),
		fx.Annotate(
			repo_impl.NewLockRepository,
			fx.As(new(usecase.LockStore)),
		),
		fx.Annotate(
			repo_impl.NewQueueRepository,
			fx.As(new(usecase.QueueStore)),
		),
		fx.Annotate(
			repo_impl.NewWebhookLogRepository,
			fx.As(new(usecase.WebhookLogStore)),
		),
		fx.Annotate(
			repo_impl.NewTransactionLogRepository,
			fx.As(new(usecase.TransactionLogStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
