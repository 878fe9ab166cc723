package bootstrap

import (
	"fulfillment-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	ClockModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.RuntimeModule,
)
