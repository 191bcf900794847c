package bootstrap

import (
	"github.com/bk376/fuelflow-pos/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	MetricsModule,
	components.StoreModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
