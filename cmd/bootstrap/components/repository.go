package components

import (
	"github.com/bk376/fuelflow-pos/internal/infra/repository"
	"github.com/bk376/fuelflow-pos/internal/usecase/commands"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewTransactionRepository,
			fx.As(new(commands.TransactionRepository)),
		),
	),
)
