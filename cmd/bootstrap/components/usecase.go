package components

import (
	"github.com/bk376/fuelflow-pos/internal/infra/catalog"
	"github.com/bk376/fuelflow-pos/internal/infra/pump"
	"github.com/bk376/fuelflow-pos/internal/infra/registry"
	"github.com/bk376/fuelflow-pos/internal/pkg/clock"
	"github.com/bk376/fuelflow-pos/internal/usecase/commands"
	"github.com/bk376/fuelflow-pos/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

// The engine, registry and catalog are shared singletons, so port bindings
// reuse the concrete instances instead of annotating their constructors.
var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(e *pump.Engine) commands.PumpEngine { return e },
	func(c *catalog.Catalog) commands.PriceCatalog { return c },
	func(r *registry.Registry) commands.NozzlePriceWriter { return r },
	func(e *pump.Engine) queries.PumpReadStore { return e },
	func(r *registry.Registry) queries.TopologyReadStore { return r },
	func(c *catalog.Catalog) queries.CatalogReadStore { return c },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFuelCommands,
		commands.NewCartCommands,
		commands.NewPricingCommands,
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFuelQueries,
		queries.NewCartQueries,
		queries.NewPricingQueries,
	),
)
