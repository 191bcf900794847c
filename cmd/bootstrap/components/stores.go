package components

import (
	"log/slog"

	"github.com/bk376/fuelflow-pos/internal/domain/cart"
	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/infra/catalog"
	"github.com/bk376/fuelflow-pos/internal/infra/metrics"
	"github.com/bk376/fuelflow-pos/internal/infra/pump"
	"github.com/bk376/fuelflow-pos/internal/infra/registry"
	"github.com/bk376/fuelflow-pos/internal/infra/seed"
	"github.com/bk376/fuelflow-pos/internal/pkg/clock"
	"github.com/bk376/fuelflow-pos/internal/pkg/config"

	"go.uber.org/fx"
)

// StoreModule wires the in-memory station state: the seeded topology, the
// dispenser registry, the price catalog, the shared cart, and the pump engine.
var StoreModule = fx.Module("stores",
	fx.Provide(
		NewStation,
		NewRegistry,
		NewCatalog,
		NewCart,
		NewPumpEngine,
	),
)

func NewStation(clk clock.Clock) seed.Station {
	return seed.DefaultStation(clk.Now())
}

func NewRegistry(station seed.Station) *registry.Registry {
	return registry.New(station.Dispensers, station.Tanks)
}

func NewCatalog(station seed.Station) *catalog.Catalog {
	return catalog.New(station.Products, station.Prices)
}

func NewCart(cfg config.Config) *cart.Cart {
	return cart.New(cfg.Cart.TaxRate)
}

func NewPumpEngine(
	lc fx.Lifecycle,
	reg *registry.Registry,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
) *pump.Engine {
	newRate := func() fuel.RateStrategy {
		return fuel.NewRandomRate(cfg.Pump.MinIncrement, cfg.Pump.MaxIncrement, cfg.Pump.StopProbability)
	}
	engine := pump.NewEngine(reg, newRate, clk, cfg.Pump, logger, m)

	lc.Append(fx.Hook{
		OnStart: engine.Start,
		OnStop:  engine.Stop,
	})

	return engine
}
