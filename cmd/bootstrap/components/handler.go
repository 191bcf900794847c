package components

import (
	"github.com/bk376/fuelflow-pos/internal/handler"
	"github.com/bk376/fuelflow-pos/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFuelHandler,
		api.NewCartHandler,
		api.NewPricingHandler,
		api.NewCheckoutHandler,
	),
	fx.Invoke(handler.NewRouter),
)
