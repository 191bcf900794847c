package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bk376/fuelflow-pos/internal/handler/api"
	"github.com/bk376/fuelflow-pos/internal/handler/middleware"
	"github.com/bk376/fuelflow-pos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	fuelHandler *api.FuelHandler,
	cartHandler *api.CartHandler,
	pricingHandler *api.PricingHandler,
	checkoutHandler *api.CheckoutHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, fuelHandler, cartHandler, pricingHandler, checkoutHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	fuelHandler *api.FuelHandler,
	cartHandler *api.CartHandler,
	pricingHandler *api.PricingHandler,
	checkoutHandler *api.CheckoutHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		pumps := apiGroup.Group("/pumps")
		{
			addRoutes(pumps, []route{
				{Method: http.MethodPost, Path: "/:dispenserID/nozzles/:nozzleID/authorize", Handler: fuelHandler.AuthorizePump},
			})
		}

		fuelSales := apiGroup.Group("/fuel-sales")
		{
			addRoutes(fuelSales, []route{
				{Method: http.MethodGet, Path: "", Handler: fuelHandler.ListActiveSales},
				{Method: http.MethodGet, Path: "/:id", Handler: fuelHandler.GetFuelSale},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: fuelHandler.CompleteFuelSale},
			})
		}

		dispensers := apiGroup.Group("/dispensers")
		{
			addRoutes(dispensers, []route{
				{Method: http.MethodGet, Path: "", Handler: fuelHandler.ListDispensers},
				{Method: http.MethodGet, Path: "/:dispenserID", Handler: fuelHandler.GetDispenser},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/tanks", Handler: fuelHandler.ListTanks},
			{Method: http.MethodPut, Path: "/fuel-prices", Handler: pricingHandler.UpdatePrices},
			{Method: http.MethodGet, Path: "/products", Handler: pricingHandler.ListProducts},
			{Method: http.MethodGet, Path: "/products/:id/price", Handler: pricingHandler.GetPrice},
			{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.Checkout},
		})

		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: cartHandler.UpdateQuantity},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: cartHandler.RemoveItem},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.ClearCart},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
