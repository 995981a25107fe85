package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos-pricing-engine/internal/handler/api"
	"pos-pricing-engine/internal/handler/middleware"
	"pos-pricing-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	cartHandler *api.CartHandler,
	couponHandler *api.CouponHandler,
	checkoutHandler *api.CheckoutHandler,
	sessionHandler *api.SessionHandler,
	catalogHandler *api.CatalogHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cartHandler, couponHandler, checkoutHandler, sessionHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cartHandler *api.CartHandler,
	couponHandler *api.CouponHandler,
	checkoutHandler *api.CheckoutHandler,
	sessionHandler *api.SessionHandler,
	catalogHandler *api.CatalogHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/stores", Handler: catalogHandler.Stores},
			{Method: http.MethodPost, Path: "/stores/select", Handler: catalogHandler.SelectStore},
			{Method: http.MethodGet, Path: "/catalog/search", Handler: catalogHandler.Search},
			{Method: http.MethodGet, Path: "/catalog/barcode/:code", Handler: catalogHandler.Barcode},
			{Method: http.MethodGet, Path: "/variants/:id/stock", Handler: catalogHandler.Stock},
			{Method: http.MethodGet, Path: "/prefs/search-view", Handler: catalogHandler.SearchView},
			{Method: http.MethodPut, Path: "/prefs/search-view", Handler: catalogHandler.SetSearchView},

			{Method: http.MethodGet, Path: "/cart", Handler: cartHandler.Get},
			{Method: http.MethodDelete, Path: "/cart", Handler: cartHandler.Clear},
			{Method: http.MethodPost, Path: "/cart/items", Handler: cartHandler.AddItem},
			{Method: http.MethodPatch, Path: "/cart/items/:id", Handler: cartHandler.UpdateLine},
			{Method: http.MethodDelete, Path: "/cart/items/:id", Handler: cartHandler.RemoveLine},

			{Method: http.MethodPost, Path: "/coupons", Handler: couponHandler.Apply},
			{Method: http.MethodDelete, Path: "/coupons/:code", Handler: couponHandler.Remove},

			{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.Checkout},

			{Method: http.MethodPost, Path: "/session", Handler: sessionHandler.Login},
			{Method: http.MethodGet, Path: "/session", Handler: sessionHandler.Status},
			{Method: http.MethodDelete, Path: "/session", Handler: sessionHandler.End},
		})
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
