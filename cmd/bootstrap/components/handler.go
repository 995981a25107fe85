package components

import (
	"pos-pricing-engine/internal/handler"
	"pos-pricing-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewCheckoutHandler,
		api.NewSessionHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(
		handler.NewRouter,
	),
)
