package bootstrap

import (
	"log/slog"

	"pos-pricing-engine/internal/infra/gateway"
	"pos-pricing-engine/internal/pkg/config"
	"pos-pricing-engine/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPricingClient,
		func(c *gateway.Client) usecase.Gateway { return c },
	),
)

func NewPricingClient(cfg config.Config, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(cfg.Pricing, logger)
}
