package bootstrap

import (
	"pos-pricing-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CacheModule,
	GatewayModule,
	components.EngineModule,
	components.HandlerModule,
)
