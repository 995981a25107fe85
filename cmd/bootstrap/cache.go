package bootstrap

import (
	"context"
	"log/slog"

	"pos-pricing-engine/internal/infra/cache"
	"pos-pricing-engine/internal/pkg/config"
	"pos-pricing-engine/internal/usecase"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewLocalState,
		func(s *cache.RedisLocalState) usecase.CartCache { return s },
		func(s *cache.RedisLocalState) usecase.PrefsCache { return s },
	),
)

func NewLocalState(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*cache.RedisLocalState, error) {
	state := cache.NewRedisLocalState(cfg.Cache, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return state.Ping(ctx)
		},
		OnStop: func(_ context.Context) error {
			return state.Close()
		},
	})

	return state, nil
}
