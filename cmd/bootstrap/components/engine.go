package components

import (
	"context"
	"log/slog"
	"time"

	"pos-pricing-engine/internal/pkg/clock"
	"pos-pricing-engine/internal/pkg/config"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/usecase"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		clock.NewRealClock,
		NewCartStore,
		NewCouponManager,
		NewReconciler,
		NewSessionGuard,
		NewEngine,
	),
	fx.Invoke(bootstrapEngine),
	fx.Invoke(sessionWatchdog),
)

func NewCartStore(cache usecase.CartCache, logger *slog.Logger) *usecase.CartStore {
	return usecase.NewCartStore(cache, logger)
}

func NewCouponManager(gw usecase.Gateway) *usecase.CouponManager {
	return usecase.NewCouponManager(gw)
}

func NewReconciler(gw usecase.Gateway, cfg config.Config, logger *slog.Logger) *usecase.Reconciler {
	return usecase.NewReconciler(gw, cfg.Reconcile.DebounceWindow, logger)
}

func NewSessionGuard(gw usecase.Gateway, clk clock.Clock, logger *slog.Logger) *usecase.SessionGuard {
	return usecase.NewSessionGuard(gw, clk, logger)
}

func NewEngine(
	gw usecase.Gateway,
	carts *usecase.CartStore,
	coupons *usecase.CouponManager,
	reconciler *usecase.Reconciler,
	sessions *usecase.SessionGuard,
	prefs usecase.PrefsCache,
	clk clock.Clock,
	logger *slog.Logger,
) *usecase.Engine {
	return usecase.NewEngine(gw, carts, coupons, reconciler, sessions, prefs, clk, logger)
}

// bootstrapEngine restores the persisted store lock and cart so a
// reload resumes the same in-progress sale.
func bootstrapEngine(lc fx.Lifecycle, engine *usecase.Engine, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := engine.Bootstrap(ctx); err != nil {
				logger.Warn("engine bootstrap finished with condition", "error", err)
			}
			return nil
		},
	})
}

// sessionWatchdog polls the register session so an idle terminal
// notices expiry without waiting for the next operator action.
func sessionWatchdog(lc fx.Lifecycle, sessions *usecase.SessionGuard, cfg config.Config, logger *slog.Logger) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Session.PollInterval)
				defer ticker.Stop()
				var notified bool
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						err := sessions.Check()
						if errs.Is(err, errs.ErrSessionExpired) && !notified {
							logger.Info("register session expired")
						}
						notified = errs.Is(err, errs.ErrSessionExpired)
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			close(done)
			return nil
		},
	})
}
