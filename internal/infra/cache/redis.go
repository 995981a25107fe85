package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"pos-pricing-engine/internal/domain/cart"
	"pos-pricing-engine/internal/infra"
	"pos-pricing-engine/internal/pkg/config"
)

// RedisLocalState is the terminal's durable local state: the
// in-progress cart under a fixed key plus the locked store and search
// view preferences. Single writer, last write wins.
type RedisLocalState struct {
	client  *redis.Client
	cartKey string
	logger  *slog.Logger
}

func NewRedisLocalState(cfg config.CacheConfig, logger *slog.Logger) *RedisLocalState {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &RedisLocalState{client: client, cartKey: cfg.CartKey, logger: logger}
}

func (s *RedisLocalState) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisLocalState) Close() error {
	return s.client.Close()
}

func (s *RedisLocalState) SaveCart(ctx context.Context, lines []cart.Line) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "encode cart", err)
	}
	if err := s.client.Set(ctx, s.cartKey, payload, 0).Err(); err != nil {
		return infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "persist cart", err)
	}
	return nil
}

func (s *RedisLocalState) LoadCart(ctx context.Context) ([]cart.Line, bool, error) {
	val, err := s.client.Get(ctx, s.cartKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "load cart", err)
	}

	var lines []cart.Line
	if err := json.Unmarshal([]byte(val), &lines); err != nil {
		return nil, false, infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "decode cart", err)
	}
	return lines, true, nil
}

func (s *RedisLocalState) DeleteCart(ctx context.Context) error {
	if err := s.client.Del(ctx, s.cartKey).Err(); err != nil {
		return infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "delete cart", err)
	}
	return nil
}

func (s *RedisLocalState) SaveStoreID(ctx context.Context, storeID string) error {
	if err := s.client.Set(ctx, s.cartKey+":store", storeID, 0).Err(); err != nil {
		return infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "persist store id", err)
	}
	return nil
}

func (s *RedisLocalState) LoadStoreID(ctx context.Context) (string, bool, error) {
	val, err := s.client.Get(ctx, s.cartKey+":store").Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "load store id", err)
	}
	return val, true, nil
}

func (s *RedisLocalState) DeleteStoreID(ctx context.Context) error {
	if err := s.client.Del(ctx, s.cartKey+":store").Err(); err != nil {
		return infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "delete store id", err)
	}
	return nil
}

func (s *RedisLocalState) SaveSearchView(ctx context.Context, view string) error {
	if err := s.client.Set(ctx, s.cartKey+":view", view, 0).Err(); err != nil {
		return infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "persist search view", err)
	}
	return nil
}

func (s *RedisLocalState) LoadSearchView(ctx context.Context) (string, bool, error) {
	val, err := s.client.Get(ctx, s.cartKey+":view").Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapInfraErr(s.logger, infra.KindCacheFailure, "load search view", err)
	}
	return val, true, nil
}
