package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-manager/internal/config/configs"
)

// NewRedisClient creates a Redis client and pings it until it answers or
// cfg.ConnectTimeout elapses. The wait between attempts starts at
// cfg.RetryInterval and doubles up to cfg.MaxWait.
func NewRedisClient(ctx context.Context, cfg configs.Redis, logger *slog.Logger) (*redis.Client, error) {
	if cfg.ConnectTimeout <= 0 {
		return nil, fmt.Errorf("ConnectTimeout must be > 0, got %v", cfg.ConnectTimeout)
	}
	if cfg.RetryInterval <= 0 {
		return nil, fmt.Errorf("RetryInterval must be > 0, got %v", cfg.RetryInterval)
	}
	if cfg.MaxWait <= 0 {
		return nil, fmt.Errorf("MaxWait must be > 0, got %v", cfg.MaxWait)
	}
	if cfg.PingTimeout <= 0 {
		return nil, fmt.Errorf("PingTimeout must be > 0, got %v", cfg.PingTimeout)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.User,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := connectWithRetry(ctx, client, cfg, logger); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func connectWithRetry(ctx context.Context, client *redis.Client, cfg configs.Redis, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	logger.Info("connecting to redis", slog.String("addr", cfg.Addr), slog.Duration("timeout", cfg.ConnectTimeout))
	start := time.Now()
	wait := cfg.RetryInterval

	for attempt := 1; ; attempt++ {
		pingCtx, pingCancel := context.WithTimeout(ctx, cfg.PingTimeout)
		err := client.Ping(pingCtx).Err()
		pingCancel()

		if err == nil {
			logger.Info("connected to redis",
				slog.String("addr", cfg.Addr),
				slog.Int("attempts", attempt),
				slog.Duration("elapsed", time.Since(start)))
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Error("redis unavailable",
				slog.String("addr", cfg.Addr),
				slog.Int("attempts", attempt),
				slog.Any("error", err))
			return fmt.Errorf("redis unavailable at %s after %d attempts (timeout: %v): %w",
				cfg.Addr, attempt, cfg.ConnectTimeout, err)
		case <-timer.C:
			logger.Warn("redis connection failed, retrying",
				slog.String("addr", cfg.Addr),
				slog.Int("attempt", attempt),
				slog.Duration("next_retry_in", wait),
				slog.Any("error", err))
			wait *= 2
			if wait > cfg.MaxWait {
				wait = cfg.MaxWait
			}
		}
	}
}
