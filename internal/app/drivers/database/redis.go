package database

import (
	"context"
	"fmt"
	"medadmin-service/internal/app/config"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects to redis and pings it once. Sessions, reset
// tokens and locks all live here, so a failed ping is fatal for the caller.
func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*redis.Client, error) {
	addr := net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     driverConfig.Redis.Password,
		DB:           driverConfig.Redis.DB,
		DialTimeout:  redisPingTimeout,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	log.Info("Connected to redis", zap.String("address", addr), zap.Int("db", driverConfig.Redis.DB))
	return client, nil
}
