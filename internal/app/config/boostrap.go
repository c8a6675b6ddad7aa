package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Database
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	AccessLogger   *logrus.Logger
	Registry       *prometheus.Registry
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown releases every opened driver in reverse order of acquisition and
// reports all failures together.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error
	release := func(name string, closeFn func() error) {
		if err := closeFn(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
			return
		}
		if b.Logger != nil {
			b.Logger.Info("Driver closed", zap.String("driver", name))
		}
	}

	if b.RabbitMQ != nil {
		release("rabbitmq", b.RabbitMQ.Close)
	}
	if b.MongoDB != nil {
		release("mongodb", func() error { return b.MongoDB.Client().Disconnect(ctx) })
	}
	if b.Redis != nil {
		release("redis", b.Redis.Close)
	}
	if b.Logger != nil {
		// Sync on stdout returns EINVAL on some platforms.
		_ = b.Logger.Sync()
	}

	return errors.Join(errs...)
}
