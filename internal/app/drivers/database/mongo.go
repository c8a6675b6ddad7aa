package database

import (
	"context"
	"fmt"
	"medadmin-service/internal/app/config"
	"net"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const mongoConnectTimeout = 10 * time.Second

// MongoURI builds the connection string. Credentials are omitted when no
// username is configured.
func MongoURI(mongoConfig config.MongoDB) string {
	uri := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(mongoConfig.Host, mongoConfig.Port),
	}
	if mongoConfig.Username != "" {
		uri.User = url.UserPassword(mongoConfig.Username, mongoConfig.Password)
	}
	return uri.String()
}

// NewMongoDB connects and pings the server, then returns the handle for
// dbName.
func NewMongoDB(ctx context.Context, driverConfig *config.DriverConfig, dbName string, log *zap.Logger) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(MongoURI(driverConfig.MongoDB)).
		SetServerSelectionTimeout(mongoConnectTimeout)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info("Connected to mongo",
		zap.String("host", driverConfig.MongoDB.Host),
		zap.String("database", dbName),
	)
	return client.Database(dbName), nil
}
