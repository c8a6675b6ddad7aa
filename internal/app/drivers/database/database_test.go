package database

import (
	"context"
	"medadmin-service/internal/app/config"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMongoURI(t *testing.T) {
	assert.Equal(t, "mongodb://localhost:27017", MongoURI(config.MongoDB{Host: "localhost", Port: "27017"}))
	assert.Equal(t,
		"mongodb://admin:p%40ss@db:27018",
		MongoURI(config.MongoDB{Host: "db", Port: "27018", Username: "admin", Password: "p@ss"}),
	)
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)
	driverConfig := &config.DriverConfig{Redis: config.Redis{Host: server.Host(), Port: server.Port()}}

	client, err := NewRedisClient(context.Background(), driverConfig, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())

	server.Close()
	_, err = NewRedisClient(context.Background(), driverConfig, zap.NewNop())
	assert.Error(t, err)
}
