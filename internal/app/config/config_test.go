package config

import (
	"context"
	"medadmin-service/internal/pkg/constvars"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewInternalConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_URL", "")
	t.Setenv("NEXT_PUBLIC_APP_URL", "https://admin.example.com")
	t.Setenv("APP_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")

	cfg := NewInternalConfig()

	assert.Equal(t, "", cfg.JWT.Secret)
	assert.Equal(t, "https://admin.example.com", cfg.App.URL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "/api", cfg.App.EndpointPrefix)
	assert.Equal(t, constvars.StorageDriverMemory, cfg.App.StorageDriver)
	assert.Equal(t, constvars.MailerDriverLog, cfg.App.MailerDriver)
}

func TestNewInternalConfigPrefersAppURL(t *testing.T) {
	t.Setenv("APP_URL", "https://primary.example.com")
	t.Setenv("NEXT_PUBLIC_APP_URL", "https://fallback.example.com")

	cfg := NewInternalConfig()

	assert.Equal(t, "https://primary.example.com", cfg.App.URL)
}

func TestBootstrapShutdown_ClosesRedis(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	b := &Bootstrap{Redis: client, Logger: zap.NewNop()}

	require.NoError(t, b.Shutdown(context.Background()))
	assert.Error(t, client.Ping(context.Background()).Err())

	err := b.Shutdown(context.Background())
	assert.ErrorContains(t, err, "close redis")
}
