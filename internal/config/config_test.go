package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	cfg := config.New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 50, cfg.Orders.MaxLines)
	assert.Equal(t, 20, cfg.Orders.DefaultPageSize)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestNew_FromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("ORDER_MAX_LINES", "10")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CACHE_BACKEND", "redis")

	cfg := config.New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Orders.MaxLines)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "redis", cfg.Cache.Backend)
}

func TestNew_InvalidValuesFallBack(t *testing.T) {
	setRequired(t)
	t.Setenv("ORDER_MAX_LINES", "many")
	t.Setenv("CACHE_TTL", "soon")

	cfg := config.New()

	assert.Equal(t, 50, cfg.Orders.MaxLines)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing jwt secret", env: map[string]string{"JWT_SECRET": ""}},
		{name: "short jwt secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "unknown env", env: map[string]string{"ENV": "dev"}},
		{name: "unknown cache backend", env: map[string]string{"CACHE_BACKEND": "memcached"}},
		{name: "zero max lines", env: map[string]string{"ORDER_MAX_LINES": "0"}},
		{name: "page size above max", env: map[string]string{"ORDER_DEFAULT_PAGE_SIZE": "500"}},
		{name: "bad smtp sender", env: map[string]string{"SMTP_FROM": "not-an-email"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			assert.Error(t, config.New().Validate())
		})
	}
}
