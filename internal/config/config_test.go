package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "checkout")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "USD", cfg.Checkout.Currency)
	assert.Equal(t, 24*time.Hour, cfg.Redis.PendingTTL)
	assert.Equal(t, 10*time.Second, cfg.Checkout.BackendTimeout)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestNew_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CHECKOUT_CURRENCY", "eur")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("PENDING_PAYMENT_TTL", "2h")
	t.Setenv("POSTGRES_PORT", "not-a-number")

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "EUR", cfg.Checkout.Currency)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Hour, cfg.Redis.PendingTTL)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"ENV": "qa"}},
		{name: "short jwt secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "bad currency", env: map[string]string{"CHECKOUT_CURRENCY": "dollars"}},
		{name: "missing stripe key", env: map[string]string{"STRIPE_SECRET_KEY": ""}},
		{name: "bad return url", env: map[string]string{"CHECKOUT_RETURN_URL": "not a url"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, New().Validate())
		})
	}
}
