package config

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24, cfg.JWTAccessTTLHours)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "0 9 * * *", cfg.ReminderCron)
	assert.False(t, cfg.KafkaEnabled())
	assert.False(t, cfg.RedisEnabled())
	assert.Len(t, cfg.CORSOrigins, 2)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.True(t, cfg.RedisEnabled())
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "password=pw")
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadLogsMissingDotEnv(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })
	var buf bytes.Buffer
	log.SetDefault(log.New(&buf))

	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
	_, err := Load()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no .env file")
	assert.Contains(t, buf.String(), "INFO")
}
