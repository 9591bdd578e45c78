package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ROUTING_GOOGLE_MAPS_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "test-key", cfg.Maps.APIKey)
	assert.Equal(t, "https://maps.googleapis.com", cfg.Maps.BaseURL)
	assert.Equal(t, "in", cfg.Maps.Country)
	assert.Equal(t, 10*time.Second, cfg.Maps.Timeout)
	assert.False(t, cfg.DBConfig.Configured())
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ROUTING_GOOGLE_MAPS_API_KEY", "test-key")
	t.Setenv("ROUTING_SERVICE_PORT", ":9090")
	t.Setenv("ROUTING_APP_ENV", "development")
	t.Setenv("ROUTING_MAPS_TIMEOUT", "3s")
	t.Setenv("ROUTING_AUTOCOMPLETE_COUNTRY", "my")
	t.Setenv("ROUTING_DB_HOST", "db.internal")
	t.Setenv("ROUTING_DB_NAME", "routing")
	t.Setenv("ROUTING_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("ROUTING_CORS_ALLOWED_ORIGINS", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 3*time.Second, cfg.Maps.Timeout)
	assert.Equal(t, "my", cfg.Maps.Country)
	assert.True(t, cfg.DBConfig.Configured())
	assert.Equal(t, "routing", cfg.DBConfig.DBName)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSOrigins)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("ROUTING_GOOGLE_MAPS_API_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "ROUTING_GOOGLE_MAPS_API_KEY")
}

func TestServicePort(t *testing.T) {
	assert.Equal(t, ":8080", servicePort(""))
	assert.Equal(t, ":3000", servicePort("3000"))
	assert.Equal(t, ":3000", servicePort(":3000"))
}
