package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/helios-ride/service-routing/internal/platform/database"
	"github.com/helios-ride/service-routing/internal/provider/googlemaps"
)

const envPrefix = "ROUTING"

// ServiceConfig holds all configuration for the routing service.
type ServiceConfig struct {
	Port          string
	AppEnv        string
	Maps          googlemaps.Config
	DBConfig      database.PostgresConfig
	KafkaBrokers  []string
	CORSOrigins   []string
	MigrationsDir string
}

// Load reads configuration from ROUTING_* environment variables.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("MAPS_BASE_URL", googlemaps.DefaultBaseURL)
	v.SetDefault("MAPS_TIMEOUT", googlemaps.DefaultTimeout)
	v.SetDefault("AUTOCOMPLETE_COUNTRY", googlemaps.DefaultCountry)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "helios")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	apiKey := strings.TrimSpace(v.GetString("GOOGLE_MAPS_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("config: " + envPrefix + "_GOOGLE_MAPS_API_KEY is required")
	}

	timeout := v.GetDuration("MAPS_TIMEOUT")
	if timeout <= 0 {
		timeout = googlemaps.DefaultTimeout
	}

	return &ServiceConfig{
		Port:   servicePort(v.GetString("SERVICE_PORT")),
		AppEnv: v.GetString("APP_ENV"),
		Maps: googlemaps.Config{
			APIKey:  apiKey,
			BaseURL: v.GetString("MAPS_BASE_URL"),
			Country: v.GetString("AUTOCOMPLETE_COUNTRY"),
			Timeout: timeout,
		},
		DBConfig: database.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		KafkaBrokers:  splitList(v.GetString("KAFKA_BROKERS")),
		CORSOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MigrationsDir: v.GetString("MIGRATIONS_DIR"),
	}, nil
}

func servicePort(port string) string {
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
