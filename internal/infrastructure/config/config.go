package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Alerting    AlertingConfig
	Geolocation GeolocationConfig
	Session     SessionConfig
	Mongo       MongoConfig
	Redis       RedisConfig
}

type AlertingConfig struct {
	BaseURL string        `env:"ALERTING_BASE_URL, default=http://localhost:9000/api"`
	Timeout time.Duration `env:"ALERTING_TIMEOUT,  default=30s"`
}

type GeolocationConfig struct {
	// GatewayURL is the location gateway's position endpoint. Empty means
	// the hosting environment exposes no location capability.
	GatewayURL string        `env:"LOCATION_GATEWAY_URL"`
	Timeout    time.Duration `env:"LOCATION_TIMEOUT, default=10s"`
}

type SessionConfig struct {
	TTL time.Duration `env:"SESSION_TTL, default=30m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=safety_gateway"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
