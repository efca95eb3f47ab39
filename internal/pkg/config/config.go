package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration, loaded once in main and
// passed by injection. No other code reads the environment.
type Config struct {
	Port            string `env:"PORT,              default=8080"`
	Env             string `env:"ENV,               default=development"`
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=15"`
	LogLevel        string `env:"LOG_LEVEL,         default=info"`
	AuditWorkers    int    `env:"AUDIT_WORKERS,     default=4"`

	Mongo MongoConfig
	Redis RedisConfig
	Docs  DocsConfig
	Seed  SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=roster_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DocsConfig holds the HTTP Basic credentials guarding the generated API docs.
type DocsConfig struct {
	Username string `env:"DOCS_USERNAME, default=docs"`
	Password string `env:"DOCS_PASSWORD, default=docs123"`
}

// SeedConfig holds the bootstrap admin account created by cmd/seed.
type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@hospital.local"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=password"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
