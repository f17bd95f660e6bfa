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

	// JWTSecret validates bearer tokens minted by the identity service.
	JWTSecret string `env:"JWT_SECRET"`

	Verification VerificationConfig
	Mongo        MongoConfig
	Redis        RedisConfig
	SMTP         SMTPConfig
}

// VerificationConfig holds the email-verification token policy and the
// public base URL that verification links are built from.
type VerificationConfig struct {
	Secret  string        `env:"VERIFICATION_SECRET"`
	Expiry  time.Duration `env:"VERIFICATION_EXPIRY, default=24h"`
	BaseURL string        `env:"PUBLIC_BASE_URL,     default=http://localhost:5173"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pulsecure"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@pulsecure.io"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
