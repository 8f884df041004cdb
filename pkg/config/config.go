package config

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig  `envconfig:"SERVER"`
	Storage StorageConfig `envconfig:"STORAGE"`
	View    ViewConfig    `envconfig:"VIEW"`
	Log     LogConfig     `envconfig:"LOG"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development staging production"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
	MaxUploadBytes  int64         `envconfig:"MAX_UPLOAD_BYTES" default:"5242880" validate:"gt=0"`
}

// StorageConfig selects where uploaded images end up
type StorageConfig struct {
	Type             string        `envconfig:"TYPE" default:"inline" validate:"oneof=inline minio"` // "inline" or "minio"
	Endpoint         string        `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKeyID      string        `envconfig:"ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey  string        `envconfig:"SECRET_KEY" default:"minioadmin"`
	BucketName       string        `envconfig:"BUCKET" default:"meet-mock"`
	UseSSL           bool          `envconfig:"USE_SSL" default:"false"`
	PresignExpiry    time.Duration `envconfig:"PRESIGN_EXPIRY" default:"24h" validate:"gt=0"`
	BootstrapTimeout time.Duration `envconfig:"BOOTSTRAP_TIMEOUT" default:"30s" validate:"gt=0"`
}

// ViewConfig holds the screen defaults
type ViewConfig struct {
	ShowConfig    bool          `envconfig:"SHOW_CONFIG" default:"true"`
	NoticeTTL     time.Duration `envconfig:"NOTICE_TTL" default:"3s" validate:"gt=0"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m" validate:"gt=0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Storage.Type == "minio" && c.Storage.Endpoint == "" {
		return fmt.Errorf("STORAGE_ENDPOINT is required when STORAGE_TYPE=minio")
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
