package colorstore

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, loaded from the environment.
type Config struct {
	// TableName is the DynamoDB table backing the record store.
	TableName string `env:"TABLE_NAME,required,notEmpty"`
	// TenantIndexName is the GSI keyed on the tenantId attribute.
	TenantIndexName string `env:"TENANT_INDEX_NAME" envDefault:"TenantIndex"`

	// ListenAddr is the HTTP listen address for the gateway.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":3000"`
	// WebsiteURL is the allowed CORS origin.
	WebsiteURL string `env:"WEBSITE_URL"`

	// TenantRoleARN is the IAM role assumed per tenant for data-plane
	// isolation. Empty disables the credential broker and the process
	// talks to the table with its own credentials.
	TenantRoleARN string `env:"TENANT_ROLE_ARN"`
	// TenantSessionDuration bounds the lifetime of brokered credentials.
	TenantSessionDuration time.Duration `env:"TENANT_SESSION_DURATION" envDefault:"15m"`

	// LogLevel is a zerolog level string (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
