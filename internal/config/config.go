// Package config loads service settings with viper from defaults, an
// optional config file and the environment, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config is the full service configuration.
type Config struct {
	AppPort         string
	DBDriver        string
	DatabaseDSN     string
	DBAutoMigrate   bool
	RabbitMQURL     string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// SetDefaults registers every key with its default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=catalog port=5432 sslmode=disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

// Load reads config.yaml from the working directory if it exists, then
// applies environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper builds and validates a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:         v.GetString("APP_PORT"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		DBAutoMigrate:   v.GetBool("DB_AUTO_MIGRATE"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT is not configured")
	}
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for driver %q", c.DBDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// String renders the configuration with credentials masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("\n--- Catalog Configuration ---\n")
	fmt.Fprintf(&b, "  app.port: %s\n", c.AppPort)
	fmt.Fprintf(&b, "  db.driver: %s\n", c.DBDriver)
	fmt.Fprintf(&b, "  db.dsn: %s\n", maskDSN(c.DatabaseDSN))
	fmt.Fprintf(&b, "  db.auto_migrate: %t\n", c.DBAutoMigrate)
	fmt.Fprintf(&b, "  rabbitmq.url: %s\n", maskDSN(c.RabbitMQURL))
	fmt.Fprintf(&b, "  log.level: %s\n", c.LogLevel)
	fmt.Fprintf(&b, "  log.format: %s\n", c.LogFormat)
	fmt.Fprintf(&b, "  shutdown.timeout: %s\n", c.ShutdownTimeout)
	return b.String()
}

func maskDSN(dsn string) string {
	if dsn == "" {
		return "<not configured>"
	}
	if parts := strings.Split(dsn, "@"); len(parts) == 2 {
		return "****@" + parts[1]
	}
	var masked []string
	for _, field := range strings.Fields(dsn) {
		if strings.HasPrefix(field, "password=") {
			field = "password=****"
		}
		masked = append(masked, field)
	}
	return strings.Join(masked, " ")
}
