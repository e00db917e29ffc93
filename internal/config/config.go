package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abgdnv/bamazon/internal/config/configloader"
)

// AppName prefixes environment variables, e.g. BAMAZON_DATABASE_PASSWORD.
const AppName = "bamazon"

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	Manager  ManagerConfig  `koanf:"manager"`
}

type DatabaseConfig struct {
	// URL takes precedence over the individual connection parameters when set.
	URL      string        `koanf:"url"`
	Host     string        `koanf:"host"`
	Port     int           `koanf:"port"`
	User     string        `koanf:"user"`
	Password string        `koanf:"password"`
	Name     string        `koanf:"name"`
	SSLMode  string        `koanf:"sslmode"`
	Timeout  time.Duration `koanf:"timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type ManagerConfig struct {
	LowStock struct {
		Threshold int32 `koanf:"threshold"`
	} `koanf:"lowstock"`
}

// Defaults returns the values used when neither the config file nor the environment sets them.
func Defaults() map[string]any {
	return map[string]any{
		"database.host":    "localhost",
		"database.port":    5432,
		"database.name":    "bamazon",
		"database.sslmode": "disable",
		"database.timeout": "5s",

		"log.level":  "info",
		"log.format": "json",

		"manager.lowstock.threshold": 5,
	}
}

// Load reads the configuration from config.yaml, .env and BAMAZON_* environment variables.
func Load() (*Config, error) {
	return configloader.Load[*Config](AppName, Defaults())
}

// DSN returns the PostgreSQL connection URL.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.User != "" {
		if c.Password != "" {
			u.User = url.UserPassword(c.User, c.Password)
		} else {
			u.User = url.User(c.User)
		}
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}

func (c *DatabaseConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid database connect timeout: %v", c.Timeout)
	}
	if c.URL != "" {
		if !isValidPostgresURL(c.URL) {
			return fmt.Errorf("database URL must start with 'postgres://': %s", maskURL(c.URL))
		}
		return nil
	}
	if c.Host == "" {
		return fmt.Errorf("database host is not configured")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}
	if c.User == "" {
		return fmt.Errorf("database user is not configured")
	}
	if c.Name == "" {
		return fmt.Errorf("database name is not configured")
	}
	return nil
}

func (c *LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Level)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %q", c.Format)
	}
	return nil
}

func (c *ManagerConfig) Validate() error {
	if c.LowStock.Threshold <= 0 {
		return fmt.Errorf("invalid low stock threshold: %d", c.LowStock.Threshold)
	}
	return nil
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Manager.Validate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Database Configuration ---\n")
	b.WriteString(fmt.Sprintf("  database.dsn: %s\n", maskURL(c.Database.DSN())))
	b.WriteString(fmt.Sprintf("  database.timeout: %s\n", c.Database.Timeout))

	b.WriteString("\n--- Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  log.format: %s\n", c.Log.Format))

	b.WriteString("\n--- Manager ---\n")
	b.WriteString(fmt.Sprintf("  manager.lowstock.threshold: %d\n", c.Manager.LowStock.Threshold))

	return b.String()
}

func maskURL(url string) string {
	if url == "" {
		return "<not configured>"
	}
	// Mask the URL by replacing the username and password with "****"
	parts := strings.Split(url, "@")
	if len(parts) == 2 {
		return "****@" + parts[1]
	}
	return "****"
}

// isValidPostgresURL checks if the provided URL is a valid PostgreSQL URL
func isValidPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") ||
		strings.HasPrefix(url, "postgresql://")
}
