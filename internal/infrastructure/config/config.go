package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "KELIMO"

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Progress ProgressConfig `mapstructure:"progress"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	HTTPPort       int      `mapstructure:"http_port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	DSN          string `mapstructure:"dsn"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	LogSQL       bool   `mapstructure:"log_sql"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ProgressConfig controls how learning statistics are computed.
type ProgressConfig struct {
	Timezone    string `mapstructure:"timezone"`
	RecentGames int    `mapstructure:"recent_games"`
}

// AuthConfig holds bearer token verification and login handoff settings.
type AuthConfig struct {
	JWTSecret   string        `mapstructure:"jwt_secret"`
	RedirectTTL time.Duration `mapstructure:"redirect_ttl"`
	// AllowedReturnURLs lists bare schemes ("exp") or exact origins ("https://app.example.com").
	AllowedReturnURLs []string `mapstructure:"allowed_return_urls"`
}

// RedisConfig points at the cache used for login handoff state. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Load reads configuration from .env, an optional config file and environment variables.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.GetViper()
	// An explicit file set through --config skips the search paths.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set default values
	setDefaults(v)

	// Enable reading from environment variables
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "kelimo")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.log_sql", false)
	v.SetDefault("database.max_open_conns", 10)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("progress.timezone", "UTC")
	v.SetDefault("progress.recent_games", 10)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.redirect_ttl", "5m")
	v.SetDefault("auth.allowed_return_urls", []string{"exp", "kelimo"})

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

// Validate checks values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	if _, err := c.DatabaseDriver(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("invalid server.http_port %d", c.Server.HTTPPort)
	}
	return nil
}

// DatabaseDriver returns the normalized database/sql driver name.
func (c *Config) DatabaseDriver() (string, error) {
	driver := strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch driver {
	case "", "postgres", "postgresql":
		return "postgres", nil
	case "pgx", "mysql":
		return driver, nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DatabaseURL returns the connection string for the configured driver. An explicit dsn wins.
func (c *Config) DatabaseURL() (string, error) {
	if dsn := strings.TrimSpace(c.Database.DSN); dsn != "" {
		return dsn, nil
	}
	driver, err := c.DatabaseDriver()
	if err != nil {
		return "", err
	}

	switch driver {
	case "postgres", "pgx":
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.Database.User, c.Database.Password),
			Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
			Path:     "/" + c.Database.Name,
			RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
		}
		return u.String(), nil
	case "mysql":
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = c.Database.User
		mysqlCfg.Passwd = c.Database.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
		mysqlCfg.DBName = c.Database.Name
		mysqlCfg.ParseTime = true
		mysqlCfg.Loc = time.UTC
		return mysqlCfg.FormatDSN(), nil
	case "sqlite3":
		return "", errors.New("database.dsn is required for sqlite3")
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Location resolves progress.timezone; calendar-day statistics use it.
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Progress.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid progress.timezone %q: %w", name, err)
	}
	return loc, nil
}
