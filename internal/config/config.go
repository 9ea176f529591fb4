// Package config provides configuration management for the Gridiron Edge application.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	Provider   ProviderConfig   `mapstructure:"provider" validate:"required"`
	Roster     RosterConfig     `mapstructure:"roster" validate:"required"`
	Prediction PredictionConfig `mapstructure:"prediction" validate:"required"`
	Backtest   BacktestConfig   `mapstructure:"backtest" validate:"required"`
	Ingestion  IngestionConfig  `mapstructure:"ingestion" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// ProviderConfig represents the sports-data provider API configuration
type ProviderConfig struct {
	BaseURL        string  `mapstructure:"base_url" validate:"required,url"`
	APIKey         string  `mapstructure:"api_key"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts  int     `mapstructure:"retry_attempts" validate:"gte=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"required,gt=0"`
}

// RosterConfig represents the roster-analytics collaborator configuration
type RosterConfig struct {
	URL             string `mapstructure:"url" validate:"required,url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	Enabled         bool   `mapstructure:"enabled"`
}

// PredictionConfig represents prediction engine settings
type PredictionConfig struct {
	WeightsVersion string `mapstructure:"weights_version" validate:"required,oneof=legacy legacy-v1 enhanced enhanced-v2"`
}

// BacktestConfig represents backtest harness settings
type BacktestConfig struct {
	Seasons      []int  `mapstructure:"seasons" validate:"required,min=1"`
	MinimumGames int    `mapstructure:"minimum_games" validate:"required,gt=0"`
	Workers      int    `mapstructure:"workers" validate:"required,gt=0"`
	OutputPath   string `mapstructure:"output_path" validate:"required"`
}

// IngestionConfig represents periodic data refresh configuration
type IngestionConfig struct {
	Schedule  string `mapstructure:"schedule" validate:"required"`
	Seasons   []int  `mapstructure:"seasons" validate:"required,min=1"`
	BatchSize int    `mapstructure:"batch_size" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and health endpoint configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
