// Package config provides configuration management for the hoopsedge
// engine. Values are loaded once and passed into constructors explicitly.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Engine   EngineConfig   `mapstructure:"engine" validate:"required"`
	Training TrainingConfig `mapstructure:"training" validate:"required"`
	Artifact ArtifactConfig `mapstructure:"artifact" validate:"required"`
	QuoteDB  DatabaseConfig `mapstructure:"quote_db"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EngineConfig represents edge detection and stake sizing parameters
type EngineConfig struct {
	MinimumEdgePercent float64 `mapstructure:"minimum_edge_percent" validate:"gte=0"`
	KellyFraction      float64 `mapstructure:"kelly_fraction" validate:"gt=0,lte=1"`
	Bankroll           float64 `mapstructure:"bankroll" validate:"gte=0"`
}

// TrainingConfig represents training pipeline parameters
type TrainingConfig struct {
	Folds        int     `mapstructure:"folds" validate:"required,gte=2"`
	LearningRate float64 `mapstructure:"learning_rate" validate:"gt=0"`
	Iterations   int     `mapstructure:"iterations" validate:"gt=0"`
	L2Penalty    float64 `mapstructure:"l2_penalty" validate:"gte=0"`
}

// ArtifactConfig represents the model artifact location
type ArtifactConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// DatabaseConfig represents the odds quote database connection
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path    string `mapstructure:"path"`
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetQuoteDatabaseDSN returns a PostgreSQL DSN for the odds quote store
func (c *Config) GetQuoteDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.QuoteDB.User, c.QuoteDB.Password, c.QuoteDB.Host, c.QuoteDB.Port, c.QuoteDB.Name, c.QuoteDB.SSLMode,
	)
}
