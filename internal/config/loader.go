package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from a YAML file and environment variables.
// Environment variable placeholders (${VAR}) in the file are expanded; a
// missing file falls back to defaults plus environment overrides.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("HOOPSEDGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "hoopsedge")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("engine.minimum_edge_percent", 3.0)
	v.SetDefault("engine.kelly_fraction", 0.25)
	v.SetDefault("engine.bankroll", 1000.0)

	v.SetDefault("training.folds", 5)
	v.SetDefault("training.learning_rate", 0.1)
	v.SetDefault("training.iterations", 600)
	v.SetDefault("training.l2_penalty", 0.001)

	v.SetDefault("artifact.path", "models/betting_model.json")

	v.SetDefault("quote_db.host", "localhost")
	v.SetDefault("quote_db.port", 5432)
	v.SetDefault("quote_db.name", "hoopsedge")
	v.SetDefault("quote_db.user", "hoopsedge")
	v.SetDefault("quote_db.ssl_mode", "disable")
	v.SetDefault("quote_db.max_connections", 4)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")
}
