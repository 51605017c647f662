package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// DBPath is the location of the embedded SQLite database file.
	DBPath string `mapstructure:"VYAPAR_DB_PATH"`

	// LogDir is created on startup and receives the dated log file.
	LogDir string `mapstructure:"VYAPAR_LOG_DIR"`

	Env string `mapstructure:"APP_ENV"` // development | production

	// TopStockLimit caps the top-stock dashboard report.
	TopStockLimit int `mapstructure:"VYAPAR_TOP_STOCK_LIMIT"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("VYAPAR_DB_PATH", "inventory.db")
	viper.SetDefault("VYAPAR_LOG_DIR", "logs")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("VYAPAR_TOP_STOCK_LIMIT", 5)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
