// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key (EDA_DATA_PATH, ...)
const EnvPrefix = "EDA"

// Config represents the application configuration
type Config struct {
	// Input
	DataPath string

	// Cleaning
	Sentinel string

	// Aggregation
	TopN         int
	DurationTopN int

	// Outputs
	Display   *DisplayConfig
	Dashboard *DashboardConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from the environment, reading envFile first
// when it exists. An empty envFile means ".env".
func LoadConfig(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := newViper()

	cfg := &Config{
		DataPath:     v.GetString("data_path"),
		Sentinel:     v.GetString("sentinel"),
		TopN:         v.GetInt("top_n"),
		DurationTopN: v.GetInt("duration_top_n"),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
	}

	cfg.Display = LoadDisplayConfig(v)
	cfg.Dashboard = LoadDashboardConfig(v)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return errors.New("data path is required")
	}

	if c.Sentinel == "" {
		return errors.New("sentinel cannot be empty")
	}

	if c.TopN <= 0 {
		return errors.New("top n must be positive")
	}

	if c.DurationTopN <= 0 {
		return errors.New("duration top n must be positive")
	}

	if c.Display == nil {
		return errors.New("display configuration is required")
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}

	if c.Dashboard == nil {
		return errors.New("dashboard configuration is required")
	}
	return c.Dashboard.Validate()
}

func newViper() *viper.Viper {
	v := viper.New()

	// Default values
	v.SetDefault("data_path", "netflix_titles.csv")
	v.SetDefault("sentinel", "Unknown")
	v.SetDefault("top_n", 10)
	v.SetDefault("duration_top_n", 20)
	v.SetDefault("display", DisplayBrowser)
	v.SetDefault("listen_addr", "127.0.0.1:8501")
	v.SetDefault("table_row_limit", 1000)
	v.SetDefault("default_year_from", 2010)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadEnvFile loads KEY=VALUE pairs without overriding the real environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
