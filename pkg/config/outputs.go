// pkg/config/outputs.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Display modes for the static report
const (
	DisplayBrowser = "browser"
	DisplayNone    = "none"
)

// DisplayConfig controls how the report shows its charts
type DisplayConfig struct {
	Mode string // browser opens each chart and waits; none only logs them
}

// DashboardConfig holds the interactive dashboard parameters
type DashboardConfig struct {
	ListenAddr      string
	TableRowLimit   int
	DefaultYearFrom int
}

// LoadDisplayConfig reads the display settings
func LoadDisplayConfig(v *viper.Viper) *DisplayConfig {
	return &DisplayConfig{
		Mode: strings.ToLower(strings.TrimSpace(v.GetString("display"))),
	}
}

// LoadDashboardConfig reads the dashboard settings
func LoadDashboardConfig(v *viper.Viper) *DashboardConfig {
	return &DashboardConfig{
		ListenAddr:      v.GetString("listen_addr"),
		TableRowLimit:   v.GetInt("table_row_limit"),
		DefaultYearFrom: v.GetInt("default_year_from"),
	}
}

// Validate checks the display mode
func (c *DisplayConfig) Validate() error {
	switch c.Mode {
	case DisplayBrowser, DisplayNone:
		return nil
	default:
		return fmt.Errorf("invalid display mode: %q", c.Mode)
	}
}

// Validate checks the dashboard settings
func (c *DashboardConfig) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.TableRowLimit < 0 {
		return fmt.Errorf("table row limit cannot be negative")
	}
	return nil
}
