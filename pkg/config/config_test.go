package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DataPath != "netflix_titles.csv" {
		t.Errorf("Expected default data path, got %s", cfg.DataPath)
	}
	if cfg.Sentinel != "Unknown" {
		t.Errorf("Expected Unknown sentinel, got %s", cfg.Sentinel)
	}
	if cfg.TopN != 10 || cfg.DurationTopN != 20 {
		t.Errorf("Expected top 10/20, got %d/%d", cfg.TopN, cfg.DurationTopN)
	}
	if cfg.Display.Mode != DisplayBrowser {
		t.Errorf("Expected browser display, got %s", cfg.Display.Mode)
	}
	if cfg.Dashboard.ListenAddr != "127.0.0.1:8501" || cfg.Dashboard.DefaultYearFrom != 2010 {
		t.Errorf("Unexpected dashboard config %+v", cfg.Dashboard)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("EDA_SENTINEL", "Desconhecido")
	t.Setenv("EDA_TOP_N", "5")
	t.Setenv("EDA_DISPLAY", "NONE")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Sentinel != "Desconhecido" {
		t.Errorf("Expected Desconhecido, got %s", cfg.Sentinel)
	}
	if cfg.TopN != 5 {
		t.Errorf("Expected 5, got %d", cfg.TopN)
	}
	if cfg.Display.Mode != DisplayNone {
		t.Errorf("Expected none, got %s", cfg.Display.Mode)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("EDA_DATA_PATH=/data/titles.csv\nEDA_TABLE_ROW_LIMIT=50\n"), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("EDA_DATA_PATH")
		os.Unsetenv("EDA_TABLE_ROW_LIMIT")
	})

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DataPath != "/data/titles.csv" {
		t.Errorf("Expected data path from env file, got %s", cfg.DataPath)
	}
	if cfg.Dashboard.TableRowLimit != 50 {
		t.Errorf("Expected row limit 50, got %d", cfg.Dashboard.TableRowLimit)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"EDA_TOP_N":           "0",
		"EDA_DISPLAY":         "window",
		"EDA_TABLE_ROW_LIMIT": "-1",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env")); err == nil {
				t.Errorf("Expected error for %s=%s", key, value)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	if _, err := NewLogger(cfg); err != nil {
		t.Errorf("Expected json logger, got %v", err)
	}

	cfg.LogFormat = "xml"
	if _, err := NewLogger(cfg); err == nil {
		t.Error("Expected error for unknown format")
	}

	cfg = &Config{LogLevel: "loud", LogFormat: "console"}
	if _, err := NewLogger(cfg); err == nil {
		t.Error("Expected error for unknown level")
	}
}
