package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := LoadConfig(tmpDir)
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{
		Version:     "1",
		DataDir:     "fixtures",
		DefaultMode: "multiple",
	}
	if err := SaveConfig(tmpDir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.DataDir != "fixtures" {
		t.Errorf("expected data_dir 'fixtures', got %q", loaded.DataDir)
	}
	if loaded.DefaultMode != "multiple" {
		t.Errorf("expected default_mode 'multiple', got %q", loaded.DefaultMode)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	adventDir := filepath.Join(tmpDir, ".advent")
	if err := os.MkdirAll(adventDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(adventDir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(tmpDir)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestInputPath(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		day      string
		explicit string
		expected string
	}{
		{
			name:     "explicit path wins",
			cfg:      &Config{DataDir: "fixtures"},
			day:      "day02",
			explicit: "/tmp/input.txt",
			expected: "/tmp/input.txt",
		},
		{
			name:     "configured data dir",
			cfg:      &Config{DataDir: "fixtures"},
			day:      "day02",
			expected: filepath.Join("fixtures", "day02", "input.txt"),
		},
		{
			name:     "default data dir",
			cfg:      &Config{},
			day:      "day01",
			expected: filepath.Join("data", "day01", "input.txt"),
		},
		{
			name:     "nil config",
			cfg:      nil,
			day:      "day03",
			expected: filepath.Join("data", "day03", "input.txt"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.InputPath(tt.day, tt.explicit)
			if got != tt.expected {
				t.Errorf("InputPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMode(t *testing.T) {
	cfg := &Config{DefaultMode: "multiple"}
	if got := cfg.Mode("two"); got != "two" {
		t.Errorf("explicit mode should win, got %q", got)
	}
	if got := cfg.Mode(""); got != "multiple" {
		t.Errorf("expected configured default, got %q", got)
	}
	var nilCfg *Config
	if got := nilCfg.Mode(""); got != "" {
		t.Errorf("expected empty mode for nil config, got %q", got)
	}
}
