package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"mdflow/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	th := cfg.Theme
	if th.TextColor != "#9daab6" || th.LinkColor != "#4182eb" || th.CodeColor != "#c0c5ce" {
		t.Errorf("unexpected default colors: %+v", th)
	}
	if th.ColorFormat != common.ColorFormatBgra8unormSrgb {
		t.Errorf("ColorFormat = %q", th.ColorFormat)
	}
	if th.ScaleFactor != 1 {
		t.Errorf("ScaleFactor = %v, want 1", th.ScaleFactor)
	}
	if cfg.Interpreter.Parallel != 0 {
		t.Errorf("Parallel = %d, want 0", cfg.Interpreter.Parallel)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Reporting.Destination == "" {
		t.Error("report destination must have default")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `version: 1
theme:
  text_color: "#ffffff"
  color_format: rgba8unorm
  scale_factor: 2
interpreter:
  parallel: 4
logging:
  console:
    level: debug
  file:
    level: normal
    destination: `+filepath.ToSlash(filepath.Join(dir, "logs", "test.log"))+`
    mode: append
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Theme.TextColor != "#ffffff" {
		t.Errorf("TextColor = %q", cfg.Theme.TextColor)
	}
	// values absent in file keep defaults
	if cfg.Theme.LinkColor != "#4182eb" {
		t.Errorf("LinkColor = %q", cfg.Theme.LinkColor)
	}
	if cfg.Theme.ColorFormat != common.ColorFormatRgba8unorm || cfg.Theme.ScaleFactor != 2 {
		t.Errorf("unexpected theme: %+v", cfg.Theme)
	}
	if cfg.Interpreter.Parallel != 4 {
		t.Errorf("Parallel = %d, want 4", cfg.Interpreter.Parallel)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Mode = %q", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ntheme:\n  text_color: \"#fff\"\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: true\n"},
		{"unsupported version", "version: 2\n"},
		{"bad color", "version: 1\ntheme:\n  text_color: blue\n"},
		{"bad color format", "version: 1\ntheme:\n  color_format: rgb565\n"},
		{"zero scale", "version: 1\ntheme:\n  scale_factor: 0\n"},
		{"negative parallel", "version: 1\ninterpreter:\n  parallel: -1\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Theme.CodeColor = "#010203"

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "color_format: bgra8unorm-srgb") {
		t.Errorf("dump misses color format:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Theme != cfg.Theme || cfg2.Interpreter != cfg.Interpreter {
		t.Errorf("dump/load mismatch: got %+v, want %+v", cfg2, cfg)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		result, err := unmarshalConfig([]byte(`version: 1`), &Config{}, false)
		if err != nil {
			t.Fatalf("unmarshalConfig() error = %v", err)
		}
		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := unmarshalConfig([]byte(`invalid: [yaml`), &Config{}, false); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("unmarshalConfig() error = %v", err)
	}

	_, err = unmarshalConfig([]byte("version: 99\n"), cfg, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}
