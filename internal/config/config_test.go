package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Widget.OverlayDuration.Duration != 8*time.Second {
		t.Errorf("Widget.OverlayDuration = %v, want 8s", cfg.Widget.OverlayDuration)
	}
	if cfg.Alert.Timer.Duration != 3*time.Second {
		t.Errorf("Alert.Timer = %v, want 3s", cfg.Alert.Timer)
	}
	if cfg.Source.Kind != "auto" {
		t.Errorf("Source.Kind = %q, want %q", cfg.Source.Kind, "auto")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load of missing file = %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[source]
kind = "sysfs"
poll_interval = "500ms"

[widget]
overlay_duration = "10s"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.Kind != "sysfs" {
		t.Errorf("Source.Kind = %q, want sysfs", cfg.Source.Kind)
	}
	if cfg.Source.PollInterval.Duration != 500*time.Millisecond {
		t.Errorf("Source.PollInterval = %v, want 500ms", cfg.Source.PollInterval)
	}
	if cfg.Widget.OverlayDuration.Duration != 10*time.Second {
		t.Errorf("Widget.OverlayDuration = %v, want 10s", cfg.Widget.OverlayDuration)
	}
	if cfg.Widget.TimeFormat != DefaultTimeFormat {
		t.Errorf("Widget.TimeFormat = %q, want default", cfg.Widget.TimeFormat)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad kind", "[source]\nkind = \"usb\"\n"},
		{"bad duration", "[widget]\noverlay_duration = \"soon\"\n"},
		{"zero overlay", "[widget]\noverlay_duration = \"0s\"\n"},
		{"bad level", "[logging]\nlevel = \"loud\"\n"},
		{"not toml", "this is = = not toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
