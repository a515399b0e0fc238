// Package config loads battwidget settings from a TOML file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prabalesh/battwidget/internal/collector"
)

// Config holds all widget configuration.
type Config struct {
	Source  SourceConfig  `toml:"source"`
	Widget  WidgetConfig  `toml:"widget"`
	Alert   AlertConfig   `toml:"alert"`
	Logging LoggingConfig `toml:"logging"`
}

// SourceConfig selects where readings come from.
type SourceConfig struct {
	Kind         string   `toml:"kind"`
	SysfsRoot    string   `toml:"sysfs_root"`
	PollInterval Duration `toml:"poll_interval"`
}

// WidgetConfig controls the battery drawing.
type WidgetConfig struct {
	OverlayDuration Duration `toml:"overlay_duration"`
	TimeFormat      string   `toml:"time_format"`
}

// AlertConfig controls the unsupported-battery popup.
type AlertConfig struct {
	Timer Duration `toml:"timer"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration written as "8s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Long date and time with seconds and a 12-hour period.
const DefaultTimeFormat = "Jan 2, 2006, 3:04:05 PM"

func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Kind:         collector.KindAuto,
			SysfsRoot:    collector.DefaultSysfsRoot,
			PollInterval: Duration{collector.DefaultPollInterval},
		},
		Widget: WidgetConfig{
			OverlayDuration: Duration{8 * time.Second},
			TimeFormat:      DefaultTimeFormat,
		},
		Alert: AlertConfig{
			Timer: Duration{3 * time.Second},
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(os.TempDir(), "battwidget.log"),
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/battwidget/config.toml or its platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "battwidget", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logrus.Debugf("config file %s not found, using defaults", path)
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	for _, key := range md.Undecoded() {
		logrus.Warnf("unknown config key %q in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config file %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Source.Kind {
	case collector.KindAuto, collector.KindSysfs, collector.KindDistatus, collector.KindNone:
	default:
		return errors.Errorf("unknown source kind %q", c.Source.Kind)
	}
	if c.Source.PollInterval.Duration <= 0 {
		return errors.New("source.poll_interval must be positive")
	}
	if c.Widget.OverlayDuration.Duration <= 0 {
		return errors.New("widget.overlay_duration must be positive")
	}
	if c.Widget.TimeFormat == "" {
		return errors.New("widget.time_format must not be empty")
	}
	if c.Alert.Timer.Duration < 0 {
		return errors.New("alert.timer must not be negative")
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "logging.level")
	}
	return nil
}
