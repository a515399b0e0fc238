package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/prabalesh/battwidget/internal/collector"
	"github.com/prabalesh/battwidget/internal/config"
)

var version = "dev"

var (
	configPath = config.DefaultPath()
	logLevel   string
	sourceKind string
)

func setupLogger(cfg config.Config) error {
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "failed to parse log level")
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if !color.NoColor {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}
	return nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if sourceKind != "" {
		cfg.Source.Kind = sourceKind
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := setupLogger(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newSource(cfg config.Config) (collector.Source, error) {
	return collector.NewSource(cfg.Source.Kind, cfg.Source.SysfsRoot, cfg.Source.PollInterval.Duration)
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "battwidget",
		Short:         "Battery charge level and charging status in your terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWidget()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "config file path")
	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&sourceKind, "source", "s", "", "battery source (auto, sysfs, distatus, none)")

	cmd.AddCommand(
		NewStatusCommand(),
	)

	return cmd
}

func main() {
	if err := NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
