package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prabalesh/battwidget/internal/ui"
)

func runWidget() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// the terminal belongs to the renderer, so logs go to a file
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to open log file %s", cfg.Logging.File)
	}
	defer f.Close()
	logrus.SetOutput(f)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	source, err := newSource(cfg)
	if err != nil {
		return err
	}
	logrus.WithField("source", cfg.Source.Kind).Info("starting battery widget")

	p := tea.NewProgram(ui.NewApp(source, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running program")
	}
	return nil
}
