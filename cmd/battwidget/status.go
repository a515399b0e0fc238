package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/prabalesh/battwidget/internal/alert"
	"github.com/prabalesh/battwidget/internal/collector"
	"github.com/prabalesh/battwidget/internal/models"
	"github.com/prabalesh/battwidget/internal/ui"
)

const statusTimeout = 10 * time.Second

type statusReport struct {
	Time  string              `json:"time"`
	State models.DisplayState `json:"state"`
	Icon  models.Icon         `json:"icon"`
	Fill  map[string]string   `json:"fill"`
}

func NewStatusCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current battery reading once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, err := newSource(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), statusTimeout)
			defer cancel()

			presenter := alert.NewPresenter(alert.LogRenderer{})
			state := readStatus(ctx, source, presenter, cfg.Alert.Timer.Duration)

			report := statusReport{
				Time:  time.Now().Format(cfg.Widget.TimeFormat),
				State: state,
				Icon:  state.Icon(),
				Fill:  state.FillHooks(),
			}
			if asJSON {
				return writeJSON(os.Stdout, report)
			}
			writeText(os.Stdout, report)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print the status as JSON")

	return cmd
}

// readStatus fetches one reading. Any failure is reported through the
// presenter and yields the unsupported state.
func readStatus(ctx context.Context, source collector.Source, presenter *alert.Presenter, alertTimer time.Duration) models.DisplayState {
	notice := ui.UnsupportedNotice(alertTimer)
	if !source.Supported() {
		presenter.Fire(&notice)
		return models.UnsupportedState()
	}

	h, err := source.GetBattery(ctx)
	if err != nil {
		presenter.Fire(&notice)
		return models.UnsupportedState()
	}
	return models.StateFor(h.Reading())
}

func writeJSON(w io.Writer, report statusReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "failed to encode status")
	}
	return nil
}

func writeText(w io.Writer, report statusReport) {
	s := report.State
	if !s.Supported {
		fmt.Fprintln(w, color.New(color.FgRed, color.Bold).Sprint("Battery not supported"))
		return
	}

	levelColor := color.New(color.FgGreen, color.Bold)
	switch s.Bucket {
	case models.BucketLower:
		levelColor = color.New(color.FgRed, color.Bold)
	case models.BucketLowerToMiddle, models.BucketMiddle:
		levelColor = color.New(color.FgYellow, color.Bold)
	}

	fmt.Fprintf(w, "%s.\n", report.Time)
	fmt.Fprintln(w, color.BlueString(s.ChargingSentence()))
	fmt.Fprintf(w, "The current percentage of load is: %s.\n", levelColor.Sprint(s.LevelText))
	fmt.Fprintf(w, "Bucket: %s\n", s.Bucket)
}
