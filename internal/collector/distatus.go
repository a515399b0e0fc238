package collector

import (
	"context"
	"time"

	"github.com/distatus/battery"
	"github.com/pkg/errors"

	"github.com/prabalesh/battwidget/internal/models"
)

// DistatusSource aggregates every battery the OS reports.
type DistatusSource struct {
	Interval time.Duration
	getAll   func() ([]*battery.Battery, error)
}

func NewDistatusSource(interval time.Duration) *DistatusSource {
	return &DistatusSource{Interval: interval, getAll: battery.GetAll}
}

func (s *DistatusSource) Supported() bool {
	_, err := s.read()
	return err == nil
}

func (s *DistatusSource) GetBattery(ctx context.Context) (Handle, error) {
	r, err := s.read()
	if err != nil {
		return nil, err
	}
	h := NewPollingHandle(r, s.read, s.Interval)
	go h.Run(ctx)
	return h, nil
}

func (s *DistatusSource) read() (models.Reading, error) {
	batteries, err := s.getAll()

	var partial battery.Errors
	if err != nil && !errors.As(err, &partial) {
		return models.Reading{}, errors.Wrap(err, "failed to query batteries")
	}

	var current, full float64
	charging := false
	for i, bat := range batteries {
		if bat == nil {
			continue
		}
		var batErr error
		if i < len(partial) {
			batErr = partial[i]
		}
		usable, stateOK := usableBattery(batErr)
		if !usable || bat.Full <= 0 {
			continue
		}
		current += bat.Current
		full += bat.Full
		if stateOK && bat.State == battery.Charging {
			charging = true
		}
	}

	if full == 0 {
		return models.Reading{}, ErrNoBattery
	}

	return models.Reading{
		Level:    clampLevel(current / full),
		Charging: charging,
	}, nil
}

// usableBattery reports whether a battery with the given per-battery error
// still has a valid charge level, and whether its state can be trusted.
// Partial errors on other fields such as voltage or charge rate are ignored.
func usableBattery(err error) (usable, stateOK bool) {
	switch e := err.(type) {
	case nil:
		return true, true
	case battery.ErrPartial:
		return e.Current == nil && e.Full == nil, e.State == nil
	case *battery.ErrPartial:
		return e.Current == nil && e.Full == nil, e.State == nil
	default:
		// battery.ErrFatal and anything unknown
		return false, false
	}
}
