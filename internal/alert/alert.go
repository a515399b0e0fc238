// Package alert is a guarded front for popup renderers. Calls with no
// content never reach the renderer.
package alert

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Icon selects the glyph shown at the top of the popup.
type Icon string

const (
	IconSuccess  Icon = "success"
	IconError    Icon = "error"
	IconWarning  Icon = "warning"
	IconInfo     Icon = "info"
	IconQuestion Icon = "question"
)

// Options describe one popup.
type Options struct {
	Title             string
	Text              string
	Icon              Icon
	IconColor         string
	ConfirmButtonText string
	// Timer auto-dismisses the popup. Zero waits for confirmation.
	Timer time.Duration
}

// IsZero reports whether no field is set.
func (o Options) IsZero() bool {
	return o == Options{}
}

// Renderer draws popups.
type Renderer interface {
	Show(Options)
}

// Presenter forwards non-empty options to a Renderer.
type Presenter struct {
	renderer Renderer
}

func NewPresenter(r Renderer) *Presenter {
	return &Presenter{renderer: r}
}

// Fire shows opts unless it is nil or empty.
func (p *Presenter) Fire(opts *Options) {
	if p == nil || p.renderer == nil || opts == nil || opts.IsZero() {
		return
	}
	p.renderer.Show(*opts)
}

// LogRenderer writes popups to the log for headless use.
type LogRenderer struct {
	Logger logrus.FieldLogger
}

func (r LogRenderer) Show(o Options) {
	logger := r.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	entry := logger.WithFields(logrus.Fields{
		"title": o.Title,
		"icon":  o.Icon,
	})
	switch o.Icon {
	case IconError:
		entry.Error(o.Text)
	case IconWarning:
		entry.Warn(o.Text)
	default:
		entry.Info(o.Text)
	}
}
