// Package collector reads battery status from the host and turns it into
// change notifications the widget can subscribe to.
package collector

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/prabalesh/battwidget/internal/models"
)

// Event names a change notification raised by a Handle.
type Event string

const (
	ChargingChange Event = "chargingchange"
	LevelChange    Event = "levelchange"
)

// Events lists every notification a Handle raises.
var Events = []Event{ChargingChange, LevelChange}

// ErrNoBattery is returned when the host exposes no readable battery.
var ErrNoBattery = errors.New("no battery found")

// Listener receives the reading that caused a notification.
type Listener func(models.Reading)

// Source is the host battery capability.
type Source interface {
	// Supported reports whether the host can be queried at all.
	Supported() bool
	// GetBattery fetches the current reading and returns a handle that
	// raises change notifications until ctx is done.
	GetBattery(ctx context.Context) (Handle, error)
}

// Handle is a live view of one battery.
type Handle interface {
	Reading() models.Reading
	// Subscribe registers fn for ev. The returned func removes exactly
	// this registration and is safe to call more than once.
	Subscribe(ev Event, fn Listener) (unsubscribe func())
}

// Source kinds accepted by NewSource.
const (
	KindAuto     = "auto"
	KindSysfs    = "sysfs"
	KindDistatus = "distatus"
	KindNone     = "none"
)

// NewSource builds the source named by kind. "auto" prefers sysfs and
// falls back to the cross-platform reader.
func NewSource(kind, sysfsRoot string, interval time.Duration) (Source, error) {
	switch kind {
	case KindAuto, "":
		sysfs := NewSysfsSource(sysfsRoot, interval)
		if sysfs.Supported() {
			return sysfs, nil
		}
		return NewDistatusSource(interval), nil
	case KindSysfs:
		return NewSysfsSource(sysfsRoot, interval), nil
	case KindDistatus:
		return NewDistatusSource(interval), nil
	case KindNone:
		return NoneSource{}, nil
	default:
		return nil, errors.Errorf("unknown battery source %q", kind)
	}
}

// NoneSource reports no battery capability.
type NoneSource struct{}

func (NoneSource) Supported() bool { return false }

func (NoneSource) GetBattery(context.Context) (Handle, error) {
	return nil, ErrNoBattery
}
