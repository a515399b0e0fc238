package collector

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prabalesh/battwidget/internal/models"
)

// DefaultPollInterval is used when a source is built with a zero interval.
const DefaultPollInterval = 2 * time.Second

// PollingHandle turns a read function into a Handle by sampling it on an
// interval and raising a notification for each field that changed.
type PollingHandle struct {
	read     func() (models.Reading, error)
	interval time.Duration

	mutex     sync.RWMutex
	last      models.Reading
	listeners map[Event]map[uint64]Listener
	nextID    uint64
}

func NewPollingHandle(initial models.Reading, read func() (models.Reading, error), interval time.Duration) *PollingHandle {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PollingHandle{
		read:      read,
		interval:  interval,
		last:      initial,
		listeners: make(map[Event]map[uint64]Listener),
	}
}

func (h *PollingHandle) Reading() models.Reading {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.last
}

func (h *PollingHandle) Subscribe(ev Event, fn Listener) func() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	id := h.nextID
	if h.listeners[ev] == nil {
		h.listeners[ev] = make(map[uint64]Listener)
	}
	h.listeners[ev][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mutex.Lock()
			defer h.mutex.Unlock()
			delete(h.listeners[ev], id)
		})
	}
}

// ListenerCount returns the number of live registrations for ev.
func (h *PollingHandle) ListenerCount(ev Event) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.listeners[ev])
}

// Run polls until ctx is done.
func (h *PollingHandle) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Debug("battery polling stopped")
			return
		case <-ticker.C:
			h.Poll()
		}
	}
}

// Poll samples the battery once and notifies listeners of what changed.
func (h *PollingHandle) Poll() {
	r, err := h.read()
	if err != nil {
		logrus.Debugf("battery poll failed: %v", err)
		return
	}
	h.update(r)
}

func (h *PollingHandle) update(r models.Reading) {
	h.mutex.Lock()
	prev := h.last
	h.last = r

	var notify []Listener
	if prev.Charging != r.Charging {
		notify = appendListeners(notify, h.listeners[ChargingChange])
	}
	if prev.Level != r.Level {
		notify = appendListeners(notify, h.listeners[LevelChange])
	}
	h.mutex.Unlock()

	// listeners run outside the lock so they may unsubscribe
	for _, fn := range notify {
		fn(r)
	}
}

func appendListeners(dst []Listener, src map[uint64]Listener) []Listener {
	for _, fn := range src {
		dst = append(dst, fn)
	}
	return dst
}
