package collector

import (
	"context"
	"sync"

	"github.com/prabalesh/battwidget/internal/models"
)

// FakeSource is a test double with a scripted battery.
type FakeSource struct {
	// Unsupported makes Supported report false.
	Unsupported bool
	// Err, if set, is returned by GetBattery.
	Err error
	// Initial is the reading the handle starts with.
	Initial models.Reading

	mutex  sync.Mutex
	handle *FakeHandle
	calls  int
}

func NewFakeSource(initial models.Reading) *FakeSource {
	return &FakeSource{Initial: initial}
}

func (f *FakeSource) Supported() bool {
	return !f.Unsupported
}

func (f *FakeSource) GetBattery(ctx context.Context) (Handle, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.calls++
	if f.Err != nil {
		return nil, f.Err
	}
	if f.handle == nil {
		f.handle = newFakeHandle(f.Initial)
	}
	return f.handle, nil
}

// Handle returns the handle given out by GetBattery, or nil.
func (f *FakeSource) Handle() *FakeHandle {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.handle
}

// Calls counts GetBattery invocations.
func (f *FakeSource) Calls() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls
}

// FakeHandle raises notifications when Set is called.
type FakeHandle struct {
	*PollingHandle

	mutex   sync.Mutex
	current models.Reading
}

func newFakeHandle(initial models.Reading) *FakeHandle {
	fh := &FakeHandle{current: initial}
	fh.PollingHandle = NewPollingHandle(initial, fh.get, 0)
	return fh
}

func (f *FakeHandle) get() (models.Reading, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.current, nil
}

// Set changes the battery and raises the matching notifications.
func (f *FakeHandle) Set(r models.Reading) {
	f.mutex.Lock()
	f.current = r
	f.mutex.Unlock()
	f.Poll()
}
