package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/prabalesh/battwidget/internal/alert"
	"github.com/prabalesh/battwidget/internal/collector"
	"github.com/prabalesh/battwidget/internal/config"
	"github.com/prabalesh/battwidget/internal/models"
)

const (
	defaultOverlayDuration = 8 * time.Second
	defaultFillWidth       = 20
	eventBuffer            = 16
)

// batteryReadyMsg carries the result of the initial fetch.
type batteryReadyMsg struct {
	handle collector.Handle
	err    error
}

// readingMsg is a change notification from subscription generation gen.
type readingMsg struct {
	gen     uint64
	event   collector.Event
	reading models.Reading
}

type hideOverlayMsg struct {
	seq uint64
}

// UnsupportedNotice is the popup shown once when no battery can be read.
func UnsupportedNotice(timer time.Duration) alert.Options {
	return alert.Options{
		Title:             "Battery Information!",
		Text:              "Battery not supported",
		Icon:              alert.IconError,
		IconColor:         "blue",
		ConfirmButtonText: "Exit",
		Timer:             timer,
	}
}

type WidgetOptions struct {
	OverlayDuration time.Duration
	AlertTimer      time.Duration
	TimeFormat      string
	Now             func() time.Time
}

// BatteryWidget draws one battery and keeps it in sync with a Source.
// All methods must be called from the bubbletea event loop.
type BatteryWidget struct {
	source collector.Source
	alerts *alert.Presenter
	opts   WidgetOptions

	ctx    context.Context
	cancel context.CancelFunc

	state   models.DisplayState
	mounted bool
	alerted bool

	// subscription state, replaced wholesale on every subscribe
	gen           uint64
	events        chan readingMsg
	done          chan struct{}
	unsubscribers []func()

	overlaySeq      uint64
	overlayDeadline time.Time

	fill progress.Model
}

func NewBatteryWidget(source collector.Source, alerts *alert.Presenter, opts WidgetOptions) *BatteryWidget {
	if opts.OverlayDuration <= 0 {
		opts.OverlayDuration = defaultOverlayDuration
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = config.DefaultTimeFormat
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	fill := progress.New(progress.WithSolidFill(BucketColor(models.BucketFull)), progress.WithoutPercentage())
	fill.Width = defaultFillWidth

	return &BatteryWidget{
		source: source,
		alerts: alerts,
		opts:   opts,
		state:  models.InitialState(),
		fill:   fill,
	}
}

// Mount checks the capability and starts the initial fetch.
func (w *BatteryWidget) Mount() tea.Cmd {
	if w.mounted {
		return nil
	}
	w.mounted = true
	w.ctx, w.cancel = context.WithCancel(context.Background())

	if !w.source.Supported() {
		w.markUnsupported()
		return nil
	}

	w.state = models.InitialState()
	ctx, source := w.ctx, w.source
	return func() tea.Msg {
		h, err := source.GetBattery(ctx)
		return batteryReadyMsg{handle: h, err: err}
	}
}

// Unmount drops every subscription and stops the source. Messages that
// arrive afterwards are ignored.
func (w *BatteryWidget) Unmount() {
	if !w.mounted {
		return
	}
	w.mounted = false
	w.unsubscribe()
	w.cancel()
}

func (w *BatteryWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case batteryReadyMsg:
		if !w.mounted {
			return nil
		}
		if msg.err != nil {
			logrus.Errorf("failed to get battery status: %v", msg.err)
			w.markUnsupported()
			return nil
		}
		w.subscribe(msg.handle)
		return tea.Batch(w.apply(msg.handle.Reading()), w.listen())

	case readingMsg:
		if !w.mounted || msg.gen != w.gen {
			return nil
		}
		logrus.Debugf("%s: level=%.2f charging=%v", msg.event, msg.reading.Level, msg.reading.Charging)
		return tea.Batch(w.apply(msg.reading), w.listen())

	case hideOverlayMsg:
		if msg.seq == w.overlaySeq {
			w.state.OverlayVisible = false
		}

	case tea.WindowSizeMsg:
		w.fill.Width = max(10, min(defaultFillWidth, msg.Width-10))
	}

	return nil
}

func (w *BatteryWidget) State() models.DisplayState {
	return w.state
}

func (w *BatteryWidget) markUnsupported() {
	w.unsubscribe()
	w.state = models.UnsupportedState()
	if w.alerted {
		return
	}
	w.alerted = true
	logrus.Warn("battery status is not supported on this host")
	notice := UnsupportedNotice(w.opts.AlertTimer)
	w.alerts.Fire(&notice)
}

func (w *BatteryWidget) subscribe(h collector.Handle) {
	w.unsubscribe()

	w.gen++
	gen := w.gen
	events := make(chan readingMsg, eventBuffer)
	done := make(chan struct{})
	w.events, w.done = events, done

	for _, ev := range collector.Events {
		ev := ev
		w.unsubscribers = append(w.unsubscribers, h.Subscribe(ev, func(r models.Reading) {
			select {
			case events <- readingMsg{gen: gen, event: ev, reading: r}:
			case <-done:
			default:
				logrus.Warnf("dropping %s notification", ev)
			}
		}))
	}
}

func (w *BatteryWidget) unsubscribe() {
	for _, fn := range w.unsubscribers {
		fn()
	}
	w.unsubscribers = nil
	if w.done != nil {
		close(w.done)
	}
	w.events, w.done = nil, nil
}

// listen waits for the next notification of the current subscription.
func (w *BatteryWidget) listen() tea.Cmd {
	events, done := w.events, w.done
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case msg := <-events:
			return msg
		case <-done:
			return nil
		}
	}
}

// apply renders a reading and re-arms the overlay hide timer.
func (w *BatteryWidget) apply(r models.Reading) tea.Cmd {
	w.state = models.StateFor(r)
	w.state.OverlayVisible = true

	w.overlaySeq++
	seq := w.overlaySeq
	w.overlayDeadline = w.opts.Now().Add(w.opts.OverlayDuration)

	return tea.Tick(w.opts.OverlayDuration, func(time.Time) tea.Msg {
		return hideOverlayMsg{seq: seq}
	})
}

func iconGlyph(i models.Icon) string {
	switch i {
	case models.IconCharging:
		return WarningStyle.Inherit(IconStyle).Render("⚡")
	case models.IconUnsupported:
		return ErrorStyle.Inherit(IconStyle).Render("✗")
	default:
		return StatusLineStyle.Inherit(IconStyle).Render("↓")
	}
}

func chargingStyle(charging bool) lipgloss.Style {
	if charging {
		return SuccessStyle
	}
	return StatusLineStyle
}

// fillFraction is the share of the bar to paint. The infinite fill mode
// sweeps the bar once per five seconds while waiting for a reading.
func (w *BatteryWidget) fillFraction() float64 {
	if w.state.FillMode == models.FillInfinite {
		return float64(w.opts.Now().Second()%5) / 4
	}
	return w.state.Level
}

func (w *BatteryWidget) View() string {
	s := w.state

	overlay := strings.Repeat(" ", len(s.LevelText))
	if s.OverlayVisible {
		overlay = LevelOverlayStyle.Render(s.LevelText)
	}

	bar := w.fill
	bar.FullColor = BucketColor(s.Bucket)

	body := BatteryBodyStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		overlay+" "+iconGlyph(s.Icon()),
		bar.ViewAs(w.fillFraction()),
	))
	battery := lipgloss.JoinHorizontal(lipgloss.Center, body, BatteryHeadStyle.Render(""))

	if !s.ShowInfoPanel() {
		return battery
	}

	info := InfoPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		TimestampStyle.Render(w.opts.Now().Format(w.opts.TimeFormat)+"."),
		chargingStyle(s.Charging).Render(s.ChargingSentence()),
		ValueStyle.Render(s.LevelSentence()),
	))

	return lipgloss.JoinVertical(lipgloss.Left, battery, "", info)
}
