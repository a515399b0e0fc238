package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prabalesh/battwidget/internal/alert"
	"github.com/prabalesh/battwidget/internal/collector"
	"github.com/prabalesh/battwidget/internal/config"
)

type tickMsg time.Time

type App struct {
	widget *BatteryWidget
	popup  *Popup
	width  int
	height int
}

func NewApp(source collector.Source, cfg config.Config) *App {
	popup := NewPopup()
	widget := NewBatteryWidget(source, alert.NewPresenter(popup), WidgetOptions{
		OverlayDuration: cfg.Widget.OverlayDuration.Duration,
		AlertTimer:      cfg.Alert.Timer.Duration,
		TimeFormat:      cfg.Widget.TimeFormat,
	})

	return &App{
		widget: widget,
		popup:  popup,
	}
}

func (a *App) Init() tea.Cmd {
	// Mount may show the popup, so its timer is collected afterwards.
	mount := a.widget.Mount()
	return tea.Batch(mount, a.popup.Cmd(), a.tick())
}

// tick refreshes the clock in the info panel.
func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		if a.popup.Update(msg) {
			return a, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			a.widget.Unmount()
			return a, tea.Quit
		}
		return a, nil

	case dismissPopupMsg:
		a.popup.Update(msg)
		return a, nil

	case tickMsg:
		return a, a.tick()
	}

	cmd := a.widget.Update(msg)
	return a, tea.Batch(cmd, a.popup.Cmd())
}

// Get the height available for content (excluding title and help)
func (a *App) getContentAreaHeight() int {
	reservedHeight := 6
	return max(1, a.height-reservedHeight)
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	title := TitleStyle.Width(a.width).Render("Battery")

	content := BaseStyle.Render(a.widget.View())
	if a.popup.Active() {
		content = lipgloss.Place(a.width, a.getContentAreaHeight(),
			lipgloss.Center, lipgloss.Center, a.popup.View())
	}

	help := "q: quit"
	if a.popup.Active() {
		help = "enter/esc: dismiss • q: quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
		"",
		HelpStyle.Render(help),
	)
}
