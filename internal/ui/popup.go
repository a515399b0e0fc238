package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/prabalesh/battwidget/internal/alert"
)

type dismissPopupMsg struct {
	seq uint64
}

// Popup is a modal alert.Renderer. Show arms it; the owning model must
// pass the result of Cmd back to bubbletea so the auto-dismiss fires.
type Popup struct {
	active *alert.Options
	seq    uint64
	armed  bool
}

func NewPopup() *Popup {
	return &Popup{}
}

func (p *Popup) Show(o alert.Options) {
	p.active = &o
	p.seq++
	p.armed = true
	logrus.Debugf("showing popup %q", o.Title)
}

func (p *Popup) Active() bool {
	return p.active != nil
}

func (p *Popup) Dismiss() {
	p.active = nil
	p.armed = false
}

// Cmd returns the auto-dismiss timer for a popup shown since the last call.
func (p *Popup) Cmd() tea.Cmd {
	if !p.armed {
		return nil
	}
	p.armed = false
	if p.active == nil || p.active.Timer <= 0 {
		return nil
	}
	seq := p.seq
	return tea.Tick(p.active.Timer, func(time.Time) tea.Msg {
		return dismissPopupMsg{seq: seq}
	})
}

// Update reports whether msg was consumed by the popup.
func (p *Popup) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case dismissPopupMsg:
		if msg.seq == p.seq {
			p.Dismiss()
		}
		return true
	case tea.KeyMsg:
		if !p.Active() {
			return false
		}
		switch msg.String() {
		case "enter", "esc", " ":
			p.Dismiss()
			return true
		}
	}
	return false
}

func popupIcon(i alert.Icon) string {
	switch i {
	case alert.IconSuccess:
		return "✓"
	case alert.IconError:
		return "✗"
	case alert.IconWarning:
		return "!"
	case alert.IconQuestion:
		return "?"
	case alert.IconInfo:
		return "i"
	default:
		return ""
	}
}

func (p *Popup) View() string {
	if p.active == nil {
		return ""
	}
	o := p.active

	var lines []string
	if glyph := popupIcon(o.Icon); glyph != "" {
		iconStyle := IconStyle
		if o.IconColor != "" {
			iconStyle = iconStyle.Foreground(resolveColor(o.IconColor))
		}
		lines = append(lines, iconStyle.Render(glyph), "")
	}
	if o.Title != "" {
		lines = append(lines, PopupTitleStyle.Render(o.Title))
	}
	if o.Text != "" {
		lines = append(lines, o.Text)
	}

	button := o.ConfirmButtonText
	if button == "" {
		button = "OK"
	}
	lines = append(lines, "", ButtonStyle.Render(button))

	return PopupStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
