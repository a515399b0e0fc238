package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prabalesh/battwidget/internal/alert"
)

func TestPopupTimer(t *testing.T) {
	p := NewPopup()
	p.Show(UnsupportedNotice(3 * time.Second))

	if !p.Active() {
		t.Fatal("popup not active after Show")
	}
	if p.Cmd() == nil {
		t.Fatal("no dismiss timer for a timed popup")
	}
	if p.Cmd() != nil {
		t.Error("timer armed twice for one Show")
	}

	view := p.View()
	for _, want := range []string{"Battery Information!", "Battery not supported", "Exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	p.Update(dismissPopupMsg{seq: p.seq})
	if p.Active() {
		t.Error("popup still active after its timer")
	}
}

func TestPopupStaleTimer(t *testing.T) {
	p := NewPopup()
	p.Show(alert.Options{Title: "first", Timer: time.Second})
	stale := p.seq
	p.Show(alert.Options{Title: "second", Timer: time.Second})

	p.Update(dismissPopupMsg{seq: stale})
	if !p.Active() {
		t.Error("stale timer dismissed the newer popup")
	}
}

func TestPopupConfirm(t *testing.T) {
	p := NewPopup()
	p.Show(alert.Options{Title: "x"})

	if p.Cmd() != nil {
		t.Error("untimed popup armed a timer")
	}
	if p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}) {
		t.Error("unrelated key consumed")
	}
	if !p.Update(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Error("enter not consumed")
	}
	if p.Active() {
		t.Error("popup still active after enter")
	}
	if p.View() != "" {
		t.Error("dismissed popup still renders")
	}
}
