package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/prabalesh/battwidget/internal/alert"
	"github.com/prabalesh/battwidget/internal/collector"
	"github.com/prabalesh/battwidget/internal/models"
)

type countingRenderer struct {
	n int
}

func (r *countingRenderer) Show(alert.Options) { r.n++ }

func TestReadStatus(t *testing.T) {
	failing := collector.NewFakeSource(models.Reading{})
	failing.Err = errors.New("denied")

	tests := []struct {
		name       string
		source     collector.Source
		wantText   string
		wantAlerts int
	}{
		{"supported", collector.NewFakeSource(models.Reading{Level: 0.42}), "42%", 0},
		{"unsupported", collector.NoneSource{}, "0%", 1},
		{"fetch error", failing, "0%", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &countingRenderer{}
			s := readStatus(context.Background(), tt.source, alert.NewPresenter(r), 3*time.Second)
			if s.LevelText != tt.wantText {
				t.Errorf("LevelText = %q, want %q", s.LevelText, tt.wantText)
			}
			if r.n != tt.wantAlerts {
				t.Errorf("alerts = %d, want %d", r.n, tt.wantAlerts)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	color.NoColor = true
	s := models.StateFor(models.Reading{Level: 0.42})

	var buf bytes.Buffer
	writeText(&buf, statusReport{Time: "Oct 19, 2026, 2:30:05 PM", State: s})

	out := buf.String()
	for _, want := range []string{
		"Oct 19, 2026, 2:30:05 PM.",
		"The Battery is not charging.",
		"The current percentage of load is: 42%.",
		"Bucket: lower-to-middle",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	s := models.StateFor(models.Reading{Level: 0.9, Charging: true})

	var buf bytes.Buffer
	if err := writeJSON(&buf, statusReport{State: s, Icon: s.Icon(), Fill: s.FillHooks()}); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["icon"] != "charging" {
		t.Errorf("icon = %v, want charging", got["icon"])
	}
	state := got["state"].(map[string]any)
	if state["bucket"] != "middle-to-full" {
		t.Errorf("bucket = %v, want middle-to-full", state["bucket"])
	}
}
