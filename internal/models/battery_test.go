package models

import (
	"math"
	"testing"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		v    float64
		want Bucket
	}{
		{0, BucketLower},
		{24.99, BucketLower},
		{25, BucketLowerToMiddle},
		{49.9, BucketLowerToMiddle},
		{50, BucketMiddle},
		{74.999, BucketMiddle},
		{75, BucketMiddleToFull},
		{99.99, BucketMiddleToFull},
		{100, BucketFull},
		{250, BucketFull},
		{-5, BucketLower},
		{math.NaN(), BucketFull},
	}

	for _, tt := range tests {
		if got := BucketFor(tt.v); got != tt.want {
			t.Errorf("BucketFor(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestBucketMonotonic(t *testing.T) {
	prev := BucketFor(0).severity()
	for v := 0.0; v <= 100; v += 0.25 {
		sev := BucketFor(v).severity()
		if sev < prev {
			t.Fatalf("severity dropped at %v: %d < %d", v, sev, prev)
		}
		prev = sev
	}
}

func TestStateFor(t *testing.T) {
	s := StateFor(Reading{Level: 0.42, Charging: false})

	if s.LevelText != "42%" {
		t.Errorf("LevelText = %q, want %q", s.LevelText, "42%")
	}
	if s.Bucket != BucketLowerToMiddle {
		t.Errorf("Bucket = %s, want lower-to-middle", s.Bucket)
	}
	if s.Icon() != IconDischarging {
		t.Errorf("Icon = %s, want discharging", s.Icon())
	}
	if !s.ShowInfoPanel() {
		t.Error("info panel hidden for supported state")
	}
	if s.ChargingSentence() != "The Battery is not charging." {
		t.Errorf("ChargingSentence = %q", s.ChargingSentence())
	}
	if s.LevelSentence() != "The current percentage of load is: 42%." {
		t.Errorf("LevelSentence = %q", s.LevelSentence())
	}
	if s.FillMode != FillForwards {
		t.Errorf("FillMode = %q, want %q", s.FillMode, FillForwards)
	}
}

func TestStateForRounding(t *testing.T) {
	// 0.57*100 is 56.99999999999999 in float64
	if got := StateFor(Reading{Level: 0.57}).LevelText; got != "57%" {
		t.Errorf("LevelText = %q, want 57%%", got)
	}
}

func TestUnsupportedState(t *testing.T) {
	s := UnsupportedState()

	if s.LevelText != "0%" || s.Bucket != BucketLower {
		t.Errorf("got %q/%s, want 0%%/lower", s.LevelText, s.Bucket)
	}
	if s.Icon() != IconUnsupported {
		t.Errorf("Icon = %s, want unsupported", s.Icon())
	}
	if s.ShowInfoPanel() {
		t.Error("info panel shown for unsupported state")
	}
}

func TestChargingIcon(t *testing.T) {
	s := StateFor(Reading{Level: 1, Charging: true})
	if s.Icon() != IconCharging {
		t.Errorf("Icon = %s, want charging", s.Icon())
	}
	if s.Bucket != BucketFull {
		t.Errorf("Bucket = %s, want full", s.Bucket)
	}
}

func TestFillHooks(t *testing.T) {
	hooks := StateFor(Reading{Level: 0.8}).FillHooks()

	want := map[string]string{
		"--animationNameKeyframe":    "battery-charge-middle-to-full",
		"--level":                    "80%",
		"--batteryAnimationFillMode": "forwards",
	}
	for k, v := range want {
		if hooks[k] != v {
			t.Errorf("hooks[%q] = %q, want %q", k, hooks[k], v)
		}
	}
}
