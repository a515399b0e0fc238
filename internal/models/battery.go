package models

import (
	"fmt"
	"math"
)

// Reading is a snapshot of the battery as reported by a source.
type Reading struct {
	Level    float64 `json:"level"` // fraction in [0,1]
	Charging bool    `json:"charging"`
}

// Percent returns the level scaled to 0..100.
func (r Reading) Percent() float64 {
	return r.Level * 100
}

// Bucket is the visual charge-level category of a reading.
type Bucket int

const (
	BucketFull Bucket = iota
	BucketLower
	BucketLowerToMiddle
	BucketMiddle
	BucketMiddleToFull
)

func (b Bucket) String() string {
	switch b {
	case BucketLower:
		return "lower"
	case BucketLowerToMiddle:
		return "lower-to-middle"
	case BucketMiddle:
		return "middle"
	case BucketMiddleToFull:
		return "middle-to-full"
	default:
		return "full"
	}
}

// Keyframe is the animation name the render layer binds the charge fill to.
func (b Bucket) Keyframe() string {
	return "battery-charge-" + b.String()
}

// severity orders buckets from emptiest to fullest.
func (b Bucket) severity() int {
	switch b {
	case BucketLower:
		return 0
	case BucketLowerToMiddle:
		return 1
	case BucketMiddle:
		return 2
	case BucketMiddleToFull:
		return 3
	default:
		return 4
	}
}

func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// BucketFor maps a percentage to its bucket. Anything outside the four
// half-open intervals, NaN included, lands in BucketFull.
func BucketFor(v float64) Bucket {
	switch {
	case v < 25:
		return BucketLower
	case v >= 25 && v < 50:
		return BucketLowerToMiddle
	case v >= 50 && v < 75:
		return BucketMiddle
	case v >= 75 && v < 100:
		return BucketMiddleToFull
	default:
		return BucketFull
	}
}

// Fill modes for the charge animation.
const (
	FillInfinite = "infinite"
	FillForwards = "forwards"
)

// Icon is the glyph drawn inside the battery body.
type Icon int

const (
	IconDischarging Icon = iota
	IconCharging
	IconUnsupported
)

func (i Icon) String() string {
	switch i {
	case IconCharging:
		return "charging"
	case IconUnsupported:
		return "unsupported"
	default:
		return "discharging"
	}
}

func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// DisplayState is everything the widget needs to draw itself.
type DisplayState struct {
	LevelText      string  `json:"level_text"`
	Level          float64 `json:"level"`
	Bucket         Bucket  `json:"bucket"`
	Charging       bool    `json:"charging"`
	OverlayVisible bool    `json:"overlay_visible"`
	Supported      bool    `json:"supported"`
	FillMode       string  `json:"fill_mode"`
}

// InitialState is the state of a supported widget before its first reading.
func InitialState() DisplayState {
	return DisplayState{
		LevelText: "0%",
		Bucket:    BucketFull,
		Supported: true,
		FillMode:  FillInfinite,
	}
}

// UnsupportedState is the fallback used when no battery can be queried.
func UnsupportedState() DisplayState {
	return DisplayState{
		LevelText: "0%",
		Bucket:    BucketLower,
		Supported: false,
		FillMode:  FillForwards,
	}
}

// StateFor derives the display state of a supported battery reading.
// The overlay flag is left to the caller.
func StateFor(r Reading) DisplayState {
	v := r.Percent()
	return DisplayState{
		LevelText: FormatPercent(v),
		Level:     r.Level,
		Bucket:    BucketFor(v),
		Charging:  r.Charging,
		Supported: true,
		FillMode:  FillForwards,
	}
}

// FormatPercent renders a percentage rounded to a whole number.
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}

// Icon returns the glyph to draw for the state.
func (s DisplayState) Icon() Icon {
	switch {
	case !s.Supported:
		return IconUnsupported
	case s.Charging:
		return IconCharging
	default:
		return IconDischarging
	}
}

// ShowInfoPanel reports whether the textual info panel is drawn.
func (s DisplayState) ShowInfoPanel() bool {
	return s.Supported
}

// ChargingSentence is the info panel line describing the charging status.
func (s DisplayState) ChargingSentence() string {
	if s.Charging {
		return "The Battery is charging."
	}
	return "The Battery is not charging."
}

// LevelSentence is the info panel line carrying the percentage.
func (s DisplayState) LevelSentence() string {
	return fmt.Sprintf("The current percentage of load is: %s.", s.LevelText)
}

// FillHooks are the named properties the render layer binds the charge
// animation to.
func (s DisplayState) FillHooks() map[string]string {
	return map[string]string{
		"--animationNameKeyframe":    s.Bucket.Keyframe(),
		"--level":                    s.LevelText,
		"--batteryAnimationFillMode": s.FillMode,
	}
}
