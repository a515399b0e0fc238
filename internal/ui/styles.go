package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/prabalesh/battwidget/internal/models"
)

var (
	// Base styles
	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Battery shell
	BatteryBodyStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("252")).
				Padding(0, 1).
				Align(lipgloss.Center)

	BatteryHeadStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("252")).
				Width(1).
				Height(1)

	LevelOverlayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Bold(true)

	IconStyle = lipgloss.NewStyle().
			Bold(true)

	// Info panel
	InfoPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	StatusLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// Popup
	PopupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 3).
			Align(lipgloss.Center)

	PopupTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("63")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 2)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// BucketColor is the fill color of a charge bucket.
func BucketColor(b models.Bucket) string {
	switch b {
	case models.BucketLower:
		return "196"
	case models.BucketLowerToMiddle:
		return "208"
	case models.BucketMiddle:
		return "226"
	case models.BucketMiddleToFull:
		return "118"
	default:
		return "46"
	}
}

// namedColors maps the color names accepted in alert options to terminal
// colors. Anything else is passed to lipgloss as is.
var namedColors = map[string]string{
	"red":    "196",
	"green":  "46",
	"yellow": "226",
	"blue":   "33",
	"orange": "208",
	"gray":   "245",
	"grey":   "245",
}

func resolveColor(name string) lipgloss.Color {
	if c, ok := namedColors[name]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(name)
}
