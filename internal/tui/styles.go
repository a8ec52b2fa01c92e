package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/shiksha/internal/chandas"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // subtitles, laghu
	ColorAccent    = lipgloss.Color("#ffe66d") // guru, selection
	ColorExtended  = lipgloss.Color("#c77dff") // pluta
	ColorMuted     = lipgloss.Color("#666666") // help text
	ColorSuccess   = lipgloss.Color("#a8e6cf")
	ColorText      = lipgloss.Color("#f1faee")
	ColorLabel     = lipgloss.Color("#a8dadc")
	ColorBg        = lipgloss.Color("#1a1a2e")
	ColorBgAlt     = lipgloss.Color("#2d3436")
	ColorBorder    = lipgloss.Color("#3d5a80")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			Margin(1, 0)

	selectedStyle = lipgloss.NewStyle().
			Background(ColorBgAlt).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

var weightStyles = map[chandas.Weight]lipgloss.Style{
	chandas.Light:    lipgloss.NewStyle().Foreground(ColorSecondary),
	chandas.Heavy:    lipgloss.NewStyle().Foreground(ColorAccent).Bold(true),
	chandas.Extended: lipgloss.NewStyle().Foreground(ColorExtended).Bold(true),
}

// weightStyle returns the style for a weight; unknown weights are unstyled.
func weightStyle(w chandas.Weight) lipgloss.Style {
	if s, ok := weightStyles[w]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
