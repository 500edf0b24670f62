package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

// Styles groups the lipgloss styles used for step headers.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Dim      lipgloss.Style
	BarFull  lipgloss.Style
	BarEmpty lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		Subtitle: lipgloss.NewStyle().Foreground(colorDim),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		Dim:      lipgloss.NewStyle().Foreground(colorDim),
		BarFull:  lipgloss.NewStyle().Foreground(colorGreen),
		BarEmpty: lipgloss.NewStyle().Foreground(colorDim),
	}
}

const barWidth = 30

func (s Styles) progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := barWidth * percent / 100
	return s.BarFull.Render(strings.Repeat("█", filled)) +
		s.BarEmpty.Render(strings.Repeat("░", barWidth-filled))
}
