package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

// Styles contains the pre-configured lipgloss styles used by the app.
type Styles struct {
	// Title style for the header line.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted result.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for the copied confirmation.
	Success lipgloss.Style

	// Badges maps each confidence bucket to its badge style.
	Badges map[domain.Confidence]lipgloss.Style
}

// DefaultStyles returns the default styling.
func DefaultStyles() *Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#1E1E2E"))

	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Badges: map[domain.Confidence]lipgloss.Style{
			domain.ConfidencePerfect: badge.Background(lipgloss.Color("#A6E3A1")),
			domain.ConfidenceHigh:    badge.Background(lipgloss.Color("#94E2D5")),
			domain.ConfidenceMedium:  badge.Background(lipgloss.Color("#F9E2AF")),
			domain.ConfidenceLow:     badge.Background(lipgloss.Color("#FAB387")),
			domain.ConfidenceVeryLow: badge.Background(lipgloss.Color("#F38BA8")),
		},
	}
}

// Badge renders the confidence badge for a result.
func (s *Styles) Badge(c domain.Confidence) string {
	style, ok := s.Badges[c]
	if !ok {
		return string(c)
	}
	return style.Render(string(c))
}
