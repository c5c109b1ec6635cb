package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerhands/poker"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	WinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// formatCards renders cards with coloured suit glyphs
func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		style := BlackCardStyle
		if c.Suit().IsRed() {
			style = RedCardStyle
		}
		parts[i] = style.Render(c.Rank().String() + c.Suit().Symbol())
	}
	return strings.Join(parts, " ")
}
