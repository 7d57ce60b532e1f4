package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	RuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ActionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	SelectedActionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF4500")).
				Blink(true).
				Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	HiddenCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	EmptySlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	TurnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	SeatStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1).
			Width(seatWidth).
			Height(seatRows)

	ActingSeatStyle = SeatStyle.
			BorderForeground(lipgloss.Color("#04B575"))

	FoldedSeatStyle = SeatStyle.
			Faint(true)

	BoardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#96CEB4")).
			Padding(0, 1).
			Height(seatRows).
			AlignVertical(lipgloss.Center)
)
