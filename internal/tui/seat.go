package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/asciiholdem/internal/engine"
)

const (
	seatWidth = 20 // inner width including padding
	seatRows  = 5
	nameWidth = 11
	holeSlots = 2
)

// Orientation is where a seat sits around the table
type Orientation int

const (
	Top Orientation = iota
	Right
	Bottom
)

func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// OrientationFor assigns table positions by seat index: 0 top, 1 right,
// 2 bottom.
func OrientationFor(seat int) Orientation {
	return Orientation(seat % 3)
}

// Seat is the per-frame view model of one seat.
type Seat struct {
	Name        string
	Cards       []engine.Card
	Reveal      bool
	Bet         int
	Bank        int
	Dealer      bool
	SmallBlind  bool
	BigBlind    bool
	Acting      bool
	Folded      bool
	Orientation Orientation
}

// RenderSeat draws a seat as a bordered block. Every seat block has the same
// size whatever its flags, and hidden cards are drawn as face-down
// placeholders of the same width as a face.
func RenderSeat(s Seat) Block {
	name := padRight(s.Name, nameWidth) + " " + badges(s)
	bet := fmt.Sprintf("bet  %d", s.Bet)
	bank := fmt.Sprintf("bank %d", s.Bank)

	var status string
	switch {
	case s.Folded:
		status = InfoStyle.Render("folded")
	case s.Acting:
		status = TurnStyle.Render("▶ to act")
	}

	slots := holeCards(s.Cards, s.Reveal)

	var rows []string
	switch s.Orientation {
	case Top:
		rows = []string{name, bet, bank, status, strings.Join(slots, " ")}
	case Bottom:
		rows = []string{strings.Join(slots, " "), name, bet, bank, status}
	default:
		cards := strings.Join(slots, "\n")
		info := bet + "\n" + bank
		rows = []string{name, lipgloss.JoinHorizontal(lipgloss.Top, cards, "  ", info), status, ""}
	}

	style := SeatStyle
	switch {
	case s.Folded:
		style = FoldedSeatStyle
	case s.Acting:
		style = ActingSeatStyle
	}
	return NewBlock(style.Render(strings.Join(rows, "\n")))
}

// badges renders the dealer and blind markers in a fixed four-cell field.
func badges(s Seat) string {
	dealer := " "
	if s.Dealer {
		dealer = "D"
	}
	blind := "  "
	switch {
	case s.SmallBlind:
		blind = "SB"
	case s.BigBlind:
		blind = "BB"
	}
	return BadgeStyle.Render(dealer + " " + blind)
}

func holeCards(cards []engine.Card, reveal bool) []string {
	slots := make([]string, holeSlots)
	for i := range slots {
		switch {
		case i >= len(cards):
			slots[i] = emptySlot()
		case !reveal:
			slots[i] = hiddenCard()
		default:
			slots[i] = renderCard(cards[i])
		}
	}
	return slots
}

func renderCard(c engine.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render("[" + c.String() + "]")
	}
	return BlackCardStyle.Render("[" + c.String() + "]")
}

func hiddenCard() string {
	return HiddenCardStyle.Render("[░░]")
}

func emptySlot() string {
	return EmptySlotStyle.Render("[  ]")
}
