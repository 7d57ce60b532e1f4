package tui

import (
	"strings"

	"github.com/lox/asciiholdem/internal/engine"
)

const boardSlots = 5

// RenderBoard draws the community cards in five fixed slots so the block
// keeps its width from street to street.
func RenderBoard(cards []engine.Card) Block {
	if len(cards) > boardSlots {
		panic("tui: board holds at most five cards")
	}
	slots := make([]string, boardSlots)
	for i := range slots {
		if i < len(cards) {
			slots[i] = renderCard(cards[i])
		} else {
			slots[i] = emptySlot()
		}
	}
	return NewBlock(BoardStyle.Render(strings.Join(slots, " ")))
}
