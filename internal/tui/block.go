package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block is a rendered, immutable rectangle of text lines.
type Block struct {
	lines []string
}

// NewBlock splits rendered text into a block.
func NewBlock(s string) Block {
	return Block{lines: strings.Split(s, "\n")}
}

// Lines returns a copy of the block's lines
func (b Block) Lines() []string {
	return slices.Clone(b.lines)
}

// Height returns the number of lines
func (b Block) Height() int {
	return len(b.lines)
}

// Width returns the display width of the widest line
func (b Block) Width() int {
	return lipgloss.Width(b.String())
}

func (b Block) String() string {
	return strings.Join(b.lines, "\n")
}

// padRight pads s with spaces to width display cells, truncating longer
// strings.
func padRight(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes)
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
