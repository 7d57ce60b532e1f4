package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MinWidth is the narrowest frame Compose lays out; narrower terminals get
// the same layout and wrap.
const MinWidth = 60

const actionGap = "    "

// Frame is everything drawn on screen for one decision.
type Frame struct {
	Width    int
	Header   string
	Top      Block
	Right    Block
	Bottom   Block
	Board    Block
	Actions  []string
	Selected int
	Help     string
}

// Compose lays a frame out as header band, top seat, board with the right
// seat beside it, bottom seat and footer band.
func Compose(f Frame) string {
	width := max(f.Width, MinWidth)
	rule := RuleStyle.Render(strings.Repeat("─", width))
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	rows := []string{
		center(HeaderStyle.Render(f.Header)),
		"",
		rule,
		"",
		center(f.Top.String()),
		center(beside(f.Board, f.Right)),
		center(f.Bottom.String()),
		"",
		rule,
		"",
		center(footer(f.Actions, f.Selected)),
	}
	if f.Help != "" {
		rows = append(rows, "", center(InfoStyle.Render(f.Help)))
	}
	return strings.Join(rows, "\n")
}

// beside merges two blocks line by line, stopping at the shorter one. Compose
// puts the board on the left so the right seat sits on the right-hand edge.
func beside(left, right Block) string {
	l, r := left.Lines(), right.Lines()
	n := min(len(l), len(r))
	merged := make([]string, n)
	for i := range n {
		merged[i] = l[i] + "  " + r[i]
	}
	return strings.Join(merged, "\n")
}

// footer joins the action labels, bracketing and emphasising the selected
// one.
func footer(actions []string, selected int) string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		if i == selected {
			labels[i] = SelectedActionStyle.Render("[" + a + "]")
		} else {
			labels[i] = ActionStyle.Render(" " + a + " ")
		}
	}
	return strings.Join(labels, actionGap)
}
