package table

import "fmt"

// Header returns the status line. Non-terminal hands show the stage label;
// terminal hands name the seat with the largest payout, the lowest seat
// index winning ties.
func Header(stage string, names []string, payouts []int, terminal bool) string {
	if !terminal {
		return stage
	}
	winner := Winner(payouts)
	if winner < 0 || winner >= len(names) {
		return stage
	}
	return fmt.Sprintf("%s - %s wins %d chips", stage, names[winner], payouts[winner])
}

// Winner returns the seat with the largest payout delta, or -1 when there
// are no payouts. Ties go to the first seat encountered.
func Winner(payouts []int) int {
	winner := -1
	for i, p := range payouts {
		if winner < 0 || p > payouts[winner] {
			winner = i
		}
	}
	return winner
}
