package table

import (
	"github.com/lox/asciiholdem/internal/engine"
)

// settledState is a hand that is already over, as when every stack is
// all-in from the blinds.
type settledState struct {
	payouts []int
}

func (s settledState) Stage() string   { return "show_down" }
func (s settledState) Terminal() bool  { return true }
func (s settledState) ActingSeat() int { return -1 }
func (s settledState) Seats() []engine.Player {
	seats := make([]engine.Player, len(s.payouts))
	for i := range seats {
		seats[i] = engine.Player{Name: "seat", Cards: engine.MustParseCards("As Kd"), Active: true}
	}
	return seats
}
func (s settledState) Board() []engine.Card   { return engine.MustParseCards("2c 3d 4h 5s 9c") }
func (s settledState) Payouts() []int         { return s.payouts }
func (s settledState) LegalActions() []string { return nil }
func (s settledState) InfoSet() string        { return "" }
func (s settledState) Apply(string) (State, error) {
	return nil, engine.ErrHandOver
}

type settledDealer struct {
	games int
}

func (d *settledDealer) NewGame(seats int) (State, error) {
	d.games++
	payouts := make([]int, seats)
	payouts[0], payouts[seats-1] = 100, -100
	return settledState{payouts: payouts}, nil
}
