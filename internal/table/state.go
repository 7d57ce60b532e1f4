package table

import "github.com/lox/asciiholdem/internal/engine"

// State is the read-and-transition view of a hand the table loop needs.
type State interface {
	Stage() string
	Terminal() bool
	ActingSeat() int
	Seats() []engine.Player
	Board() []engine.Card
	// Payouts is indexed by seat and only meaningful on terminal states.
	Payouts() []int
	LegalActions() []string
	InfoSet() string
	Apply(action string) (State, error)
}

// Dealer starts fresh hands
type Dealer interface {
	NewGame(seats int) (State, error)
}

// FromEngine adapts an engine dealer to the table loop.
func FromEngine(d *engine.Dealer) Dealer {
	return engineDealer{d}
}

type engineDealer struct {
	d *engine.Dealer
}

func (e engineDealer) NewGame(seats int) (State, error) {
	s, err := e.d.NewGame(seats)
	if err != nil {
		return nil, err
	}
	return engineState{s}, nil
}

type engineState struct {
	s *engine.State
}

func (e engineState) Stage() string          { return e.s.Stage().String() }
func (e engineState) Terminal() bool         { return e.s.Terminal() }
func (e engineState) ActingSeat() int        { return e.s.ActingSeat() }
func (e engineState) Seats() []engine.Player { return e.s.Players() }
func (e engineState) Board() []engine.Card   { return e.s.Board() }
func (e engineState) Payouts() []int         { return e.s.Payouts() }
func (e engineState) LegalActions() []string { return e.s.LegalActions() }
func (e engineState) InfoSet() string        { return e.s.InfoSet() }

func (e engineState) Apply(action string) (State, error) {
	next, err := e.s.Apply(action)
	if err != nil {
		return nil, err
	}
	return engineState{next}, nil
}
