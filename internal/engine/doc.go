// Package engine implements the game-state collaborator used by the table: a
// three-handed, fixed-limit hold'em hand played on a short (6-A) or full deck.
//
// The main type is State, an immutable snapshot of one hand. Transitions never
// modify the receiver:
//
//	lut, _ := engine.NewAbstraction(true, 8)
//	dealer := engine.NewDealer(engine.DefaultConfig(), lut, rng, names, logger)
//	s, _ := dealer.NewGame(3)
//	s, err := s.Apply(s.LegalActions()[0])
//
// # Information sets
//
// Every non-terminal state exposes an information-set key for the acting seat,
// built from the stage, a card cluster looked up in the shared Abstraction and
// the betting history:
//
//	pre_flop|AKs|r
//	flop|b5|rc/c
//
// The Abstraction is built once per process and passed to every new game.
package engine
