package engine

import (
	"fmt"
	"slices"
)

// PreflopSpots walks every pre-flop betting sequence of a hand with seats
// players and returns, for each reachable information-set key, the legal
// actions at that point. Keys are generated for every hole class of the
// dealer's abstraction.
func (d *Dealer) PreflopSpots(seats int) (map[string][]string, error) {
	root, err := d.NewGame(seats)
	if err != nil {
		return nil, err
	}

	legal := make(map[string][]string)
	var walk func(s *State) error
	walk = func(s *State) error {
		if s.stage != PreFlop {
			return nil
		}
		actions := s.LegalActions()
		legal[string(s.history[PreFlop])] = actions
		for _, a := range actions {
			next, err := s.Apply(a)
			if err != nil {
				return err
			}
			if err := walk(next); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	spots := make(map[string][]string, len(legal)*len(d.lut.PreflopClasses()))
	for _, class := range d.lut.PreflopClasses() {
		for history, actions := range legal {
			spots[fmt.Sprintf("%s|%s|%s", PreFlop, class, history)] = slices.Clone(actions)
		}
	}
	d.logger.Debug("Enumerated preflop spots", "histories", len(legal), "keys", len(spots))
	return spots, nil
}
