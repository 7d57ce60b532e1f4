package engine

import (
	poker "github.com/paulhankin/poker"
)

// scoreSpan is the number of distinct five-card hand classes, used to map
// evaluator scores onto buckets. Larger scores are stronger hands.
const scoreSpan = 7462

// toPH converts a card to the evaluator's representation. The evaluator
// numbers ranks 1..13 with the ace as 1.
func toPH(c Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case Clubs:
		s = poker.Club
	case Diamonds:
		s = poker.Diamond
	case Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == Ace {
		r = poker.Rank(1)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

// Score returns the strength of the best five-card hand within cards.
// Between five and seven cards are required.
func Score(cards []Card) int16 {
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toPH(c)
	}
	switch len(pcs) {
	case 7:
		var a7 [7]poker.Card
		copy(a7[:], pcs)
		return poker.Eval7(&a7)
	case 5:
		var a5 [5]poker.Card
		copy(a5[:], pcs)
		return poker.Eval5(&a5)
	case 6:
		return bestOfFive(pcs)
	default:
		panic("engine: Score needs five to seven cards")
	}
}

// bestOfFive evaluates every five-card subset of a six-card hand.
func bestOfFive(pcs []poker.Card) int16 {
	best := int16(-1 << 15)
	var five [5]poker.Card
	for skip := range pcs {
		n := 0
		for i, c := range pcs {
			if i == skip {
				continue
			}
			five[n] = c
			n++
		}
		if s := poker.Eval5(&five); s > best {
			best = s
		}
	}
	return best
}
