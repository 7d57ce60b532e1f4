package engine

import (
	"errors"
	"fmt"
	"slices"
)

// Abstraction is the card lookup table shared by every hand: it maps hole
// cards to their canonical preflop class and buckets postflop hand strength.
// It is read-only once built and safe to share between games.
type Abstraction struct {
	shortDeck bool
	buckets   int
	preflop   map[[2]Card]string
	classes   []string
}

// NewAbstraction precomputes the preflop classes of every two-card
// combination of the deck variant.
func NewAbstraction(shortDeck bool, buckets int) (*Abstraction, error) {
	if buckets <= 0 {
		return nil, errors.New("postflop bucket count must be > 0")
	}

	a := &Abstraction{
		shortDeck: shortDeck,
		buckets:   buckets,
		preflop:   make(map[[2]Card]string),
	}

	low := lowestRank(shortDeck)
	var cards []Card
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := low; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	seen := make(map[string]bool)
	for i, c1 := range cards {
		for _, c2 := range cards[i+1:] {
			class := holeClass(c1, c2)
			a.preflop[holeKey(c1, c2)] = class
			if !seen[class] {
				seen[class] = true
				a.classes = append(a.classes, class)
			}
		}
	}
	slices.Sort(a.classes)
	return a, nil
}

// ShortDeck reports whether the table was built for the 6-A deck.
func (a *Abstraction) ShortDeck() bool {
	return a.shortDeck
}

// Buckets returns the number of postflop strength buckets.
func (a *Abstraction) Buckets() int {
	return a.buckets
}

// PreflopClasses returns every canonical preflop class, sorted.
func (a *Abstraction) PreflopClasses() []string {
	return slices.Clone(a.classes)
}

// Cluster returns the card cluster for a seat holding hole on board.
func (a *Abstraction) Cluster(hole, board []Card) string {
	if len(hole) != 2 {
		return "?"
	}
	if len(board) == 0 {
		if class, ok := a.preflop[holeKey(hole[0], hole[1])]; ok {
			return class
		}
		return holeClass(hole[0], hole[1])
	}

	cards := make([]Card, 0, 7)
	cards = append(cards, hole...)
	cards = append(cards, board...)
	bucket := int(Score(cards)) * a.buckets / scoreSpan
	bucket = max(0, min(bucket, a.buckets-1))
	return fmt.Sprintf("b%d", bucket)
}

func holeKey(c1, c2 Card) [2]Card {
	if c2.Rank > c1.Rank || (c2.Rank == c1.Rank && c2.Suit < c1.Suit) {
		c1, c2 = c2, c1
	}
	return [2]Card{c1, c2}
}

// holeClass names the hand in the usual shorthand: "TT", "AKs", "QJo".
func holeClass(c1, c2 Card) string {
	k := holeKey(c1, c2)
	hi, lo := k[0], k[1]
	switch {
	case hi.Rank == lo.Rank:
		return hi.Rank.String() + lo.Rank.String()
	case hi.Suit == lo.Suit:
		return hi.Rank.String() + lo.Rank.String() + "s"
	default:
		return hi.Rank.String() + lo.Rank.String() + "o"
	}
}
