package engine

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit glyph
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank, aces high
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank
func (r Rank) String() string {
	if r >= Two && r <= Nine {
		return fmt.Sprint(int(r))
	}
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is a single playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ParseCard parses cards written as rank then suit letter, e.g. "As", "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	var c Card
	switch s[0] {
	case 'T':
		c.Rank = Ten
	case 'J':
		c.Rank = Jack
	case 'Q':
		c.Rank = Queen
	case 'K':
		c.Rank = King
	case 'A':
		c.Rank = Ace
	default:
		if s[0] < '2' || s[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in %q", s)
		}
		c.Rank = Rank(s[0] - '0')
	}
	switch s[1] {
	case 's':
		c.Suit = Spades
	case 'h':
		c.Suit = Hearts
	case 'd':
		c.Suit = Diamonds
	case 'c':
		c.Suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}
	return c, nil
}

// MustParseCards parses a space separated card list and panics on error.
// Intended for tests and fixed decks.
func MustParseCards(s string) []Card {
	var cards []Card
	for _, tok := range strings.Fields(s) {
		c, err := ParseCard(tok)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// String returns the card as rank and suit glyph, e.g. "A♠"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// lowestRank is the smallest rank in play for the deck variant.
func lowestRank(shortDeck bool) Rank {
	if shortDeck {
		return Six
	}
	return Two
}

// NewDeck returns every card of the variant shuffled with rng.
func NewDeck(rng *rand.Rand, shortDeck bool) []Card {
	low := lowestRank(shortDeck)
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := low; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
