package engine

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Action labels understood by Apply.
const (
	Fold  = "fold"
	Call  = "call"
	Raise = "raise"
)

var (
	// ErrIllegalAction is returned when Apply receives an action that is not
	// in the acting seat's legal set.
	ErrIllegalAction = errors.New("illegal action")
	// ErrHandOver is returned when Apply is called on a finished hand.
	ErrHandOver = errors.New("hand is over")
)

// Stage is the betting stage of a hand
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
	ShowDown
	Terminal
)

// String returns the stage label shown in the table header
func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "pre_flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case ShowDown:
		return "show_down"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Config holds the betting structure of a hand.
type Config struct {
	SmallBlind    int
	BigBlind      int
	StartingStack int
	MaxRaises     int
	ShortDeck     bool
}

// DefaultConfig returns the short-deck limit structure.
func DefaultConfig() Config {
	return Config{
		SmallBlind:    50,
		BigBlind:      100,
		StartingStack: 10000,
		MaxRaises:     3,
		ShortDeck:     true,
	}
}

// Validate checks the betting structure is playable.
func (c Config) Validate() error {
	if c.SmallBlind <= 0 || c.BigBlind <= 0 {
		return errors.New("blinds must be > 0")
	}
	if c.SmallBlind >= c.BigBlind {
		return errors.New("small blind must be below the big blind")
	}
	if c.StartingStack < c.BigBlind {
		return errors.New("starting stack must cover the big blind")
	}
	if c.MaxRaises < 0 {
		return errors.New("max raises cannot be negative")
	}
	return nil
}

// Player is one seat's view of the hand.
type Player struct {
	Name       string
	Cards      []Card
	Bet        int // chips put in during the current betting round
	Committed  int // chips put in during the whole hand
	Chips      int // chips behind
	Active     bool
	Dealer     bool
	SmallBlind bool
	BigBlind   bool
}

// Dealer starts new hands with a fixed configuration and lookup table.
type Dealer struct {
	cfg    Config
	lut    *Abstraction
	rng    *rand.Rand
	names  []string
	logger *log.Logger
	deck   func() []Card
}

// NewDealer creates a dealer. Seats without an entry in names are called
// player_<i>.
func NewDealer(cfg Config, lut *Abstraction, rng *rand.Rand, names []string, logger *log.Logger) *Dealer {
	d := &Dealer{
		cfg:    cfg,
		lut:    lut,
		rng:    rng,
		names:  slices.Clone(names),
		logger: logger.WithPrefix("engine"),
	}
	d.deck = func() []Card { return NewDeck(d.rng, d.cfg.ShortDeck) }
	return d
}

// WithDeck makes every subsequent hand use a copy of cards in the given
// order, for deterministic tests.
func (d *Dealer) WithDeck(cards []Card) *Dealer {
	d.deck = func() []Card { return slices.Clone(cards) }
	return d
}

// Abstraction returns the shared lookup table.
func (d *Dealer) Abstraction() *Abstraction {
	return d.lut
}

// NewGame deals a fresh hand for seats players and posts the blinds.
func (d *Dealer) NewGame(seats int) (*State, error) {
	if seats < 2 {
		return nil, fmt.Errorf("need at least 2 seats, got %d", seats)
	}
	if err := d.cfg.Validate(); err != nil {
		return nil, err
	}

	deck := d.deck()
	if len(deck) < 2*seats+5 {
		return nil, fmt.Errorf("deck of %d cards cannot deal %d seats", len(deck), seats)
	}

	s := &State{
		cfg:     d.cfg,
		lut:     d.lut,
		players: make([]Player, seats),
		deck:    deck,
		acted:   make([]bool, seats),
		history: make([][]byte, River+1),
		start:   make([]int, seats),
	}

	for i := range s.players {
		name := fmt.Sprintf("player_%d", i)
		if i < len(d.names) && d.names[i] != "" {
			name = d.names[i]
		}
		s.players[i] = Player{
			Name:   name,
			Chips:  d.cfg.StartingStack,
			Active: true,
			Dealer: i == seats-1,
		}
		s.start[i] = d.cfg.StartingStack
	}
	for i := range s.players {
		s.players[i].Cards = s.deal(2)
	}

	s.players[0].SmallBlind = true
	s.players[1].BigBlind = true
	s.pay(0, d.cfg.SmallBlind)
	s.pay(1, d.cfg.BigBlind)
	s.currentBet = d.cfg.BigBlind

	s.acting = 1
	s.acting = s.nextToAct()
	if s.acting < 0 {
		s.nextStreet()
	}

	d.logger.Debug("Dealt new hand", "seats", seats, "first", s.acting)
	return s, nil
}

// State is an immutable snapshot of a hand in progress.
type State struct {
	cfg        Config
	lut        *Abstraction
	players    []Player
	board      []Card
	deck       []Card
	stage      Stage
	acting     int
	currentBet int
	raises     int
	acted      []bool
	history    [][]byte
	start      []int
}

// Stage returns the current betting stage
func (s *State) Stage() Stage {
	return s.stage
}

// Terminal reports whether the hand has finished and payouts are known.
func (s *State) Terminal() bool {
	return s.stage >= ShowDown
}

// ActingSeat returns the index of the seat to act. It is meaningless on
// terminal states.
func (s *State) ActingSeat() int {
	return s.acting
}

// Players returns a copy of every seat.
func (s *State) Players() []Player {
	out := make([]Player, len(s.players))
	for i, p := range s.players {
		p.Cards = slices.Clone(p.Cards)
		out[i] = p
	}
	return out
}

// Board returns the community cards dealt so far.
func (s *State) Board() []Card {
	return slices.Clone(s.board)
}

// Pot returns every chip committed this hand.
func (s *State) Pot() int {
	total := 0
	for _, p := range s.players {
		total += p.Committed
	}
	return total
}

// Payouts returns each seat's chip delta for the hand, indexed by seat. It
// is nil until the hand is terminal.
func (s *State) Payouts() []int {
	if !s.Terminal() {
		return nil
	}
	out := make([]int, len(s.players))
	for i, p := range s.players {
		out[i] = p.Chips - s.start[i]
	}
	return out
}

// LegalActions returns the acting seat's actions in fold, call, raise order.
func (s *State) LegalActions() []string {
	if s.Terminal() {
		return nil
	}
	p := s.players[s.acting]
	owed := s.currentBet - p.Bet

	var actions []string
	if owed > 0 {
		actions = append(actions, Fold)
	}
	actions = append(actions, Call)
	if s.raises < s.cfg.MaxRaises && p.Chips > owed {
		actions = append(actions, Raise)
	}
	return actions
}

// InfoSet returns the information-set key for the acting seat, or "" on
// terminal states.
func (s *State) InfoSet() string {
	if s.Terminal() {
		return ""
	}
	streets := make([]string, 0, s.stage+1)
	for st := PreFlop; st <= s.stage; st++ {
		streets = append(streets, string(s.history[st]))
	}
	cluster := s.lut.Cluster(s.players[s.acting].Cards, s.board)
	return fmt.Sprintf("%s|%s|%s", s.stage, cluster, strings.Join(streets, "/"))
}

// Apply returns the state after the acting seat takes action.
func (s *State) Apply(action string) (*State, error) {
	if s.Terminal() {
		return nil, ErrHandOver
	}
	if !slices.Contains(s.LegalActions(), action) {
		return nil, fmt.Errorf("%w: %q for %s at %s", ErrIllegalAction, action, s.players[s.acting].Name, s.stage)
	}

	next := s.clone()
	seat := next.acting
	p := &next.players[seat]
	owed := next.currentBet - p.Bet

	switch action {
	case Fold:
		p.Active = false
	case Call:
		next.pay(seat, owed)
	case Raise:
		next.pay(seat, owed+next.raiseSize())
		next.currentBet = max(next.currentBet, p.Bet)
		next.raises++
		for i := range next.acted {
			next.acted[i] = false
		}
	}
	next.acted[seat] = true
	next.history[next.stage] = append(next.history[next.stage], action[0])

	next.advance()
	return next, nil
}

func (s *State) clone() *State {
	next := *s
	next.players = s.Players()
	next.board = slices.Clone(s.board)
	next.deck = slices.Clone(s.deck)
	next.acted = slices.Clone(s.acted)
	next.start = slices.Clone(s.start)
	next.history = make([][]byte, len(s.history))
	for i, h := range s.history {
		next.history[i] = slices.Clone(h)
	}
	return &next
}

func (s *State) deal(n int) []Card {
	cards := slices.Clone(s.deck[:n])
	s.deck = s.deck[n:]
	return cards
}

// pay moves up to amount chips from a seat's stack into the pot.
func (s *State) pay(seat, amount int) {
	p := &s.players[seat]
	amount = min(amount, p.Chips)
	p.Chips -= amount
	p.Bet += amount
	p.Committed += amount
}

func (s *State) raiseSize() int {
	if s.stage >= Turn {
		return 2 * s.cfg.BigBlind
	}
	return s.cfg.BigBlind
}

func (s *State) activeCount() int {
	n := 0
	for _, p := range s.players {
		if p.Active {
			n++
		}
	}
	return n
}

func (s *State) needsAction(i int) bool {
	p := s.players[i]
	return p.Active && p.Chips > 0 && (!s.acted[i] || p.Bet < s.currentBet)
}

// nextToAct returns the first seat after the acting one that still owes a
// decision this round, or -1 when the round is closed.
func (s *State) nextToAct() int {
	n := len(s.players)
	for step := 1; step <= n; step++ {
		i := (s.acting + step) % n
		if s.needsAction(i) {
			return i
		}
	}
	return -1
}

func (s *State) advance() {
	if s.activeCount() == 1 {
		s.foldOut()
		return
	}
	if next := s.nextToAct(); next >= 0 {
		s.acting = next
		return
	}
	s.nextStreet()
}

// nextStreet closes the betting round and deals until some seat has a
// decision to make or the hand reaches showdown.
func (s *State) nextStreet() {
	for {
		for i := range s.players {
			s.players[i].Bet = 0
			s.acted[i] = false
		}
		s.currentBet = 0
		s.raises = 0

		switch s.stage {
		case PreFlop:
			s.board = append(s.board, s.deal(3)...)
		case Flop, Turn:
			s.board = append(s.board, s.deal(1)...)
		default:
			s.showdown()
			return
		}
		s.stage++

		canAct := 0
		for _, p := range s.players {
			if p.Active && p.Chips > 0 {
				canAct++
			}
		}
		if canAct >= 2 {
			s.acting = len(s.players) - 1
			s.acting = s.nextToAct()
			return
		}
	}
}

func (s *State) foldOut() {
	for i := range s.players {
		if s.players[i].Active {
			s.players[i].Chips += s.Pot()
		}
	}
	s.clearBets(Terminal)
}

func (s *State) clearBets(stage Stage) {
	for i := range s.players {
		s.players[i].Bet = 0
		s.players[i].Committed = 0
	}
	s.stage = stage
	s.currentBet = 0
}

// showdown splits each pot layer among the strongest eligible hands. Odd
// chips go to the lowest seat index.
func (s *State) showdown() {
	scores := make([]int16, len(s.players))
	for i, p := range s.players {
		if !p.Active {
			continue
		}
		cards := append(slices.Clone(p.Cards), s.board...)
		scores[i] = Score(cards)
	}

	var levels []int
	for _, p := range s.players {
		if p.Committed > 0 && !slices.Contains(levels, p.Committed) {
			levels = append(levels, p.Committed)
		}
	}
	slices.Sort(levels)

	won := make([]int, len(s.players))
	prev := 0
	for _, level := range levels {
		amount := 0
		var eligible []int
		for i, p := range s.players {
			amount += min(p.Committed, level) - min(p.Committed, prev)
			if p.Active && p.Committed >= level {
				eligible = append(eligible, i)
			}
		}
		prev = level
		if len(eligible) == 0 {
			for i, p := range s.players {
				if p.Active {
					eligible = append(eligible, i)
				}
			}
		}

		var winners []int
		for _, i := range eligible {
			switch {
			case len(winners) == 0 || scores[i] > scores[winners[0]]:
				winners = []int{i}
			case scores[i] == scores[winners[0]]:
				winners = append(winners, i)
			}
		}
		share := amount / len(winners)
		for _, w := range winners {
			won[w] += share
		}
		won[winners[0]] += amount - share*len(winners)
	}

	for i := range s.players {
		s.players[i].Chips += won[i]
	}
	s.clearBets(ShowDown)
}
