package table

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/asciiholdem/internal/gameid"
	"github.com/lox/asciiholdem/internal/policy"
	"github.com/lox/asciiholdem/internal/tui"
)

// Labels offered once a hand is over
const (
	ActionQuit    = "quit"
	ActionNewGame = "new game"
)

// Orchestrator drives one table: it renders frames, routes human input to
// the menu and asks the resolver for bot decisions. It is not safe for
// concurrent use.
type Orchestrator struct {
	dealer   Dealer
	state    State
	bots     []bool
	resolver policy.Resolver
	menu     *tui.Menu
	keys     tui.KeyMap
	logger   *log.Logger
	ids      *gameid.Generator
	handID   string
	done     bool
	turn     int
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithHandIDs sets the generator naming each hand
func WithHandIDs(g *gameid.Generator) Option {
	return func(o *Orchestrator) {
		o.ids = g
	}
}

// New deals the first hand. bots marks, by seat, which seats the resolver
// plays.
func New(dealer Dealer, bots []bool, resolver policy.Resolver, logger *log.Logger, opts ...Option) (*Orchestrator, error) {
	if len(bots) == 0 {
		return nil, errors.New("table needs at least one seat")
	}
	if resolver == nil {
		return nil, errors.New("table needs a resolver")
	}

	o := &Orchestrator{
		dealer:   dealer,
		bots:     append([]bool(nil), bots...),
		resolver: resolver,
		menu:     tui.NewMenu(),
		keys:     tui.DefaultKeyMap(),
		logger:   logger.WithPrefix("table"),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.ids == nil {
		o.ids = gameid.NewGenerator(nil, nil)
	}
	if err := o.newGame(); err != nil {
		return nil, err
	}
	return o, nil
}

// State returns the current hand
func (o *Orchestrator) State() State {
	return o.state
}

// Done reports whether the player asked to leave
func (o *Orchestrator) Done() bool {
	return o.done
}

// Turn counts state transitions. It only ever grows.
func (o *Orchestrator) Turn() int {
	return o.turn
}

// HandID names the current hand
func (o *Orchestrator) HandID() string {
	return o.handID
}

// Quit ends the loop
func (o *Orchestrator) Quit() {
	o.done = true
}

// AwaitingInput reports whether the next transition needs a key press:
// either a human seat is acting or the hand is over.
func (o *Orchestrator) AwaitingInput() bool {
	if o.state.Terminal() {
		return true
	}
	return !o.isBot(o.state.ActingSeat())
}

// Actions returns the labels offered in the footer for the current state.
func (o *Orchestrator) Actions() []string {
	switch {
	case o.state.Terminal():
		return []string{ActionQuit, ActionNewGame}
	case o.isBot(o.state.ActingSeat()):
		return nil
	default:
		return o.state.LegalActions()
	}
}

// Frame renders the whole screen for the current state.
func (o *Orchestrator) Frame(width int) string {
	o.menu.SetActions(o.Actions())

	seats := o.state.Seats()
	terminal := o.state.Terminal()
	acting := o.state.ActingSeat()

	names := make([]string, len(seats))
	blocks := make(map[tui.Orientation]tui.Block, len(seats))
	for i, p := range seats {
		names[i] = p.Name
		view := tui.Seat{
			Name:        p.Name,
			Cards:       p.Cards,
			Reveal:      terminal || !o.isBot(i),
			Bet:         p.Bet,
			Bank:        p.Chips,
			Dealer:      p.Dealer,
			SmallBlind:  p.SmallBlind,
			BigBlind:    p.BigBlind,
			Acting:      !terminal && i == acting,
			Folded:      !p.Active,
			Orientation: tui.OrientationFor(i),
		}
		blocks[view.Orientation] = tui.RenderSeat(view)
	}

	f := tui.Frame{
		Width:    width,
		Header:   Header(o.state.Stage(), names, o.state.Payouts(), terminal),
		Top:      blocks[tui.Top],
		Right:    blocks[tui.Right],
		Bottom:   blocks[tui.Bottom],
		Board:    tui.RenderBoard(o.state.Board()),
		Actions:  o.menu.Actions(),
		Selected: o.menu.Cursor(),
	}
	if o.menu.Len() > 0 {
		f.Help = o.keys.HelpView()
	}
	return tui.Compose(f)
}

// HandleInput applies one decoded key. It returns whether the hand changed.
func (o *Orchestrator) HandleInput(in tui.Input) (bool, error) {
	o.menu.SetActions(o.Actions())

	switch in {
	case tui.InputLeft:
		o.menu.Move(tui.MoveLeft)
	case tui.InputRight:
		o.menu.Move(tui.MoveRight)
	case tui.InputQuit:
		o.Quit()
	case tui.InputConfirm:
		if !o.AwaitingInput() || o.menu.Len() == 0 {
			return false, nil
		}
		switch action := o.menu.Commit(); action {
		case ActionQuit:
			o.logger.Info("Leaving table")
			o.Quit()
		case ActionNewGame:
			return true, o.newGame()
		default:
			return true, o.apply(action)
		}
	}
	return false, nil
}

// PlayBot lets the resolver act for a bot seat. It does nothing unless a bot
// is to act in a live hand.
func (o *Orchestrator) PlayBot() error {
	if o.done || o.AwaitingInput() {
		return nil
	}
	action := o.resolver.Resolve(o.state.LegalActions(), o.state.InfoSet())
	return o.apply(action)
}

func (o *Orchestrator) isBot(seat int) bool {
	return seat >= 0 && seat < len(o.bots) && o.bots[seat]
}

func (o *Orchestrator) apply(action string) error {
	seat := o.state.ActingSeat()
	o.logger.Debug("Seat acts", "seat", seat, "action", action, "infoset", o.state.InfoSet())

	next, err := o.state.Apply(action)
	if err != nil {
		return fmt.Errorf("seat %d %s: %w", seat, action, err)
	}
	o.state = next
	o.turn++
	o.menu.Reset()

	if next.Terminal() {
		o.finish(next)
	}
	return nil
}

func (o *Orchestrator) finish(st State) {
	seats := st.Seats()
	names := make([]string, len(seats))
	for i, p := range seats {
		names[i] = p.Name
	}
	o.logger.Info("Hand complete", "hand", o.handID, "result", Header(st.Stage(), names, st.Payouts(), true))
}

func (o *Orchestrator) newGame() error {
	st, err := o.dealer.NewGame(len(o.bots))
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	o.state = st
	o.handID = o.ids.Next()
	o.turn++
	o.menu.Reset()
	o.logger.Debug("New hand", "hand", o.handID, "acting", st.ActingSeat())
	if st.Terminal() {
		o.finish(st)
	}
	return nil
}
