package table

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/asciiholdem/internal/tui"
)

// Options tune how the table is presented
type Options struct {
	// BotDelay pauses before each bot decision so the moves can be followed.
	BotDelay time.Duration
	Clock    quartz.Clock
}

type botTurnMsg struct {
	turn int
}

// Model is the Bubble Tea model around an Orchestrator.
type Model struct {
	orch  *Orchestrator
	keys  tui.KeyMap
	clock quartz.Clock
	delay time.Duration
	width int
	err   error
}

// NewModel wraps orch. A nil clock means the real one.
func NewModel(orch *Orchestrator, opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Model{
		orch:  orch,
		keys:  tui.DefaultKeyMap(),
		clock: clock,
		delay: opts.BotDelay,
		width: tui.MinWidth,
	}
}

// Err returns the error that stopped the loop, if any
func (m *Model) Err() error {
	return m.err
}

// Init schedules the first bot decision when a bot opens the hand
func (m *Model) Init() tea.Cmd {
	return m.scheduleBot()
}

// Update routes keys to the orchestrator and plays scheduled bot turns.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		changed, err := m.orch.HandleInput(m.keys.Input(msg))
		if err != nil {
			return m.fail(err)
		}
		if m.orch.Done() {
			return m, tea.Quit
		}
		if changed {
			return m, m.scheduleBot()
		}

	case botTurnMsg:
		if msg.turn != m.orch.Turn() {
			return m, nil
		}
		if err := m.orch.PlayBot(); err != nil {
			return m.fail(err)
		}
		return m, m.scheduleBot()
	}
	return m, nil
}

// View renders the current frame
func (m *Model) View() string {
	if m.orch.Done() {
		return ""
	}
	return m.orch.Frame(m.width)
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	return m, tea.Quit
}

// scheduleBot returns a command delivering the bot's decision for the
// current turn, or nil when the next step needs a key press.
func (m *Model) scheduleBot() tea.Cmd {
	if m.orch.Done() || m.orch.AwaitingInput() {
		return nil
	}
	msg := botTurnMsg{turn: m.orch.Turn()}
	if m.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	fired := make(chan struct{})
	m.clock.AfterFunc(m.delay, func() { close(fired) })
	return func() tea.Msg {
		<-fired
		return msg
	}
}

// Run plays the table on the terminal until the player quits, an engine
// error occurs or ctx is cancelled. The alternate screen and raw mode are
// restored on every exit path.
func Run(ctx context.Context, orch *Orchestrator, opts Options, programOpts ...tea.ProgramOption) error {
	m := NewModel(orch, opts)
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, programOpts...)

	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run table: %w", err)
	}
	if fm, ok := final.(*Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
