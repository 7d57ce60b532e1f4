// Package policy chooses actions for bot-controlled seats.
package policy

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/asciiholdem/internal/strategy"
)

// Resolver picks one action for the acting seat. legal must be non-empty;
// infoSet is the engine's opaque key for what the seat can observe.
type Resolver interface {
	Resolve(legal []string, infoSet string) string
}

// Mode names a resolver implementation
type Mode string

const (
	ModeUniform Mode = "uniform"
	ModeTable   Mode = "table"
)

// ParseMode accepts a mode name or one of its aliases ("random", "offline").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "random":
		return ModeUniform, nil
	case "table", "offline":
		return ModeTable, nil
	default:
		return "", fmt.Errorf("unknown policy mode %q", s)
	}
}

// New builds the resolver for mode. The table is required in table mode.
func New(mode Mode, table *strategy.Table, rng *rand.Rand, logger *log.Logger) (Resolver, error) {
	switch mode {
	case ModeUniform:
		return NewUniform(rng), nil
	case ModeTable:
		if table == nil {
			return nil, errors.New("table policy needs a strategy table")
		}
		return NewWeighted(table, rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown policy mode %q", mode)
	}
}

// Uniform picks uniformly at random among the legal actions.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform creates a uniform resolver drawing from rng
func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng}
}

func (u *Uniform) Resolve(legal []string, _ string) string {
	mustHaveActions(legal)
	return legal[u.rng.IntN(len(legal))]
}

// Weighted samples from the strategy table entry for the information set,
// falling back to a uniform draw over the current legal actions when the
// table has no entry.
//
// The table's actions are used as given. A table built for a different
// action abstraction can therefore return an action the engine will reject.
type Weighted struct {
	table  *strategy.Table
	rng    *rand.Rand
	logger *log.Logger
}

// NewWeighted creates a table-weighted resolver. The table is shared, not
// copied.
func NewWeighted(table *strategy.Table, rng *rand.Rand, logger *log.Logger) *Weighted {
	return &Weighted{
		table:  table,
		rng:    rng,
		logger: logger.WithPrefix("policy"),
	}
}

func (w *Weighted) Resolve(legal []string, infoSet string) string {
	actions, weights := w.Distribution(legal, infoSet)
	return sample(w.rng, actions, weights)
}

// Distribution returns the actions and weights Resolve samples from.
func (w *Weighted) Distribution(legal []string, infoSet string) ([]string, []float64) {
	mustHaveActions(legal)

	d, ok := w.table.Lookup(infoSet)
	if !ok {
		w.logger.Debug("No strategy for info set, using uniform", "infoSet", infoSet, "legal", legal)
		weights := make([]float64, len(legal))
		for i := range weights {
			weights[i] = 1.0 / float64(len(legal))
		}
		return legal, weights
	}

	actions := d.Actions()
	weights := make([]float64, len(actions))
	for i, a := range actions {
		weights[i] = d[a]
	}
	return actions, weights
}

// sample draws an index proportionally to weights. Rounding slack lands on
// the last action with positive weight.
func sample(rng *rand.Rand, actions []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total

	last := len(actions) - 1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return actions[i]
		}
		r -= w
	}
	return actions[last]
}

func mustHaveActions(legal []string) {
	if len(legal) == 0 {
		panic("policy: resolve called with no legal actions")
	}
}
