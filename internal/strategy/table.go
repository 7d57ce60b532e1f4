// Package strategy holds the precomputed bot policy: a read-only table from
// information-set keys to action probabilities.
package strategy

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"
)

const fileVersion = 1

// Tolerance is the allowed drift of a distribution's total from 1.
const Tolerance = 1e-3

// Distribution maps an action label to its selection probability.
type Distribution map[string]float64

// Actions returns the distribution's actions in sorted order.
func (d Distribution) Actions() []string {
	actions := make([]string, 0, len(d))
	for a := range d {
		actions = append(actions, a)
	}
	slices.Sort(actions)
	return actions
}

// Validate checks the probabilities are non-negative and sum to 1.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return errors.New("empty distribution")
	}
	total := 0.0
	for a, p := range d {
		if p < 0 || math.IsNaN(p) {
			return fmt.Errorf("action %q has invalid probability %v", a, p)
		}
		total += p
	}
	if math.Abs(total-1) > Tolerance {
		return fmt.Errorf("probabilities sum to %.6f", total)
	}
	return nil
}

// Table is the strategy loaded at startup. It is never modified after
// loading and may be shared freely.
type Table struct {
	Version     int                     `json:"version"`
	GeneratedAt time.Time               `json:"generated_at"`
	Source      string                  `json:"source,omitempty"`
	Strategies  map[string]Distribution `json:"strategies"`
}

// New returns an empty table of the current file version.
func New(source string) *Table {
	return &Table{
		Version:     fileVersion,
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Strategies:  make(map[string]Distribution),
	}
}

// Even splits probability equally over actions.
func Even(actions []string) Distribution {
	d := make(Distribution, len(actions))
	for _, a := range actions {
		d[a] = 1.0 / float64(len(actions))
	}
	return d
}

// Lookup returns the distribution stored for key.
func (t *Table) Lookup(key string) (Distribution, bool) {
	if t == nil {
		return nil, false
	}
	d, ok := t.Strategies[key]
	return d, ok
}

// Len returns the number of information sets in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Strategies)
}

// Validate checks the version and every distribution.
func (t *Table) Validate() error {
	if t == nil {
		return errors.New("nil strategy table")
	}
	if t.Version != fileVersion {
		return fmt.Errorf("unsupported strategy version %d", t.Version)
	}
	for key, d := range t.Strategies {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("info set %q: %w", key, err)
		}
	}
	return nil
}
