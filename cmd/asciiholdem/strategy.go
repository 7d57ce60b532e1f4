package main

import (
	"fmt"
	"os"

	"github.com/lox/asciiholdem/internal/config"
	"github.com/lox/asciiholdem/internal/engine"
	"github.com/lox/asciiholdem/internal/randutil"
	"github.com/lox/asciiholdem/internal/strategy"
)

type StrategyCmd struct {
	Check   StrategyCheckCmd   `cmd:"" help:"Load and validate a strategy table"`
	Uniform StrategyUniformCmd `cmd:"" help:"Write a uniform preflop strategy table"`
}

type StrategyCheckCmd struct {
	Path string `arg:"" type:"existingfile" help:"Strategy table file"`
}

func (c *StrategyCheckCmd) Run(g *Globals) error {
	t, err := strategy.Load(c.Path)
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%s: %w", c.Path, err)
	}
	fmt.Printf("%s: %d information sets (source %q, generated %s)\n",
		c.Path, t.Len(), t.Source, t.GeneratedAt.Format("2006-01-02 15:04:05"))
	return nil
}

type StrategyUniformCmd struct {
	Path string `arg:"" help:"Output file; a .gz suffix compresses it"`
}

func (c *StrategyUniformCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level, g.Debug)
	if err != nil {
		return err
	}

	ec := cfg.Engine()
	lut, err := engine.NewAbstraction(ec.ShortDeck, cfg.Policy.Buckets)
	if err != nil {
		return err
	}
	dealer := engine.NewDealer(ec, lut, randutil.New(1), cfg.Names(), logger)
	spots, err := dealer.PreflopSpots(config.Seats)
	if err != nil {
		return err
	}

	t := strategy.New("uniform")
	for key, actions := range spots {
		t.Strategies[key] = strategy.Even(actions)
	}
	if err := t.Save(c.Path); err != nil {
		return err
	}
	logger.Info("Wrote strategy table", "path", c.Path, "entries", t.Len())
	return nil
}
