package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/lox/asciiholdem/internal/config"
	"github.com/lox/asciiholdem/internal/engine"
	"github.com/lox/asciiholdem/internal/gameid"
	"github.com/lox/asciiholdem/internal/policy"
	"github.com/lox/asciiholdem/internal/randutil"
	"github.com/lox/asciiholdem/internal/strategy"
	"github.com/lox/asciiholdem/internal/table"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
)

type PlayCmd struct {
	Policy   string         `env:"ASCIIHOLDEM_POLICY" help:"Bot policy: uniform or table"`
	Strategy string         `env:"ASCIIHOLDEM_STRATEGY" help:"Strategy table file (JSON, optionally gzipped)"`
	Seed     *int64         `env:"ASCIIHOLDEM_SEED" help:"Random seed (0 picks one from the clock)"`
	BotDelay *time.Duration `env:"ASCIIHOLDEM_BOT_DELAY" help:"Pause before each bot decision (default none)"`
}

// apply layers command-line overrides on top of the file configuration.
func (c *PlayCmd) apply(cfg *config.Config, g *Globals) {
	if c.Policy != "" {
		cfg.Policy.Mode = c.Policy
	}
	if c.Strategy != "" {
		cfg.Policy.Strategy = c.Strategy
	}
	if c.Seed != nil {
		cfg.Policy.Seed = *c.Seed
	}
	if c.BotDelay != nil {
		cfg.SetBotDelay(*c.BotDelay)
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
}

func (c *PlayCmd) Run(g *Globals) error {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	c.apply(cfg, g)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile, cfg.Log.Level, g.Debug)
	if err != nil {
		return err
	}

	mode, err := policy.ParseMode(cfg.Policy.Mode)
	if err != nil {
		return err
	}
	seed := randutil.Resolve(cfg.Policy.Seed)
	logger.Info("Starting table", "policy", mode, "seed", seed, "seats", cfg.Names())

	var (
		strat *strategy.Table
		lut   *engine.Abstraction
	)
	var eg errgroup.Group
	if mode == policy.ModeTable {
		eg.Go(func() error {
			t, err := strategy.Load(cfg.Policy.Strategy)
			if err != nil {
				return err
			}
			if err := t.Validate(); err != nil {
				return fmt.Errorf("strategy %s: %w", cfg.Policy.Strategy, err)
			}
			logger.Info("Loaded strategy table", "path", cfg.Policy.Strategy, "entries", t.Len())
			strat = t
			return nil
		})
	}
	eg.Go(func() error {
		a, err := engine.NewAbstraction(cfg.Engine().ShortDeck, cfg.Policy.Buckets)
		if err != nil {
			return err
		}
		lut = a
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	resolver, err := policy.New(mode, strat, randutil.Split(seed, 1), logger)
	if err != nil {
		return err
	}
	dealer := engine.NewDealer(cfg.Engine(), lut, randutil.Split(seed, 0), cfg.Names(), logger)
	ids := gameid.NewGenerator(quartz.NewReal(), randutil.Split(seed, 2))
	orch, err := table.New(table.FromEngine(dealer), cfg.Bots(), resolver, logger, table.WithHandIDs(ids))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := table.Run(ctx, orch, table.Options{BotDelay: cfg.BotDelay()}); err != nil {
		logger.Error("Table stopped", "error", err)
		return err
	}
	logger.Info("Goodbye")
	return nil
}
