package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/asciiholdem/internal/config"
	"github.com/lox/asciiholdem/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayCmdOverridesConfig(t *testing.T) {
	cfg := config.Default()
	seed := int64(7)
	delay := 50 * time.Millisecond
	cmd := PlayCmd{Policy: "uniform", Strategy: "other.json", Seed: &seed, BotDelay: &delay}

	cmd.apply(cfg, &Globals{LogFile: "x.log"})

	assert.Equal(t, "uniform", cfg.Policy.Mode)
	assert.Equal(t, "other.json", cfg.Policy.Strategy)
	assert.Equal(t, int64(7), cfg.Policy.Seed)
	assert.Equal(t, delay, cfg.BotDelay())
	assert.Equal(t, "x.log", cfg.Log.File)
}

func TestPlayCmdKeepsConfigWithoutFlags(t *testing.T) {
	cfg := config.Default()
	(&PlayCmd{}).apply(cfg, &Globals{})
	assert.Equal(t, config.Default(), cfg)
}

func TestStrategyUniformWritesValidTable(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "uniform.json.gz")
	g := &Globals{Config: filepath.Join(dir, "missing.hcl")}

	require.NoError(t, (&StrategyUniformCmd{Path: out}).Run(g))
	require.NoError(t, (&StrategyCheckCmd{Path: out}).Run(g))

	table, err := strategy.Load(out)
	require.NoError(t, err)
	require.NoError(t, table.Validate())

	d, ok := table.Lookup("pre_flop|AKs|")
	require.True(t, ok)
	assert.InDelta(t, 1.0/3, d["fold"], 1e-9)
	_, ok = table.Lookup("pre_flop|AKs|cc")
	assert.True(t, ok)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn", false)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger, err = newLogger(&buf, "warn", true)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	_, err = newLogger(&buf, "loud", false)
	assert.Error(t, err)
}
