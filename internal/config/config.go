package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/asciiholdem/internal/engine"
	"github.com/lox/asciiholdem/internal/policy"
)

// Seats is the number of seats every table has
const Seats = 3

// Config represents the complete game configuration
type Config struct {
	Table  *TableSettings  `hcl:"table,block"`
	Seats  []SeatConfig    `hcl:"seat,block"`
	Policy *PolicySettings `hcl:"policy,block"`
	Log    *LogSettings    `hcl:"log,block"`
}

// TableSettings holds the betting structure
type TableSettings struct {
	SmallBlind    int   `hcl:"small_blind,optional"`
	BigBlind      int   `hcl:"big_blind,optional"`
	StartingStack int   `hcl:"starting_stack,optional"`
	ShortDeck     *bool `hcl:"short_deck,optional"`
	MaxRaises     int   `hcl:"max_raises,optional"`
}

// SeatConfig names a seat and says who plays it
type SeatConfig struct {
	Name string `hcl:"name,label"`
	Bot  bool   `hcl:"bot,optional"`
}

// PolicySettings configures how bots choose actions
type PolicySettings struct {
	Mode       string `hcl:"mode,optional"`
	Strategy   string `hcl:"strategy,optional"`
	Seed       int64  `hcl:"seed,optional"`
	BotDelayMS *int   `hcl:"bot_delay_ms,optional"`
	Buckets    int    `hcl:"buckets,optional"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{
		Seats: []SeatConfig{
			{Name: "You"},
			{Name: "Bot 1", Bot: true},
			{Name: "Bot 2", Bot: true},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(config.Seats) == 0 {
		config.Seats = Default().Seats
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Policy == nil {
		c.Policy = &PolicySettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}

	def := engine.DefaultConfig()
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = def.SmallBlind
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = def.BigBlind
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = def.StartingStack
	}
	if c.Table.ShortDeck == nil {
		c.Table.ShortDeck = &def.ShortDeck
	}
	if c.Table.MaxRaises == 0 {
		c.Table.MaxRaises = def.MaxRaises
	}

	if c.Policy.Mode == "" {
		c.Policy.Mode = string(policy.ModeTable)
	}
	if mode, err := policy.ParseMode(c.Policy.Mode); err == nil && mode == policy.ModeTable && c.Policy.Strategy == "" {
		c.Policy.Strategy = "strategy.json.gz"
	}
	if c.Policy.BotDelayMS == nil {
		delay := 0
		c.Policy.BotDelayMS = &delay
	}
	if c.Policy.Buckets == 0 {
		c.Policy.Buckets = 8
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "asciiholdem.log"
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	if len(c.Seats) != Seats {
		return fmt.Errorf("exactly %d seats must be configured, got %d", Seats, len(c.Seats))
	}
	seen := make(map[string]bool, len(c.Seats))
	for _, s := range c.Seats {
		if s.Name == "" {
			return fmt.Errorf("seat names must not be empty")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate seat %q", s.Name)
		}
		seen[s.Name] = true
	}

	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}

	mode, err := policy.ParseMode(c.Policy.Mode)
	if err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	if mode == policy.ModeTable && c.Policy.Strategy == "" {
		return fmt.Errorf("policy: a strategy file is required for %q mode", mode)
	}
	if c.BotDelay() < 0 {
		return fmt.Errorf("policy: bot delay must not be negative")
	}
	if c.Policy.Buckets < 1 {
		return fmt.Errorf("policy: buckets must be positive")
	}
	return nil
}

// Engine returns the betting structure as engine settings
func (c *Config) Engine() engine.Config {
	shortDeck := true
	if c.Table.ShortDeck != nil {
		shortDeck = *c.Table.ShortDeck
	}
	return engine.Config{
		SmallBlind:    c.Table.SmallBlind,
		BigBlind:      c.Table.BigBlind,
		StartingStack: c.Table.StartingStack,
		MaxRaises:     c.Table.MaxRaises,
		ShortDeck:     shortDeck,
	}
}

// Names returns the seat names in seat order
func (c *Config) Names() []string {
	names := make([]string, len(c.Seats))
	for i, s := range c.Seats {
		names[i] = s.Name
	}
	return names
}

// Bots reports, by seat, whether the seat is played by a bot
func (c *Config) Bots() []bool {
	bots := make([]bool, len(c.Seats))
	for i, s := range c.Seats {
		bots[i] = s.Bot
	}
	return bots
}

// BotDelay returns the pause before each bot decision
func (c *Config) BotDelay() time.Duration {
	if c.Policy.BotDelayMS == nil {
		return 0
	}
	return time.Duration(*c.Policy.BotDelayMS) * time.Millisecond
}

// SetBotDelay overrides the pause before each bot decision
func (c *Config) SetBotDelay(d time.Duration) {
	ms := int(d / time.Millisecond)
	c.Policy.BotDelayMS = &ms
}
