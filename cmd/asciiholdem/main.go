package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command
type Globals struct {
	Config  string `short:"c" default:"asciiholdem.hcl" env:"ASCIIHOLDEM_CONFIG" help:"Path to HCL configuration file"`
	LogFile string `env:"ASCIIHOLDEM_LOG_FILE" help:"Write logs to this file (overrides the config)"`
	Debug   bool   `env:"ASCIIHOLDEM_DEBUG" help:"Enable debug logging"`
	NoColor bool   `env:"ASCIIHOLDEM_NO_COLOR" help:"Disable colour output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a hand against the bots"`
	Strategy StrategyCmd      `cmd:"" help:"Inspect or create strategy tables"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("asciiholdem"),
		kong.Description("Three-handed limit hold'em in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
