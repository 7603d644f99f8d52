package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/kuhnbot/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Connect to an ACPC dealer and play"`
	Probs    ProbsCmd         `cmd:"" help:"Print the action distribution for a match state"`
	Simulate SimulateCmd      `cmd:"" help:"Play hands locally between three players"`
	Check    CheckCmd         `cmd:"" help:"Validate a configuration and print the full parameter vector"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kuhnbot"),
		kong.Description("Equilibrium player for three-player Kuhn poker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the named file, or falls back to defaults when no file
// was given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
