package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/kuhnbot/internal/equilibrium"
	"github.com/lox/kuhnbot/internal/kuhn"
	"github.com/lox/kuhnbot/internal/simulator"
)

type SimulateCmd struct {
	Hands   int    `default:"10000" help:"Number of hands to play"`
	Seed    uint32 `default:"0" help:"Deck shuffling seed (0 for time-based)"`
	Config  string `short:"c" help:"HCL configuration file; all three seats use its strategy" type:"existingfile"`
	Verbose bool   `help:"Log every hand"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	if c.Seed == 0 {
		c.Seed = uint32(time.Now().UnixNano())
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	// Seat seeds are offsets of the player seed so runs stay reproducible
	// from a single configuration.
	var players [3]*equilibrium.Player
	for seat := range players {
		player, err := equilibrium.New(
			kuhn.ThreePlayerGame(), cfg.Strategy.Free(), cfg.Player.Seed+uint32(seat))
		if err != nil {
			return err
		}
		players[seat] = player
	}

	sim := simulator.New(simulator.Config{
		Hands:  c.Hands,
		Seed:   c.Seed,
		Logger: logger,
	}, players)

	start := time.Now()
	results, err := sim.Run()
	if err != nil {
		return err
	}
	duration := time.Since(start)

	fmt.Printf("Hands played: %d (%.0f hands/sec)\n",
		results.Hands, float64(results.Hands)/duration.Seconds())
	fmt.Printf("Showdowns: %d (%.1f%%)\n",
		results.Showdowns, float64(results.Showdowns)/float64(results.Hands)*100)
	for seat := range results.Seats {
		s := results.Seats[seat]
		fmt.Printf("Seat %d: %+d chips (%.4f/hand), %d folds, %d calls, %d raises\n",
			seat, s.Net, results.MeanChips(seat), s.Folds, s.Calls, s.Raises)
	}
	return nil
}
