package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/kuhnbot/cmd/kuhnbot/shared"
	"github.com/lox/kuhnbot/internal/acpc"
	"github.com/lox/kuhnbot/internal/equilibrium"
	"github.com/lox/kuhnbot/internal/kuhn"
)

type PlayCmd struct {
	Host     string `arg:"" help:"Dealer host"`
	Port     int    `arg:"" help:"Dealer port"`
	Config   string `short:"c" help:"HCL configuration file" type:"existingfile"`
	Seed     uint32 `help:"Override the configured RNG seed"`
	LogLevel string `help:"Override the configured log level (debug|info|warn|error)"`
	LogJSON  bool   `help:"Output JSON logs instead of console format"`
}

func (c *PlayCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	seed := cfg.Player.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	level := cfg.Player.LogLevel
	if c.LogLevel != "" {
		level = c.LogLevel
	}
	logger := shared.SetupLogger(level, c.LogJSON)

	player, err := equilibrium.New(kuhn.ThreePlayerGame(), cfg.Strategy.Free(), seed)
	if err != nil {
		return err
	}

	client := acpc.NewClient(fmt.Sprintf("%s:%d", c.Host, c.Port), player, logger)

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	runErr := make(chan error, 1)
	go func() {
		runErr <- client.Run(ctx)
	}()

	select {
	case <-interrupt:
		cancel()
		return nil
	case err := <-runErr:
		return err
	}
}
