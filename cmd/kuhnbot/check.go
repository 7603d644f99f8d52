package main

import (
	"fmt"

	"github.com/lox/kuhnbot/internal/equilibrium"
	"github.com/lox/kuhnbot/internal/kuhn"
)

type CheckCmd struct {
	Config string `arg:"" help:"HCL configuration file" type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	player, err := equilibrium.New(kuhn.ThreePlayerGame(), cfg.Strategy.Free(), cfg.Player.Seed)
	if err != nil {
		return err
	}

	fmt.Printf("configuration ok\n%s\n", player.Params())
	return nil
}
