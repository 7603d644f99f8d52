package main

import (
	"fmt"

	"github.com/lox/kuhnbot/internal/equilibrium"
	"github.com/lox/kuhnbot/internal/kuhn"
)

type ProbsCmd struct {
	MatchState string `arg:"" help:"MATCHSTATE line as sent by the dealer"`
	Config     string `short:"c" help:"HCL configuration file" type:"existingfile"`
}

func (c *ProbsCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	view, err := kuhn.ParseMatchState(c.MatchState)
	if err != nil {
		return err
	}
	if !view.OurTurn() {
		return fmt.Errorf("seat %d is not due to act", view.Viewer)
	}

	player, err := equilibrium.New(kuhn.ThreePlayerGame(), cfg.Strategy.Free(), cfg.Player.Seed)
	if err != nil {
		return err
	}

	probs := player.ActionProbs(view)
	for t := kuhn.Fold; t < kuhn.NumActionTypes; t++ {
		fmt.Printf("%-5s %v\n", t.String(), probs[t])
	}
	return nil
}
