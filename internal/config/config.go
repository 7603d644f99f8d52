// Package config loads kuhnbot configuration from HCL files: the six free
// strategy parameters plus runtime settings for the player process.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/kuhnbot/internal/equilibrium"
)

// Config is the complete kuhnbot configuration.
type Config struct {
	Player   PlayerSettings `hcl:"player,block"`
	Strategy Strategy       `hcl:"strategy,block"`
}

// PlayerSettings contains runtime configuration for the player process.
type PlayerSettings struct {
	Seed     uint32 `hcl:"seed,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Strategy holds the six free equilibrium parameters. The derived
// parameters are never configured; they are computed during player
// construction.
type Strategy struct {
	B11 float64 `hcl:"b11,optional"`
	B21 float64 `hcl:"b21,optional"`
	B32 float64 `hcl:"b32,optional"`
	C11 float64 `hcl:"c11,optional"`
	C33 float64 `hcl:"c33,optional"`
	C34 float64 `hcl:"c34,optional"`
}

// Free returns the strategy parameters in slot order for player
// construction.
func (s Strategy) Free() [equilibrium.NumFreeParams]float64 {
	return [equilibrium.NumFreeParams]float64{s.B11, s.B21, s.B32, s.C11, s.C33, s.C34}
}

// Default returns the base member of sub-family 1: every free parameter
// zero except c33, which the constraints pin to exactly 1/2.
func Default() *Config {
	return &Config{
		Player: PlayerSettings{
			Seed:     42,
			LogLevel: "info",
		},
		Strategy: Strategy{
			C33: 0.5,
		},
	}
}

// Load reads and decodes an HCL configuration file. Both the player and
// strategy blocks must be present; unset attributes fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if config.Player.LogLevel == "" {
		config.Player.LogLevel = "info"
	}
	return &config, nil
}
