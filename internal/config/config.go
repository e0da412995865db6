// Package config loads table configuration from HCL files, with environment
// overrides sourced from an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/blackjacktable/internal/game"
)

// EnvSeed provides a random seed for deterministic play and simulation
const EnvSeed = "BLACKJACK_SEED"

// Config represents the complete table configuration
type Config struct {
	Table TableSettings `hcl:"table,block"`
	Seats []SeatConfig  `hcl:"seat,block"`
}

// TableSettings contains table-level configuration
type TableSettings struct {
	Decks          int    `hcl:"decks,optional"`
	ScrapLimit     int    `hcl:"scrap_limit,optional"`
	MinBet         int    `hcl:"min_bet,optional"`
	DealerBankroll int    `hcl:"dealer_bankroll,optional"`
	LogLevel       string `hcl:"log_level,optional"`
}

// SeatConfig defines a pre-seated player
type SeatConfig struct {
	Name  string `hcl:"name,label"`
	BuyIn int    `hcl:"buy_in,optional"`
}

// Default returns the default table configuration
func Default() *Config {
	rules := game.DefaultRules()
	return &Config{
		Table: TableSettings{
			Decks:          rules.Decks,
			ScrapLimit:     rules.ScrapLimit,
			MinBet:         rules.MinBet,
			DealerBankroll: 1_000_000,
			LogLevel:       "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults; a present file is decoded and then back-filled with defaults
// for any omitted values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	def := Default()
	if cfg.Table.Decks == 0 {
		cfg.Table.Decks = def.Table.Decks
	}
	if cfg.Table.ScrapLimit == 0 {
		cfg.Table.ScrapLimit = cfg.Table.Decks * 52 / 2
	}
	if cfg.Table.MinBet == 0 {
		cfg.Table.MinBet = def.Table.MinBet
	}
	if cfg.Table.DealerBankroll == 0 {
		cfg.Table.DealerBankroll = def.Table.DealerBankroll
	}
	if cfg.Table.LogLevel == "" {
		cfg.Table.LogLevel = def.Table.LogLevel
	}
	for i := range cfg.Seats {
		if cfg.Seats[i].BuyIn == 0 {
			cfg.Seats[i].BuyIn = 1000
		}
	}
	return &cfg, nil
}

// Rules converts the table settings into engine rules
func (c *Config) Rules() game.Rules {
	return game.Rules{
		Decks:      c.Table.Decks,
		ScrapLimit: c.Table.ScrapLimit,
		MinBet:     c.Table.MinBet,
	}
}

// SeedFromEnv reads BLACKJACK_SEED, loading a .env file first when present.
// Returns fallback when the variable is unset.
func SeedFromEnv(fallback int64) (int64, error) {
	_ = godotenv.Load()
	seedStr := os.Getenv(EnvSeed)
	if seedStr == "" {
		return fallback, nil
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
	}
	return seed, nil
}
