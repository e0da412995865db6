package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjacktable/internal/config"
	"github.com/lox/blackjacktable/internal/simulator"
)

// SimulateCmd runs basic-strategy simulations and prints aggregate results
type SimulateCmd struct {
	Rounds int    `help:"Rounds per table" default:"1000"`
	Tables int    `help:"Parallel independent tables" default:"1"`
	Seats  int    `help:"Player seats per table" default:"3"`
	BuyIn  int    `help:"Starting chips per seat" default:"10000"`
	Bet    int    `help:"Flat bet per round" default:"10"`
	Seed   int64  `help:"Random seed" default:"1"`
	Config string `help:"Path to HCL table config" default:"table.hcl"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	seed, err := config.SeedFromEnv(c.Seed)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr)
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	sim := simulator.New(simulator.Config{
		Rounds: c.Rounds,
		Tables: c.Tables,
		Seats:  c.Seats,
		BuyIn:  c.BuyIn,
		Bet:    c.Bet,
		Seed:   seed,
		Rules:  cfg.Rules(),
		Logger: logger,
	})
	stats, elapsed, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Print(stats.Summary())
	if elapsed > 0 {
		fmt.Printf("elapsed: %s (%.0f rounds/sec)\n",
			elapsed.Round(time.Millisecond), float64(stats.Rounds)/elapsed.Seconds())
	}
	return nil
}
