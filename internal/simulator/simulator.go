// Package simulator runs many rounds of blackjack with basic-strategy seats
// and aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacktable/internal/game"
	"github.com/lox/blackjacktable/internal/randutil"
	"github.com/lox/blackjacktable/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds int // rounds per table
	Tables int // independent tables run in parallel
	Seats  int // player seats per table
	BuyIn  int
	Bet    int // flat bet per seat per round
	Seed   int64
	Rules  game.Rules
	Logger *log.Logger
	Clock  quartz.Clock // injectable for tests; defaults to the real clock
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator, filling in config defaults
func New(config Config) *Simulator {
	if config.Tables <= 0 {
		config.Tables = 1
	}
	if config.Seats <= 0 {
		config.Seats = 1
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Rules.Decks == 0 {
		config.Rules = game.DefaultRules()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns the merged statistics and the
// wall time spent. Tables are fully independent: each gets its own shoe,
// engine and derived seed, and runs on its own goroutine, so the
// single-threaded table model is preserved.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, time.Duration, error) {
	start := s.config.Clock.Now()

	results := make([]*statistics.Statistics, s.config.Tables)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.config.Tables; i++ {
		g.Go(func() error {
			stats, err := s.runTable(ctx, s.config.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	merged := &statistics.Statistics{}
	for _, stats := range results {
		merged.Merge(stats)
	}
	if err := merged.Validate(); err != nil {
		return nil, 0, fmt.Errorf("statistics validation failed: %w", err)
	}
	return merged, s.config.Clock.Since(start), nil
}

func (s *Simulator) runTable(ctx context.Context, seed int64) (*statistics.Statistics, error) {
	table := game.NewTable("dealer", 100_000_000, s.config.Rules, randutil.New(seed))
	for i := 0; i < s.config.Seats; i++ {
		if _, err := table.AddSeat(fmt.Sprintf("bot-%d", i+1), s.config.BuyIn); err != nil {
			return nil, err
		}
	}
	engine := game.NewRoundEngine(table, game.NewBasicStrategyAgent(s.config.Bet), s.config.Logger)

	stats := &statistics.Statistics{}
	for round := 0; round < s.config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cashBefore := playerCash(table)
		result, err := engine.PlayRound(nil)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}
		stats.Add(record(result, playerCash(table)-cashBefore, seed))
	}
	return stats, nil
}

func playerCash(table *game.Table) int {
	total := 0
	for _, seat := range table.PlayerSeats() {
		total += seat.Cash
	}
	return total
}

func record(result *game.RoundResult, net int, seed int64) statistics.RoundRecord {
	rec := statistics.RoundRecord{Net: net, Seed: seed}
	for _, seat := range result.Seats {
		rec.Hands++
		switch {
		case seat.Profit == seat.Pot && seat.Pot > 0:
			rec.Wins++
		case seat.Profit > 0:
			rec.Pushes++
		default:
			rec.Losses++
		}
		if seat.Blackjack {
			rec.Blackjacks++
		}
		if seat.Busted {
			rec.Busts++
		}
		if seat.FromSplit {
			rec.Splits++
		}
	}
	return rec
}
