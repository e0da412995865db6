// Package game implements the core round-resolution engine for multi-player
// blackjack.
//
// The main type is RoundEngine, which drives a single round: it collects
// wagers, deals from the shoe, runs each seat's decision loop (including
// split hands), runs the dealer's deterministic loop, settles wagers and
// recycles cards into the scrap pile.
//
// # Basic Usage
//
// Create a table, seat players, and play rounds:
//
//	rng := randutil.New(42)
//	table := game.NewTable("dealer", 100000, game.DefaultRules(), rng)
//	table.AddSeat("Alice", 1000)
//	engine := game.NewRoundEngine(table, game.NewBasicStrategyAgent(10), logger)
//	result, err := engine.PlayRound(nil)
//
// Per-seat agents can be supplied to PlayRound keyed by seat name; seats
// without an entry fall back to the engine's default agent.
//
// # Architecture
//
// RoundEngine delegates to specialized components:
//   - Table: card movement between shoe, hands and scrap, plus the wager ledger
//   - SoftTotal/HardTotal: hand evaluation with bust and blackjack sentinels
//   - Agent: decision making for human and automated seats
//   - EventBus: round events for display layers and tests
//
// All state is single-threaded per table. A table and its engine must not be
// shared across goroutines; run one table per goroutine instead.
package game
