package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pterm/pterm"

	"github.com/lox/blackjacktable/internal/config"
	"github.com/lox/blackjacktable/internal/game"
	"github.com/lox/blackjacktable/internal/randutil"
)

// PlayCmd runs an interactive table on the terminal
type PlayCmd struct {
	Config string `help:"Path to HCL table config" default:"table.hcl"`
	Seed   int64  `help:"Random seed (0 = time-based)" default:"0"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	seed, err := config.SeedFromEnv(c.Seed)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := log.New(os.Stderr)
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	table := game.NewTable("dealer", cfg.Table.DealerBankroll, cfg.Rules(), randutil.New(seed))
	for _, seat := range cfg.Seats {
		if _, err := table.AddSeat(seat.Name, seat.BuyIn); err != nil {
			return err
		}
	}
	if err := collectPlayers(table); err != nil {
		return err
	}
	if len(table.PlayerSeats()) == 0 {
		pterm.Warning.Println("no players seated")
		return nil
	}

	engine := game.NewRoundEngine(table, game.NewBasicStrategyAgent(cfg.Table.MinBet), logger)
	printer := newConsolePrinter()
	engine.EventBus().Subscribe(printer)

	agents := make(map[string]game.Agent)
	for _, seat := range table.PlayerSeats() {
		agents[seat.Name] = game.NewHumanAgent(promptBet(cfg.Table.MinBet), promptAction(printer.display))
	}

	for {
		printer.round++
		if _, err := engine.PlayRound(agents); err != nil {
			return err
		}
		for _, seat := range table.PlayerSeats() {
			pterm.Info.Printfln("%s now has $%d", seat.Name, seat.Cash)
		}
		again, err := pterm.DefaultInteractiveConfirm.Show("Play another round?")
		if err != nil || !again {
			return nil
		}
	}
}

// collectPlayers seats players interactively until the user declines
func collectPlayers(table *game.Table) error {
	for {
		more, err := pterm.DefaultInteractiveConfirm.Show("Add player?")
		if err != nil || !more {
			return nil
		}
		name, err := pterm.DefaultInteractiveTextInput.Show("Player name")
		if err != nil {
			return err
		}
		buyIn, err := promptAmount("Buy-in", 1000)
		if err != nil {
			return err
		}
		if _, err := table.AddSeat(name, buyIn); err != nil {
			pterm.Error.Println(err)
			continue
		}
		pterm.Success.Printfln("%s has entered the game with $%d", name, buyIn)
	}
}

func promptAmount(label string, fallback int) (int, error) {
	text, err := pterm.DefaultInteractiveTextInput.WithDefaultValue(strconv.Itoa(fallback)).Show(label)
	if err != nil {
		return 0, err
	}
	amount, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	return amount, nil
}

// promptBet asks for a wager until it fits the seat's balance
func promptBet(minBet int) func(seat game.SeatView) (int, error) {
	return func(seat game.SeatView) (int, error) {
		for {
			amount, err := promptAmount(
				fmt.Sprintf("%s's bet (balance $%d)", seat.Name, seat.Cash), minBet)
			if err != nil {
				return 0, err
			}
			if amount >= 0 && amount <= seat.Cash {
				return amount, nil
			}
			pterm.Error.Printfln("bet must be between 0 and %d", seat.Cash)
		}
	}
}

// promptAction shows the current hand and the legal action set
func promptAction(display *game.TableDisplay) func(view game.TableView, valid []game.Action) (game.Action, error) {
	return func(view game.TableView, valid []game.Action) (game.Action, error) {
		pterm.Println(display.RenderSeat(view.Seat) + "  dealer shows " + display.RenderCard(view.DealerUpcard))
		options := make([]string, 0, len(valid))
		for _, a := range valid {
			options = append(options, a.String())
		}
		chosen, err := pterm.DefaultInteractiveSelect.WithOptions(options).Show(view.Seat.Name + "'s action")
		if err != nil {
			return game.Stand, err
		}
		for _, a := range valid {
			if a.String() == chosen {
				return a, nil
			}
		}
		return game.Stand, nil
	}
}
