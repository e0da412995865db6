package game

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// RoundEngine drives complete rounds of blackjack on a table. Decisions come
// from agents; the engine owns all state mutation and never performs
// terminal I/O.
type RoundEngine struct {
	table        *Table
	defaultAgent Agent
	logger       *log.Logger
	eventBus     EventBus
}

// NewRoundEngine creates a round engine with a default agent used for any
// seat without an explicit agent
func NewRoundEngine(table *Table, defaultAgent Agent, logger *log.Logger) *RoundEngine {
	return &RoundEngine{
		table:        table,
		defaultAgent: defaultAgent,
		logger:       logger,
		eventBus:     NewEventBus(),
	}
}

// EventBus returns the bus for subscribing to round events
func (e *RoundEngine) EventBus() EventBus {
	return e.eventBus
}

// Table returns the engine's table
func (e *RoundEngine) Table() *Table {
	return e.table
}

// SeatResult records the outcome of one seat in a completed round
type SeatResult struct {
	Name      string
	Total     int // final hard total, including sentinels
	Pot       int // staked pot at settlement
	Profit    int // seat's share of the pot
	Busted    bool
	Blackjack bool
	FromSplit bool
}

// RoundResult contains the results of a completed round
type RoundResult struct {
	Seats       []SeatResult
	DealerTotal int
	Reshuffled  bool
}

// PlayRound runs one complete round: wagers, deal, every seat's decision
// loop, the dealer loop, settlement and cleanup. Per-seat agents are keyed
// by seat name; missing entries use the default agent.
//
// An exhausted shoe aborts the round with ErrShoeEmpty; the scrap recycle
// threshold makes that practically unreachable at sane table sizes.
func (e *RoundEngine) PlayRound(agents map[string]Agent) (*RoundResult, error) {
	players := e.table.PlayerSeats()
	if len(players) == 0 {
		return nil, errors.New("no seated players")
	}

	e.collectBets(players, agents)

	if err := e.table.DealNTo(players, 2); err != nil {
		return nil, err
	}
	if err := e.table.DealNTo([]*Seat{e.table.Dealer()}, 2); err != nil {
		return nil, err
	}

	e.eventBus.Publish(e.roundStartEvent(players))
	e.logger.Debug("round started",
		"players", len(players),
		"upcard", e.table.Dealer().Hand.At(0),
		"shoe", e.table.ShoeLen())

	// Work queue of seats awaiting decisions. Splits append their new seat
	// here instead of recursing, so re-split depth is bounded by queue length.
	queue := slices.Clone(players)
	for i := 0; i < len(queue); i++ {
		if err := e.playSeat(queue[i], e.agentFor(queue[i], agents), &queue); err != nil {
			return nil, err
		}
	}

	if err := e.playDealer(); err != nil {
		return nil, err
	}

	result := e.settle()
	result.Reshuffled = e.cleanup()

	if err := e.table.ValidateCardConservation(); err != nil {
		return nil, err
	}
	if err := e.table.ValidateLedgerSettled(); err != nil {
		return nil, err
	}

	e.eventBus.Publish(RoundEndEvent{
		DealerTotal: result.DealerTotal,
		ShoeCards:   e.table.ShoeLen(),
		ScrapCards:  e.table.ScrapLen(),
		Reshuffled:  result.Reshuffled,
		timestamp:   time.Now(),
	})
	return result, nil
}

func (e *RoundEngine) agentFor(seat *Seat, agents map[string]Agent) Agent {
	funding := e.table.fundingSeat(seat)
	if agents != nil && agents[funding.Name] != nil {
		return agents[funding.Name]
	}
	return e.defaultAgent
}

// collectBets escrows each seat's wager. A rejected bet is logged and
// replaced with a zero bet rather than aborting the round; interactive
// front-ends validate before submitting.
func (e *RoundEngine) collectBets(players []*Seat, agents map[string]Agent) {
	for _, seat := range players {
		agent := e.agentFor(seat, agents)
		amount := agent.BetAmount(e.table.seatView(seat))
		if err := e.table.PlaceBet(seat, seat, amount); err != nil {
			e.logger.Error("rejected bet", "seat", seat.Name, "amount", amount, "error", err)
			_ = e.table.PlaceBet(seat, seat, 0)
		}
		e.logger.Debug("bet placed", "seat", seat.Name, "amount", amount, "balance", seat.Cash)
	}
}

func (e *RoundEngine) roundStartEvent(players []*Seat) RoundStartEvent {
	names := make([]string, 0, len(players))
	wagers := make(map[string]int, len(players))
	for _, s := range players {
		names = append(names, s.Name)
		wagers[s.Name] = e.table.Stake(s.ID)
	}
	return RoundStartEvent{
		Seats:        names,
		Wagers:       wagers,
		DealerUpcard: e.table.Dealer().Hand.At(0),
		timestamp:    time.Now(),
	}
}

// validActions returns the legal action set for a seat. Hit and stand are
// always legal; double and split require a fresh two-card hand, split
// additionally a pair. Either is offered only when the funding seat can
// cover it, so an unaffordable raise never reaches the agent as a choice
// and interactive front-ends prompt among playable actions only.
func (t *Table) validActions(seat *Seat) []Action {
	actions := []Action{Hit, Stand}
	if seat.Hand.Len() != 2 {
		return actions
	}
	stake := t.ledger[seat.ID] / 2
	cash := t.fundingSeat(seat).Cash
	if cash >= stake {
		actions = append(actions, Double)
	}
	if seat.Hand.At(0).Rank == seat.Hand.At(1).Rank && cash >= stake/2 {
		actions = append(actions, Split)
	}
	return actions
}

// playSeat runs one seat's decision loop to a terminal state. Splits push
// the spawned seat onto the work queue and leave the parent in the loop
// with its refreshed two-card hand.
func (e *RoundEngine) playSeat(seat *Seat, agent Agent, queue *[]*Seat) error {
	for {
		if HardTotal(seat.Hand) == BustTotal {
			return nil
		}

		valid := e.table.validActions(seat)
		decision := agent.Decide(e.table.tableView(seat), valid)
		if !slices.Contains(valid, decision.Action) {
			e.logger.Error("illegal action from agent",
				"seat", seat.Name, "action", decision.Action, "valid", valid)
			decision = Decision{Action: Stand, Reasoning: "fallback after illegal action"}
		}

		switch decision.Action {
		case Stand:
			e.publishPlayerAction(seat, decision, PlayerActionEvent{})
			return nil

		case Hit:
			card, err := e.table.DealOneTo(seat)
			if err != nil {
				return err
			}
			busted := HardTotal(seat.Hand) == BustTotal
			e.publishPlayerAction(seat, decision, PlayerActionEvent{Card: card, Busted: busted})
			if busted {
				return nil
			}

		case Double:
			card, err := e.table.Double(seat)
			if err != nil {
				if errors.Is(err, ErrShoeEmpty) {
					return err
				}
				e.logger.Error("rejected double", "seat", seat.Name, "error", err)
				e.publishPlayerAction(seat, Decision{Action: Stand, Reasoning: "fallback after rejected double"}, PlayerActionEvent{})
				return nil
			}
			e.publishPlayerAction(seat, decision, PlayerActionEvent{
				Card:   card,
				Busted: HardTotal(seat.Hand) == BustTotal,
			})
			return nil

		case Split:
			child, err := e.table.Split(seat)
			if err != nil {
				if errors.Is(err, ErrShoeEmpty) {
					return err
				}
				e.logger.Error("rejected split", "seat", seat.Name, "error", err)
				e.publishPlayerAction(seat, Decision{Action: Stand, Reasoning: "fallback after rejected split"}, PlayerActionEvent{})
				return nil
			}
			*queue = append(*queue, child)
			e.publishPlayerAction(seat, decision, PlayerActionEvent{})
			e.logger.Debug("seat split", "seat", seat.Name, "child", child.Name,
				"parentStake", e.table.Stake(seat.ID), "childStake", e.table.Stake(child.ID))
		}
	}
}

func (e *RoundEngine) publishPlayerAction(seat *Seat, decision Decision, partial PlayerActionEvent) {
	partial.Seat = seat.Name
	partial.Action = decision.Action
	partial.Reasoning = decision.Reasoning
	partial.HardTotal = HardTotal(seat.Hand)
	partial.SoftTotal = SoftTotal(seat.Hand)
	partial.timestamp = time.Now()
	e.eventBus.Publish(partial)
	e.logger.Debug("player action",
		"seat", seat.Name,
		"action", decision.Action,
		"hard", partial.HardTotal,
		"soft", partial.SoftTotal,
		"reasoning", decision.Reasoning)
}

// playDealer runs the dealer's deterministic loop: hit below 17, hit soft
// 17, stand otherwise. No agent is consulted.
func (e *RoundEngine) playDealer() error {
	dealer := e.table.Dealer()
	for {
		hard := HardTotal(dealer.Hand)
		soft := SoftTotal(dealer.Hand)

		if hard == BustTotal {
			e.publishDealerAction(Stand, hard, soft, true)
			return nil
		}
		if hard < 17 || (hard == 17 && soft == 7) {
			if _, err := e.table.DealOneTo(dealer); err != nil {
				return err
			}
			e.publishDealerAction(Hit, HardTotal(dealer.Hand), SoftTotal(dealer.Hand),
				HardTotal(dealer.Hand) == BustTotal)
			continue
		}
		e.publishDealerAction(Stand, hard, soft, false)
		return nil
	}
}

func (e *RoundEngine) publishDealerAction(action Action, hard, soft int, busted bool) {
	dealer := e.table.Dealer()
	e.eventBus.Publish(DealerActionEvent{
		Action:    action,
		Cards:     dealer.Hand.Cards(),
		HardTotal: hard,
		SoftTotal: soft,
		Busted:    busted,
		timestamp: time.Now(),
	})
	e.logger.Debug("dealer action", "action", action, "hard", hard, "soft", soft, "busted", busted)
}

// settle resolves every non-dealer seat against the dealer's total, then
// folds each transient split seat's balance back into its parent and
// removes it from the table.
func (e *RoundEngine) settle() *RoundResult {
	dealerTotal := HardTotal(e.table.Dealer().Hand)
	result := &RoundResult{DealerTotal: dealerTotal}

	for _, seat := range e.table.PlayerSeats() {
		total := HardTotal(seat.Hand)
		pot := e.table.Stake(seat.ID)
		playerProfit, dealerProfit := e.table.Settle(seat, dealerTotal)

		result.Seats = append(result.Seats, SeatResult{
			Name:      seat.Name,
			Total:     total,
			Pot:       pot,
			Profit:    playerProfit,
			Busted:    total == BustTotal,
			Blackjack: total == BlackjackTotal,
			FromSplit: seat.IsSplit(),
		})
		e.eventBus.Publish(SettlementEvent{
			Seat:         seat.Name,
			SeatTotal:    total,
			DealerTotal:  dealerTotal,
			Pot:          pot,
			PlayerProfit: playerProfit,
			DealerProfit: dealerProfit,
			timestamp:    time.Now(),
		})
		e.logger.Debug("settled",
			"seat", seat.Name, "total", total, "dealer", dealerTotal,
			"pot", pot, "profit", playerProfit)
	}

	// Fold split seats youngest-first so chains of re-splits collapse onto
	// their real ancestor.
	players := e.table.PlayerSeats()
	for i := len(players) - 1; i >= 0; i-- {
		seat := players[i]
		if !seat.IsSplit() {
			continue
		}
		parent, ok := e.table.SeatByID(seat.Parent())
		if ok {
			parent.Cash += seat.Cash
			seat.Cash = 0
		}
		e.table.MoveHandToScrap(seat)
		if _, err := e.table.RemoveSeat(seat.Name); err != nil {
			e.logger.Error("failed to remove split seat", "seat", seat.Name, "error", err)
		}
	}
	return result
}

// cleanup scraps every remaining hand and recycles the scrap pile into the
// shoe once it reaches the configured threshold. Returns true when the shoe
// was rebuilt and reshuffled.
func (e *RoundEngine) cleanup() bool {
	for _, seat := range e.table.PlayerSeats() {
		e.table.MoveHandToScrap(seat)
	}
	e.table.MoveHandToScrap(e.table.Dealer())

	if e.table.ScrapLen() >= e.table.Rules().ScrapLimit {
		e.table.RecycleScrapIntoShoe()
		e.table.ShuffleShoe()
		e.logger.Debug("recycled scrap into shoe", "shoe", e.table.ShoeLen())
		return true
	}
	return false
}

// ProfitByName sums the profits of a real seat and all split seats folded
// back into it this round
func (r *RoundResult) ProfitByName(name string) int {
	profit := 0
	for _, s := range r.Seats {
		if s.Name == name || (s.FromSplit && strings.HasPrefix(s.Name, name+":")) {
			profit += s.Profit
		}
	}
	return profit
}
