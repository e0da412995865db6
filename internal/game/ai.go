package game

import (
	"fmt"
	"slices"

	"github.com/lox/blackjacktable/internal/deck"
)

// BasicStrategyAgent plays fixed basic strategy from the dealer's upcard and
// its own hand: pairs first, then soft totals, then hard totals. It is fully
// deterministic and is used as the simulator seat and the engine's default
// agent.
type BasicStrategyAgent struct {
	bet int
}

// NewBasicStrategyAgent creates a basic strategy agent with a flat bet
func NewBasicStrategyAgent(bet int) *BasicStrategyAgent {
	return &BasicStrategyAgent{bet: bet}
}

// BetAmount returns the flat bet, clamped to the seat's balance
func (a *BasicStrategyAgent) BetAmount(seat SeatView) int {
	if a.bet > seat.Cash {
		return seat.Cash
	}
	return a.bet
}

// upcardValue maps the dealer's visible card to its chart column: faces
// count 10, the ace counts 11.
func upcardValue(c deck.Card) int {
	if c.Rank == deck.Ace {
		return 11
	}
	if c.Rank > deck.Ten {
		return 10
	}
	return int(c.Rank)
}

// Decide picks an action from the strategy chart. Double and split are only
// chosen when legal and affordable; otherwise the chart degrades to hit or
// stand.
func (a *BasicStrategyAgent) Decide(view TableView, valid []Action) Decision {
	seat := view.Seat
	up := upcardValue(view.DealerUpcard)

	canDouble := slices.Contains(valid, Double) && seat.Cash >= seat.Stake/2
	canSplit := slices.Contains(valid, Split) && seat.Cash >= seat.Stake/4

	if canSplit {
		if action, ok := a.pairAction(seat.Cards[0].Rank, up); ok {
			return action
		}
	}
	if IsSoft(seatHand(seat)) {
		return a.softAction(seat.HardTotal, up, canDouble)
	}
	return a.hardAction(seat.HardTotal, up, canDouble)
}

func seatHand(seat SeatView) *deck.Hand {
	h := deck.NewHand()
	for _, c := range seat.Cards {
		h.Append(c)
	}
	return h
}

// pairAction covers the split rows of the chart. ok is false when the pair
// plays like its hard total instead.
func (a *BasicStrategyAgent) pairAction(rank deck.Rank, up int) (Decision, bool) {
	split := func(why string) (Decision, bool) {
		return Decision{Action: Split, Reasoning: why}, true
	}
	switch {
	case rank == deck.Ace:
		return split("always split aces")
	case rank == deck.Eight:
		return split("always split eights")
	case rank >= deck.Ten:
		return Decision{}, false // twenty stands, never split
	case rank == deck.Nine && up != 7 && up <= 9:
		return split("split nines against a weak upcard")
	case rank == deck.Seven && up <= 7:
		return split("split sevens against seven or less")
	case rank == deck.Six && up <= 6:
		return split("split sixes against a bust card")
	case rank == deck.Two || rank == deck.Three:
		if up <= 7 {
			return split("split low pairs against seven or less")
		}
	}
	return Decision{}, false
}

func (a *BasicStrategyAgent) softAction(total, up int, canDouble bool) Decision {
	switch {
	case total >= 19:
		return Decision{Action: Stand, Reasoning: fmt.Sprintf("stand on soft %d", total)}
	case total == 18:
		if up >= 3 && up <= 6 && canDouble {
			return Decision{Action: Double, Reasoning: "double soft 18 against a bust card"}
		}
		if up <= 8 {
			return Decision{Action: Stand, Reasoning: "stand on soft 18"}
		}
		return Decision{Action: Hit, Reasoning: "hit soft 18 against a strong upcard"}
	case total >= 15 && up >= 4 && up <= 6 && canDouble:
		return Decision{Action: Double, Reasoning: fmt.Sprintf("double soft %d against a bust card", total)}
	default:
		return Decision{Action: Hit, Reasoning: fmt.Sprintf("hit soft %d", total)}
	}
}

func (a *BasicStrategyAgent) hardAction(total, up int, canDouble bool) Decision {
	switch {
	case total >= 17:
		return Decision{Action: Stand, Reasoning: fmt.Sprintf("stand on %d", total)}
	case total >= 13:
		if up <= 6 {
			return Decision{Action: Stand, Reasoning: fmt.Sprintf("stand on %d against a bust card", total)}
		}
		return Decision{Action: Hit, Reasoning: fmt.Sprintf("hit %d against a strong upcard", total)}
	case total == 12:
		if up >= 4 && up <= 6 {
			return Decision{Action: Stand, Reasoning: "stand on 12 against a bust card"}
		}
		return Decision{Action: Hit, Reasoning: "hit 12"}
	case total == 11 && canDouble:
		return Decision{Action: Double, Reasoning: "double 11"}
	case total == 10 && up <= 9 && canDouble:
		return Decision{Action: Double, Reasoning: "double 10 against nine or less"}
	case total == 9 && up >= 3 && up <= 6 && canDouble:
		return Decision{Action: Double, Reasoning: "double 9 against a bust card"}
	default:
		return Decision{Action: Hit, Reasoning: fmt.Sprintf("hit %d", total)}
	}
}
