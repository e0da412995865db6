package game

import (
	"fmt"

	"github.com/lox/blackjacktable/internal/deck"
)

// Action represents a player action at a decision point
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Decision represents a player's decision with reasoning
type Decision struct {
	Action    Action
	Reasoning string // Human-readable explanation
}

// SeatView is the read-only state of a seat for decision making
type SeatView struct {
	Name      string
	Cash      int
	Stake     int // full staked pot for this seat
	Cards     []deck.Card
	HardTotal int
	SoftTotal int
	IsSplit   bool
}

// TableView is the read-only state presented to an agent at a decision
// point. Only the dealer's upcard is visible, as at a real table.
type TableView struct {
	Seat         SeatView
	DealerUpcard deck.Card
	MinBet       int
	ShoeCards    int
	ScrapCards   int
}

// Agent represents any entity (human or automated) that can bet and act for
// a seat. Agents receive immutable views and return choices; all state
// mutation happens in the engine.
type Agent interface {
	// BetAmount returns the wager for the coming round. It must be
	// non-negative and within the seat's balance.
	BetAmount(seat SeatView) int

	// Decide picks one of the valid actions for the current hand
	Decide(view TableView, valid []Action) Decision
}

func (t *Table) seatView(seat *Seat) SeatView {
	return SeatView{
		Name:      seat.Name,
		Cash:      t.fundingSeat(seat).Cash,
		Stake:     t.ledger[seat.ID],
		Cards:     seat.Hand.Cards(),
		HardTotal: HardTotal(seat.Hand),
		SoftTotal: SoftTotal(seat.Hand),
		IsSplit:   seat.IsSplit(),
	}
}

func (t *Table) tableView(seat *Seat) TableView {
	view := TableView{
		Seat:       t.seatView(seat),
		MinBet:     t.rules.MinBet,
		ShoeCards:  t.shoe.Len(),
		ScrapCards: t.scrap.Len(),
	}
	if t.Dealer().Hand.Len() > 0 {
		view.DealerUpcard = t.Dealer().Hand.At(0)
	}
	return view
}
