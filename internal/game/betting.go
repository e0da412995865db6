package game

import (
	"fmt"

	"github.com/lox/blackjacktable/internal/deck"
)

// PlaceBet escrows amount from the payer's balance and stakes the full
// contested pot (twice the bet: the player's chips plus the house's matching
// stake) on the seat's outcome. The house's half is only realized at
// settlement; the payer is the only party debited here.
func (t *Table) PlaceBet(seat, payer *Seat, amount int) error {
	if amount < 0 {
		return fmt.Errorf("bet %d: %w", amount, ErrIllegalAction)
	}
	if payer.Cash < amount {
		return fmt.Errorf("bet %d with balance %d: %w", amount, payer.Cash, ErrInsufficientFunds)
	}
	payer.Cash -= amount
	t.ledger[seat.ID] += 2 * amount
	return nil
}

// fundingSeat walks the parent chain of a transient seat to the real seat
// whose balance backs it
func (t *Table) fundingSeat(seat *Seat) *Seat {
	for seat.IsSplit() {
		parent, ok := t.SeatByID(seat.parent)
		if !ok {
			break
		}
		seat = parent
	}
	return seat
}

// Split divides a two-card pair into two hands. A transient seat is spawned
// after the parent with the parent's second card, half the parent's staked
// pot moves to the new seat's ledger entry, half the raw bet is withdrawn
// from the funding seat's balance, and each hand is dealt one card. Both
// hands then play on independently; re-splitting a freshly dealt pair is
// allowed without limit.
func (t *Table) Split(seat *Seat) (*Seat, error) {
	if seat.Hand.Len() != 2 {
		return nil, fmt.Errorf("split with %d cards: %w", seat.Hand.Len(), ErrIllegalAction)
	}
	if seat.Hand.At(0).Rank != seat.Hand.At(1).Rank {
		return nil, fmt.Errorf("split %s/%s: %w", seat.Hand.At(0), seat.Hand.At(1), ErrIllegalAction)
	}
	pot := t.ledger[seat.ID]
	stake := pot / 2
	payer := t.fundingSeat(seat)
	if payer.Cash < stake/2 {
		return nil, fmt.Errorf("split needs %d with balance %d: %w", stake/2, payer.Cash, ErrInsufficientFunds)
	}
	if t.shoe.Len() < 2 {
		return nil, fmt.Errorf("split: %w", ErrShoeEmpty)
	}

	child := t.addSplitSeat(seat)
	if err := t.MoveCard(seat.Hand, 1, child.Hand); err != nil {
		return nil, err
	}
	payer.Cash -= stake / 2
	t.ledger[seat.ID] = pot - stake
	t.ledger[child.ID] = stake
	if _, err := t.DealOneTo(seat); err != nil {
		return nil, err
	}
	if _, err := t.DealOneTo(child); err != nil {
		return nil, err
	}
	return child, nil
}

// Double escalates a fresh two-card hand: an additional bet of half the
// staked pot is collected, doubling the pot, and exactly one more card is
// dealt. The caller's turn ends after the forced card.
func (t *Table) Double(seat *Seat) (deck.Card, error) {
	if seat.Hand.Len() != 2 {
		return deck.Card{}, fmt.Errorf("double with %d cards: %w", seat.Hand.Len(), ErrIllegalAction)
	}
	raise := t.ledger[seat.ID] / 2
	payer := t.fundingSeat(seat)
	if payer.Cash < raise {
		return deck.Card{}, fmt.Errorf("double needs %d with balance %d: %w", raise, payer.Cash, ErrInsufficientFunds)
	}
	if t.shoe.Len() < 1 {
		return deck.Card{}, fmt.Errorf("double: %w", ErrShoeEmpty)
	}
	if err := t.PlaceBet(seat, payer, raise); err != nil {
		return deck.Card{}, err
	}
	return t.DealOneTo(seat)
}

// Settle resolves a seat against the dealer's final total and zeroes its
// ledger entry. The pot splits into halves: one to the seat when it ties the
// dealer, both when it beats the dealer. The two profits always sum to the
// pot exactly; an odd pot pushes the spare chip to the house.
func (t *Table) Settle(seat *Seat, dealerTotal int) (playerProfit, dealerProfit int) {
	pot := t.ledger[seat.ID]
	total := HardTotal(seat.Hand)
	halves := 0
	if total >= dealerTotal {
		halves++
	}
	if total > dealerTotal {
		halves++
	}
	playerProfit = pot * halves / 2
	dealerProfit = pot - playerProfit
	seat.Cash += playerProfit
	t.Dealer().Cash += dealerProfit
	t.ledger[seat.ID] = 0
	return playerProfit, dealerProfit
}
