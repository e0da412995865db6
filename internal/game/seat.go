package game

import (
	"fmt"

	"github.com/lox/blackjacktable/internal/deck"
)

// SeatID is an opaque identifier for a seat. The wager ledger is keyed by
// SeatID rather than by name or pointer identity.
type SeatID int

// NoSeat is the zero SeatID, used for the parent of real seats.
const NoSeat SeatID = 0

// Seat represents a position at the table: a name, a chip balance and a
// hand. The dealer occupies a seat like any player. A seat is either real
// (created at join time, persists across rounds) or transient (spawned when
// a pair is split, folded back into its parent at settlement).
type Seat struct {
	ID   SeatID
	Name string
	Cash int
	Hand *deck.Hand

	parent SeatID
}

// IsSplit returns true for transient split seats
func (s *Seat) IsSplit() bool {
	return s.parent != NoSeat
}

// Parent returns the id of the seat this split seat was spawned from,
// or NoSeat for real seats
func (s *Seat) Parent() SeatID {
	return s.parent
}

func (s *Seat) String() string {
	if s.Hand.Len() == 0 {
		return fmt.Sprintf("%s, $%d", s.Name, s.Cash)
	}
	return fmt.Sprintf("%s, $%d, %v", s.Name, s.Cash, s.Hand.Cards())
}
