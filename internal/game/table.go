package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/blackjacktable/internal/deck"
)

// Rules holds the fixed table parameters. The playing rules themselves
// (dealer hits soft 17, one card dealt to each half of a split, double only
// on a fresh two-card hand) are not configurable.
type Rules struct {
	Decks      int // number of 52-card decks in the shoe
	ScrapLimit int // recycle scrap into the shoe once it reaches this size
	MinBet     int
}

// DefaultRules returns the standard six-deck table
func DefaultRules() Rules {
	return Rules{
		Decks:      6,
		ScrapLimit: 6 * 52 / 2,
		MinBet:     1,
	}
}

// Table owns the shoe, the scrap pile, the seats and the wager ledger, and
// performs all card movement between them. The dealer is always the first
// seat. Tables are not safe for concurrent use.
type Table struct {
	shoe   *deck.Hand
	scrap  *deck.Hand
	seats  []*Seat        // seating order, dealer first
	ledger map[SeatID]int // staked pot per seat
	nextID SeatID
	rules  Rules
	rng    *rand.Rand
}

// NewTable creates a table with a freshly shuffled shoe and the dealer
// seated with the given bankroll
func NewTable(dealerName string, bankroll int, rules Rules, rng *rand.Rand) *Table {
	t := &Table{
		shoe:   deck.NewShoe(rules.Decks),
		scrap:  deck.NewHand(),
		ledger: make(map[SeatID]int),
		rules:  rules,
		rng:    rng,
	}
	t.shoe.Shuffle(rng)
	dealer := t.newSeat(dealerName, bankroll, NoSeat)
	t.seats = append(t.seats, dealer)
	t.ledger[dealer.ID] = 0
	return t
}

func (t *Table) newSeat(name string, cash int, parent SeatID) *Seat {
	t.nextID++
	return &Seat{
		ID:     t.nextID,
		Name:   name,
		Cash:   cash,
		Hand:   deck.NewHand(),
		parent: parent,
	}
}

// Rules returns the table parameters
func (t *Table) Rules() Rules {
	return t.rules
}

// Dealer returns the dealer's seat
func (t *Table) Dealer() *Seat {
	return t.seats[0]
}

// Seats returns all seats in seating order, dealer first
func (t *Table) Seats() []*Seat {
	out := make([]*Seat, len(t.seats))
	copy(out, t.seats)
	return out
}

// PlayerSeats returns the non-dealer seats in seating order, including any
// live transient split seats
func (t *Table) PlayerSeats() []*Seat {
	out := make([]*Seat, 0, len(t.seats)-1)
	for _, s := range t.seats[1:] {
		out = append(out, s)
	}
	return out
}

// SeatByID returns the seat with the given id
func (t *Table) SeatByID(id SeatID) (*Seat, bool) {
	for _, s := range t.seats {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// SeatByName returns the seat with the given name
func (t *Table) SeatByName(name string) (*Seat, bool) {
	for _, s := range t.seats {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// AddSeat seats a new player with the given buy-in. Seat names are identity
// keys, so duplicates are rejected.
func (t *Table) AddSeat(name string, buyIn int) (*Seat, error) {
	if _, ok := t.SeatByName(name); ok {
		return nil, fmt.Errorf("add seat %q: %w", name, ErrDuplicateName)
	}
	s := t.newSeat(name, buyIn, NoSeat)
	t.seats = append(t.seats, s)
	t.ledger[s.ID] = 0
	return s, nil
}

// addSplitSeat spawns a transient seat for a split hand, inserted directly
// after its parent in seating order. The id suffix keeps names unique when
// a hand is re-split.
func (t *Table) addSplitSeat(parent *Seat) *Seat {
	s := t.newSeat(fmt.Sprintf("%s:split-%d", parent.Name, t.nextID+1), 0, parent.ID)
	for i, existing := range t.seats {
		if existing.ID == parent.ID {
			t.seats = append(t.seats[:i+1], append([]*Seat{s}, t.seats[i+1:]...)...)
			break
		}
	}
	t.ledger[s.ID] = 0
	return s
}

// RemoveSeat detaches and returns the named seat and drops its ledger entry
func (t *Table) RemoveSeat(name string) (*Seat, error) {
	for i, s := range t.seats {
		if s.Name == name {
			t.seats = append(t.seats[:i], t.seats[i+1:]...)
			delete(t.ledger, s.ID)
			return s, nil
		}
	}
	return nil, fmt.Errorf("remove seat %q: %w", name, ErrNotFound)
}

// MoveCard relocates the card at index i of src to the back of dst
func (t *Table) MoveCard(src *deck.Hand, i int, dst *deck.Hand) error {
	c, ok := src.RemoveAt(i)
	if !ok {
		return fmt.Errorf("move card %d of %d: %w", i, src.Len(), ErrNotFound)
	}
	dst.Append(c)
	return nil
}

// DealOneTo draws the front card of the shoe into the seat's hand
func (t *Table) DealOneTo(seat *Seat) (deck.Card, error) {
	c, ok := t.shoe.DrawFront()
	if !ok {
		return deck.Card{}, fmt.Errorf("deal to %s: %w", seat.Name, ErrShoeEmpty)
	}
	seat.Hand.Append(c)
	return c, nil
}

// DealNTo deals n rounds of one card per seat, preserving seat order as a
// live dealer would
func (t *Table) DealNTo(seats []*Seat, n int) error {
	if t.shoe.Len() < n*len(seats) {
		return fmt.Errorf("deal %d to %d seats with %d in shoe: %w",
			n, len(seats), t.shoe.Len(), ErrShoeEmpty)
	}
	for round := 0; round < n; round++ {
		for _, s := range seats {
			if _, err := t.DealOneTo(s); err != nil {
				return err
			}
		}
	}
	return nil
}

// MoveHandToScrap transfers every card from the seat's hand to the scrap pile
func (t *Table) MoveHandToScrap(seat *Seat) {
	for seat.Hand.Len() > 0 {
		c, _ := seat.Hand.DrawFront()
		t.scrap.Append(c)
	}
}

// RecycleScrapIntoShoe moves all scrap cards back into the shoe. The caller
// is responsible for reshuffling.
func (t *Table) RecycleScrapIntoShoe() {
	for t.scrap.Len() > 0 {
		c, _ := t.scrap.DrawFront()
		t.shoe.Append(c)
	}
}

// ShuffleShoe reshuffles the draw pile
func (t *Table) ShuffleShoe() {
	t.shoe.Shuffle(t.rng)
}

// ShoeLen returns the number of cards left in the shoe
func (t *Table) ShoeLen() int {
	return t.shoe.Len()
}

// ScrapLen returns the number of cards in the scrap pile
func (t *Table) ScrapLen() int {
	return t.scrap.Len()
}

// Stake returns the currently staked pot for a seat
func (t *Table) Stake(id SeatID) int {
	return t.ledger[id]
}

// CardCount returns the total number of cards across the shoe, the scrap
// pile and every seated hand. It must always equal 52 * Rules.Decks except
// transiently inside a single card movement.
func (t *Table) CardCount() int {
	n := t.shoe.Len() + t.scrap.Len()
	for _, s := range t.seats {
		n += s.Hand.Len()
	}
	return n
}

// ValidateCardConservation checks that no cards were created or destroyed
func (t *Table) ValidateCardConservation() error {
	want := 52 * t.rules.Decks
	if got := t.CardCount(); got != want {
		return fmt.Errorf("card conservation violated: have %d cards, want %d", got, want)
	}
	return nil
}

// ValidateLedgerSettled checks that every ledger entry is zero, which must
// hold between rounds
func (t *Table) ValidateLedgerSettled() error {
	for id, stake := range t.ledger {
		if stake != 0 {
			seat, _ := t.SeatByID(id)
			name := "?"
			if seat != nil {
				name = seat.Name
			}
			return fmt.Errorf("ledger not settled: seat %s still stakes %d", name, stake)
		}
	}
	return nil
}

func (t *Table) String() string {
	return fmt.Sprintf("%d players. %d cards in shoe, %d in scrap",
		len(t.seats)-1, t.shoe.Len(), t.scrap.Len())
}
