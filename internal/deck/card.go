package deck

import "fmt"

// Suit represents a card suit, numbered 1-4.
type Suit int

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Diamonds or Hearts)
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank represents a card rank, numbered 1-13 with Ace low.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card is an immutable playing card identified by rank and suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// SortKey returns a key that uniquely identifies the card within one deck.
// It is used for identity and total ordering only, never for hand values.
func (c Card) SortKey() int {
	return 10*int(c.Rank) + int(c.Suit)
}

// Is reports whether the card has the given rank and suit
func (c Card) Is(rank Rank, suit Suit) bool {
	return c.Rank == rank && c.Suit == suit
}

// Compare orders cards by rank, breaking ties by sort key so the ordering
// is total. Gameplay never depends on this ordering.
func Compare(a, b Card) int {
	switch {
	case a.Rank < b.Rank:
		return -1
	case a.Rank > b.Rank:
		return 1
	case a.SortKey() < b.SortKey():
		return -1
	case a.SortKey() > b.SortKey():
		return 1
	default:
		return 0
	}
}

// String returns the string representation (e.g. "AS", "TD")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
