package deck

import rand "math/rand/v2"

// Hand is an ordered, mutable sequence of cards. It backs both the hands
// players hold and the shoe and scrap piles on a table.
type Hand struct {
	cards []Card
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{}
}

// NewShoe builds a draw pile from decks standard 52-card decks, in rank
// then suit order. The caller is responsible for shuffling before use.
func NewShoe(decks int) *Hand {
	h := &Hand{cards: make([]Card, 0, decks*52)}
	for d := 0; d < decks; d++ {
		for rank := Ace; rank <= King; rank++ {
			for suit := Clubs; suit <= Spades; suit++ {
				h.Append(NewCard(rank, suit))
			}
		}
	}
	return h
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// At returns the card at index i
func (h *Hand) At(i int) Card {
	return h.cards[i]
}

// Cards returns a copy of the cards in insertion order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Append adds a card to the back of the hand
func (h *Hand) Append(c Card) {
	h.cards = append(h.cards, c)
}

// RemoveAt removes and returns the card at index i.
// ok is false when i is out of range.
func (h *Hand) RemoveAt(i int) (Card, bool) {
	if i < 0 || i >= len(h.cards) {
		return Card{}, false
	}
	c := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return c, true
}

// DrawFront removes and returns the front card, as a dealer draws from a shoe
func (h *Hand) DrawFront() (Card, bool) {
	return h.RemoveAt(0)
}

// Find returns the index of the first card with the given rank and suit,
// or -1 if absent
func (h *Hand) Find(rank Rank, suit Suit) int {
	for i, c := range h.cards {
		if c.Is(rank, suit) {
			return i
		}
	}
	return -1
}

// FindRank returns the index of the first card with the given rank,
// or -1 if absent
func (h *Hand) FindRank(rank Rank) int {
	for i, c := range h.cards {
		if c.Rank == rank {
			return i
		}
	}
	return -1
}

// Shuffle applies a Fisher-Yates permutation using the supplied RNG
func (h *Hand) Shuffle(rng *rand.Rand) {
	for i := len(h.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		h.cards[i], h.cards[j] = h.cards[j], h.cards[i]
	}
}
