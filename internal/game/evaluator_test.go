package game

import (
	"testing"

	"github.com/lox/blackjacktable/internal/deck"
)

func handOf(cards ...deck.Card) *deck.Hand {
	h := deck.NewHand()
	for _, c := range cards {
		h.Append(c)
	}
	return h
}

func card(rank deck.Rank) deck.Card {
	return deck.NewCard(rank, deck.Spades)
}

func TestSoftTotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand *deck.Hand
		want int
	}{
		{"ace counts one", handOf(card(deck.Ace), card(deck.Six)), 7},
		{"faces count ten", handOf(card(deck.King), card(deck.Queen), card(deck.Jack)), 30},
		{"ten counts ten", handOf(card(deck.Ten), card(deck.Nine)), 19},
		{"pips count face value", handOf(card(deck.Two), card(deck.Seven)), 9},
		{"empty hand", handOf(), 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := SoftTotal(test.hand); got != test.want {
				t.Errorf("SoftTotal = %d, want %d", got, test.want)
			}
		})
	}
}

func TestHardTotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand *deck.Hand
		want int
	}{
		{"soft seventeen", handOf(card(deck.Ace), card(deck.Six)), 17},
		{"natural blackjack", handOf(card(deck.Ace), card(deck.King)), BlackjackTotal},
		{"three card twenty-one is not blackjack", handOf(card(deck.Ace), card(deck.Ace), card(deck.Nine)), 21},
		{"bust", handOf(card(deck.Ten), card(deck.Nine), card(deck.Five)), BustTotal},
		{"only one ace upgrades", handOf(card(deck.Ace), card(deck.Ace)), 12},
		{"no upgrade above eleven", handOf(card(deck.Ace), card(deck.Six), card(deck.Nine)), 16},
		{"hard twenty", handOf(card(deck.King), card(deck.Queen)), 20},
		{"twenty-one exactly on three cards", handOf(card(deck.Seven), card(deck.Seven), card(deck.Seven)), 21},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := HardTotal(test.hand); got != test.want {
				t.Errorf("HardTotal = %d, want %d", got, test.want)
			}
		})
	}
}

func TestSentinelOrdering(t *testing.T) {
	t.Parallel()
	// Settlement compares totals numerically, so the sentinels must rank
	// blackjack above every table total and bust below every table total.
	if BlackjackTotal <= 21 {
		t.Error("blackjack sentinel must exceed 21")
	}
	if BustTotal >= 2 {
		t.Error("bust sentinel must rank below the lowest legal total")
	}
}

func TestIsSoft(t *testing.T) {
	t.Parallel()
	if !IsSoft(handOf(card(deck.Ace), card(deck.Six))) {
		t.Error("A6 is a soft hand")
	}
	if IsSoft(handOf(card(deck.Ten), card(deck.Seven))) {
		t.Error("T7 is a hard hand")
	}
	if IsSoft(handOf(card(deck.Ace), card(deck.Nine), card(deck.Five))) {
		t.Error("A95 counts the ace as one")
	}
}
