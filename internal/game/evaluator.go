package game

import "github.com/lox/blackjacktable/internal/deck"

// Sentinel totals returned by HardTotal. Bust ranks below every legal total
// and blackjack strictly above 21, so settlement can compare totals
// numerically without special cases.
const (
	BustTotal      = 0
	BlackjackTotal = 99
)

// SoftTotal sums the hand with every ace counted as 1 and every face card
// as 10. No ace upgrade is applied.
func SoftTotal(h *deck.Hand) int {
	total := 0
	for _, c := range h.Cards() {
		v := int(c.Rank)
		if v > 10 {
			v = 10
		}
		total += v
	}
	return total
}

// HardTotal evaluates a hand for settlement. Starting from the soft total,
// one ace is upgraded to 11 when that cannot bust the hand. A two-card 21 is
// a natural blackjack and returns BlackjackTotal; a soft total over 21
// returns BustTotal.
//
// Totals are recomputed on every call; hands only grow by single-card
// appends so this stays O(hand size).
func HardTotal(h *deck.Hand) int {
	total := SoftTotal(h)
	if total > 21 {
		return BustTotal
	}
	if total <= 11 && h.FindRank(deck.Ace) >= 0 {
		total += 10
	}
	if total == 21 && h.Len() == 2 {
		return BlackjackTotal
	}
	return total
}

// IsSoft reports whether the hand counts an ace as 11, i.e. its hard total
// improves on its soft total
func IsSoft(h *deck.Hand) bool {
	hard := HardTotal(h)
	return hard != BustTotal && hard != BlackjackTotal && hard != SoftTotal(h)
}
