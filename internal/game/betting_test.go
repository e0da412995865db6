package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjacktable/internal/deck"
)

func TestPlaceBet(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 1000)

	require.NoError(t, table.PlaceBet(seat, seat, 100))
	assert.Equal(t, 900, seat.Cash)
	// The ledger holds the full contested pot: the bet plus the house's
	// matching stake
	assert.Equal(t, 200, table.Stake(seat.ID))
}

func TestPlaceBetInsufficientFunds(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 50)

	err := table.PlaceBet(seat, seat, 100)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	// Failed bets leave no partial state
	assert.Equal(t, 50, seat.Cash)
	assert.Equal(t, 0, table.Stake(seat.ID))
}

func TestPlaceBetNegative(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 1000)

	err := table.PlaceBet(seat, seat, -10)
	assert.ErrorIs(t, err, ErrIllegalAction)
	assert.Equal(t, 1000, seat.Cash)
}

func TestSplit(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 1000)
	require.NoError(t, table.PlaceBet(seat, seat, 100))

	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Clubs))
	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Hearts))

	child, err := table.Split(seat)
	require.NoError(t, err)

	// Parent and child ledger entries sum to the original pot
	assert.Equal(t, 100, table.Stake(seat.ID))
	assert.Equal(t, 100, table.Stake(child.ID))

	// Half the raw bet is withdrawn to fund the child seat
	assert.Equal(t, 850, seat.Cash)
	assert.Equal(t, 0, child.Cash)

	// Each hand kept one eight and drew one card
	assert.Equal(t, 2, seat.Hand.Len())
	assert.Equal(t, 2, child.Hand.Len())
	assert.Equal(t, deck.Eight, seat.Hand.At(0).Rank)
	assert.Equal(t, deck.Eight, child.Hand.At(0).Rank)

	assert.True(t, child.IsSplit())
	assert.Equal(t, seat.ID, child.Parent())

	// The child sits directly after its parent
	players := table.PlayerSeats()
	require.Len(t, players, 2)
	assert.Same(t, seat, players[0])
	assert.Same(t, child, players[1])
}

func TestSplitRequiresPair(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 1000)
	table.PlaceBet(seat, seat, 100)

	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Clubs))
	seat.Hand.Append(deck.NewCard(deck.Nine, deck.Hearts))

	_, err := table.Split(seat)
	assert.ErrorIs(t, err, ErrIllegalAction)

	// Ten and king have equal value but different ranks: not splittable
	seat.Hand.RemoveAt(1)
	seat.Hand.Append(deck.NewCard(deck.King, deck.Hearts))
	seat.Hand.RemoveAt(0)
	seat.Hand.Append(deck.NewCard(deck.Ten, deck.Clubs))
	_, err = table.Split(seat)
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestSplitRequiresTwoCards(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 1000)
	table.PlaceBet(seat, seat, 100)

	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Clubs))
	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Hearts))
	seat.Hand.Append(deck.NewCard(deck.Two, deck.Spades))

	_, err := table.Split(seat)
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestSplitInsufficientFunds(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 100)
	require.NoError(t, table.PlaceBet(seat, seat, 100))

	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Clubs))
	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Hearts))

	_, err := table.Split(seat)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	// No card movement or seat creation on failure
	assert.Equal(t, 2, seat.Hand.Len())
	assert.Len(t, table.PlayerSeats(), 1)
	assert.Equal(t, 200, table.Stake(seat.ID))
}

func TestResplitFundsFromRealSeat(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 1000)
	require.NoError(t, table.PlaceBet(seat, seat, 100))

	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Clubs))
	seat.Hand.Append(deck.NewCard(deck.Eight, deck.Hearts))
	child, err := table.Split(seat)
	require.NoError(t, err)

	// Force a pair onto the child and split again; the real seat pays
	child.Hand = handOf(
		deck.NewCard(deck.Eight, deck.Diamonds),
		deck.NewCard(deck.Eight, deck.Spades))
	cashBefore := seat.Cash

	grandchild, err := table.Split(child)
	require.NoError(t, err)
	assert.True(t, grandchild.IsSplit())
	assert.Equal(t, child.ID, grandchild.Parent())
	assert.Equal(t, 0, grandchild.Cash)
	assert.Less(t, seat.Cash, cashBefore)

	// The child's stake halves onto the grandchild
	assert.Equal(t, 50, table.Stake(child.ID))
	assert.Equal(t, 50, table.Stake(grandchild.ID))
	assert.Equal(t, 100, table.Stake(seat.ID))
}

func TestDouble(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 1000)
	require.NoError(t, table.PlaceBet(seat, seat, 100))

	seat.Hand.Append(deck.NewCard(deck.Five, deck.Clubs))
	seat.Hand.Append(deck.NewCard(deck.Six, deck.Hearts))

	card, err := table.Double(seat)
	require.NoError(t, err)
	assert.Equal(t, 3, seat.Hand.Len())
	assert.Equal(t, card, seat.Hand.At(2))
	// Pot doubles, and the extra raw bet leaves the balance
	assert.Equal(t, 400, table.Stake(seat.ID))
	assert.Equal(t, 800, seat.Cash)
}

func TestDoubleRequiresTwoCards(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 1000)
	table.PlaceBet(seat, seat, 100)

	seat.Hand.Append(deck.NewCard(deck.Five, deck.Clubs))
	seat.Hand.Append(deck.NewCard(deck.Six, deck.Hearts))
	seat.Hand.Append(deck.NewCard(deck.Two, deck.Spades))

	_, err := table.Double(seat)
	assert.ErrorIs(t, err, ErrIllegalAction)
	assert.Equal(t, 200, table.Stake(seat.ID))
}

func TestDoubleInsufficientFunds(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, 1)
	seat, _ := table.AddSeat("Alice", 100)
	require.NoError(t, table.PlaceBet(seat, seat, 100))

	seat.Hand.Append(deck.NewCard(deck.Five, deck.Clubs))
	seat.Hand.Append(deck.NewCard(deck.Six, deck.Hearts))

	_, err := table.Double(seat)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 2, seat.Hand.Len())
	assert.Equal(t, 200, table.Stake(seat.ID))
}

func TestSettleFractions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		seatTotal    []deck.Rank
		dealerTotal  int
		playerProfit int
		dealerProfit int
	}{
		{"player wins", []deck.Rank{deck.King, deck.Ten}, 18, 200, 0},
		{"push splits the pot", []deck.Rank{deck.Ten, deck.Nine}, 19, 100, 100},
		{"dealer wins", []deck.Rank{deck.Ten, deck.Seven}, 19, 0, 200},
		{"blackjack beats twenty-one", []deck.Rank{deck.Ace, deck.King}, 21, 200, 0},
		{"bust loses to anything", []deck.Rank{deck.King, deck.Nine, deck.Five}, BustTotal, 100, 100},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table := newTestTable(t, 1)
			seat, _ := table.AddSeat("Alice", 1000)
			require.NoError(t, table.PlaceBet(seat, seat, 100))
			for _, r := range test.seatTotal {
				seat.Hand.Append(card(r))
			}
			dealerBefore := table.Dealer().Cash

			playerProfit, dealerProfit := table.Settle(seat, test.dealerTotal)
			assert.Equal(t, test.playerProfit, playerProfit)
			assert.Equal(t, test.dealerProfit, dealerProfit)

			// The two profits always account for the full pot
			assert.Equal(t, 200, playerProfit+dealerProfit)
			assert.Equal(t, 900+test.playerProfit, seat.Cash)
			assert.Equal(t, dealerBefore+test.dealerProfit, table.Dealer().Cash)
			assert.Equal(t, 0, table.Stake(seat.ID))
		})
	}
}
