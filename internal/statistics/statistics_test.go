package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Parallel()
	var s Statistics
	s.Add(RoundRecord{Net: 20, Hands: 2, Wins: 1, Losses: 1})
	s.Add(RoundRecord{Net: -10, Hands: 1, Pushes: 1, Blackjacks: 1})
	s.Add(RoundRecord{Net: -10, Hands: 2, Losses: 2, Busts: 1, Splits: 1})

	assert.Equal(t, 3, s.Rounds)
	assert.Equal(t, 5, s.Hands)
	assert.Equal(t, 0, s.Net)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Pushes)
	assert.Equal(t, 3, s.Losses)
	assert.Equal(t, 1, s.Blackjacks)
	assert.Equal(t, 1, s.Busts)
	assert.Equal(t, 1, s.Splits)
	require.NoError(t, s.Validate())
}

func TestMeanAndSpread(t *testing.T) {
	t.Parallel()
	var s Statistics
	for _, net := range []int{10, -10, 10, -10} {
		s.Add(RoundRecord{Net: net, Hands: 1, Wins: 1})
	}
	assert.InDelta(t, 0.0, s.Mean(), 1e-9)
	// Sample variance of {10,-10,10,-10} is 400/3
	assert.InDelta(t, 400.0/3.0, s.Variance(), 1e-9)
	assert.InDelta(t, s.StdDev()/2, s.StdError(), 1e-9)
}

func TestMeanEmpty(t *testing.T) {
	t.Parallel()
	var s Statistics
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdError())
}

func TestMerge(t *testing.T) {
	t.Parallel()
	var a, b, whole Statistics
	records := []RoundRecord{
		{Net: 15, Hands: 1, Wins: 1},
		{Net: -5, Hands: 1, Losses: 1},
		{Net: 0, Hands: 1, Pushes: 1},
		{Net: 25, Hands: 2, Wins: 2, Splits: 1},
	}
	for i, r := range records {
		whole.Add(r)
		if i < 2 {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}
	a.Merge(&b)

	// Merging partitions reproduces the whole aggregate exactly
	assert.Equal(t, whole, a)
	require.NoError(t, a.Validate())
}

func TestValidateCatchesMismatchedCounts(t *testing.T) {
	t.Parallel()
	s := Statistics{Hands: 3, Wins: 1, Losses: 1}
	assert.Error(t, s.Validate())
}

func TestSummary(t *testing.T) {
	t.Parallel()
	var s Statistics
	s.Add(RoundRecord{Net: 10, Hands: 1, Wins: 1})
	s.Add(RoundRecord{Net: -10, Hands: 1, Losses: 1})

	summary := s.Summary()
	assert.Contains(t, summary, "rounds: 2")
	assert.Contains(t, summary, "wins: 1 (50.0%)")
	assert.Contains(t, summary, "losses: 1 (50.0%)")
}
